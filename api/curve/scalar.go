package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	fasthex "github.com/tmthrgd/go-hex"
)

// Scalar is an element of the prime-order scalar field Fr. Scalars are
// immutable: every operation returns a new value, and the internal integer
// is always fully reduced mod Order().
//
// The native engine performs no scalar arithmetic of its own; it only
// consumes a little-endian byte expansion of the multiplier (see leBytes).
// All field arithmetic therefore happens host-side.
type Scalar struct {
	v *big.Int // 0 <= v < r
}

// NewScalarUint64 creates a Scalar from a small constant.
func NewScalarUint64(value uint64) *Scalar {
	v := new(big.Int).SetUint64(value)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// NewScalarFromBytes creates a Scalar from a big-endian byte sequence,
// reduced mod Order().
func NewScalarFromBytes(data []byte) *Scalar {
	v := new(big.Int).SetBytes(data)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// NewScalarFromBig creates a Scalar from an arbitrary integer, reduced mod
// Order(). Negative inputs reduce to their canonical non-negative residue.
func NewScalarFromBig(value *big.Int) *Scalar {
	v := new(big.Int).Mod(value, frModulus)
	return &Scalar{v: v}
}

// RandomScalar samples a uniform element of Fr from the given source.
// Pass crypto/rand.Reader unless a deterministic source is required by a
// test harness.
func RandomScalar(src io.Reader) (*Scalar, error) {
	v, err := rand.Int(src, frModulus)
	if err != nil {
		return nil, opErr("RandomScalar", fmt.Errorf("sampling failed: %w", err))
	}
	return &Scalar{v: v}, nil
}

// Add returns s + other mod Order().
func (s *Scalar) Add(other *Scalar) *Scalar {
	v := new(big.Int).Add(s.v, other.v)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// Sub returns s - other mod Order().
func (s *Scalar) Sub(other *Scalar) *Scalar {
	v := new(big.Int).Sub(s.v, other.v)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// Mul returns s * other mod Order().
func (s *Scalar) Mul(other *Scalar) *Scalar {
	v := new(big.Int).Mul(s.v, other.v)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// Neg returns -s mod Order().
func (s *Scalar) Neg() *Scalar {
	v := new(big.Int).Neg(s.v)
	return &Scalar{v: v.Mod(v, frModulus)}
}

// IsZero reports whether s is the additive identity of Fr.
func (s *Scalar) IsZero() bool {
	return s.v.Sign() == 0
}

// Equal reports whether s and other are the same field element. Either side
// may be nil; nil never equals anything, including nil.
func (s *Scalar) Equal(other *Scalar) bool {
	if s == nil || other == nil {
		return false
	}
	return s.v.Cmp(other.v) == 0
}

// Bytes returns the big-endian encoding of the scalar with leading zeros
// trimmed, matching math/big conventions.
func (s *Scalar) Bytes() []byte {
	return s.v.Bytes()
}

// BigInt returns a copy of the scalar as an integer in [0, Order()).
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.v)
}

func (s *Scalar) String() string {
	if s == nil {
		return "<nil scalar>"
	}
	return fmt.Sprintf("Scalar(%s)", fasthex.EncodeToString(s.v.Bytes()))
}

// leBytes returns the little-endian expansion the native multiplier
// consumes: at most PointSize bytes, with trailing zero bytes stripped.
// The strip is not cosmetic; the engine iterates double-and-add once per
// input byte, so shorter input means fewer iterations. The zero scalar
// yields an empty slice.
func (s *Scalar) leBytes() []byte {
	be := s.v.Bytes()
	le := make([]byte, len(be))
	for i, b := range be {
		le[len(be)-1-i] = b
	}
	if len(le) > PointSize {
		le = le[:PointSize]
	}
	for len(le) > 0 && le[len(le)-1] == 0 {
		le = le[:len(le)-1]
	}
	return le
}
