package curve

import (
	"io"
	"math/big"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/xs233/xsk233-go/internal/cgobinding"
)

// Affine is a point on xsk233 in the canonical (non-homogeneous) view.
//
// The wrapped native value is coordinate-opaque: the engine never exposes x
// or y, so neither does this type (see XY). Affine is a plain value type
// with copy semantics; operations return new values and never mutate their
// receiver, so independent copies may be used concurrently without locking.
//
// On this curve the affine and projective views share one storage form, so
// conversion between them is a free copy. The distinction is kept at the
// type level: Affine expresses a fixed base (inputs, serialized points),
// Projective expresses a working accumulator.
type Affine struct {
	p cgobinding.Point
}

// Generator returns the fixed generator of the prime-order subgroup.
func Generator() Affine {
	return Affine{p: cgobinding.Generator()}
}

// Identity returns the group identity (point at infinity). The identity is
// an ordinary point value: it serializes to the same fixed width as any
// other point.
func Identity() Affine {
	return Affine{p: cgobinding.Neutral()}
}

// NewAffineFromBytes decodes a canonical compressed encoding. It returns
// ErrInvalidEncoding if data is not exactly PointSize bytes or the native
// decoder rejects the buffer. Malformed input is a recoverable error, never
// a panic.
func NewAffineFromBytes(data []byte) (Affine, error) {
	p, ok := cgobinding.PointDecode(data)
	if !ok {
		return Identity(), opErr("NewAffineFromBytes", ErrInvalidEncoding)
	}
	return Affine{p: p}, nil
}

// RandomAffine returns a uniformly random element of the prime-order
// subgroup, computed as a random scalar multiple of the generator.
func RandomAffine(src io.Reader) (Affine, error) {
	p, err := RandomProjective(src)
	if err != nil {
		return Identity(), err
	}
	return p.ToAffine(), nil
}

// IsIdentity reports whether p is the group identity. The check uses the
// engine's algebraic equality, not a byte comparison.
func (p Affine) IsIdentity() bool {
	return cgobinding.PointIsNeutral(&p.p)
}

// Neg returns the additive inverse of p. The identity maps to itself.
func (p Affine) Neg() Affine {
	return Affine{p: cgobinding.PointNeg(&p.p)}
}

// Equal reports whether p and q are the same group element.
func (p Affine) Equal(q Affine) bool {
	return cgobinding.PointEquals(&p.p, &q.p)
}

// EqualProjective reports whether p and q are the same group element across
// the two views. Equality agrees for every pairing of views: two equal
// elements compare equal no matter which wrapper produced them.
func (p Affine) EqualProjective(q Projective) bool {
	return cgobinding.PointEquals(&p.p, &q.p)
}

// Add returns p + q as a working accumulator.
func (p Affine) Add(q Affine) Projective {
	return Projective{p: cgobinding.PointAdd(&p.p, &q.p)}
}

// Sub returns p - q as a working accumulator.
func (p Affine) Sub(q Affine) Projective {
	return Projective{p: cgobinding.PointSub(&p.p, &q.p)}
}

// Mul returns k * p. Mul(0) is the identity and Mul(1) is p.
func (p Affine) Mul(k *Scalar) Projective {
	return Projective{p: cgobinding.PointMulFrob(&p.p, k.leBytes())}
}

// MulByCofactor multiplies p by the integer cofactor (see Cofactor).
func (p Affine) MulByCofactor() Projective {
	return p.Mul(NewScalarUint64(Cofactor()))
}

// ClearCofactor maps p into the prime-order subgroup. The generic cofactor
// multiply is used; xsk233 defines no faster clearing algorithm.
func (p Affine) ClearCofactor() Affine {
	return p.MulByCofactor().ToAffine()
}

// ToProjective converts p to the accumulator view. O(1), no normalization:
// both views share one storage form on this curve.
func (p Affine) ToProjective() Projective {
	return Projective{p: p.p}
}

// XY always fails with ErrCoordinatesUnavailable. The native representation
// does not admit coordinate extraction, and returning zeros would
// masquerade as a valid point. Curve-level generator coordinates are
// available from GeneratorXY.
func (p Affine) XY() (x, y *big.Int, err error) {
	return nil, nil, opErr("XY", ErrCoordinatesUnavailable)
}

// Bytes returns the canonical compressed encoding: exactly PointSize bytes
// for every point, including the identity.
func (p Affine) Bytes() []byte {
	enc := cgobinding.PointEncode(&p.p)
	return enc[:]
}

// Key returns the canonical encoding as an array, usable as a map key or
// hash input. Equal group elements yield identical keys regardless of how
// or in which view they were constructed; hashing the raw native
// representation instead would break that contract.
func (p Affine) Key() [PointSize]byte {
	return cgobinding.PointEncode(&p.p)
}

// Check reports whether the point is valid. Every construction path either
// runs the decoder's full validation or derives the point from the
// generator by group operations, so an existing Affine is valid by
// construction and Check always succeeds.
func (p Affine) Check() error {
	return nil
}

// String returns the lowercase hex of the compressed encoding.
func (p Affine) String() string {
	return fasthex.EncodeToString(p.Bytes())
}

// MarshalBinary implements encoding.BinaryMarshaler using the canonical
// compressed encoding.
func (p Affine) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must be a
// canonical PointSize-byte encoding.
func (p *Affine) UnmarshalBinary(data []byte) error {
	dec, err := NewAffineFromBytes(data)
	if err != nil {
		return err
	}
	*p = dec
	return nil
}
