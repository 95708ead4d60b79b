package curve

import (
	"io"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/xs233/xsk233-go/internal/cgobinding"
)

// Projective is a point on xsk233 in the working (accumulator) view.
//
// It wraps the same native storage form as Affine; see the Affine doc for
// the shared-representation and concurrency notes. The pure methods return
// new values; the explicit *Assign methods are the only mutating entry
// points and exist for tight accumulation loops.
type Projective struct {
	p cgobinding.Point
}

// ProjectiveGenerator returns the generator in the accumulator view.
func ProjectiveGenerator() Projective {
	return Projective{p: cgobinding.Generator()}
}

// ProjectiveIdentity returns the group identity in the accumulator view.
// Note the zero value of Projective is NOT the identity; always start an
// accumulation from this constructor.
func ProjectiveIdentity() Projective {
	return Projective{p: cgobinding.Neutral()}
}

// NewProjectiveFromBytes decodes a canonical compressed encoding into the
// accumulator view. Same contract as NewAffineFromBytes.
func NewProjectiveFromBytes(data []byte) (Projective, error) {
	p, ok := cgobinding.PointDecode(data)
	if !ok {
		return ProjectiveIdentity(), opErr("NewProjectiveFromBytes", ErrInvalidEncoding)
	}
	return Projective{p: p}, nil
}

// RandomProjective returns a uniformly random element of the prime-order
// subgroup, computed as a random scalar multiple of the generator.
func RandomProjective(src io.Reader) (Projective, error) {
	k, err := RandomScalar(src)
	if err != nil {
		return ProjectiveIdentity(), err
	}
	return Generator().Mul(k), nil
}

// IsIdentity reports whether p is the group identity.
func (p Projective) IsIdentity() bool {
	return cgobinding.PointIsNeutral(&p.p)
}

// Neg returns the additive inverse of p.
func (p Projective) Neg() Projective {
	return Projective{p: cgobinding.PointNeg(&p.p)}
}

// Equal reports whether p and q are the same group element, via the
// engine's algebraic equality.
func (p Projective) Equal(q Projective) bool {
	return cgobinding.PointEquals(&p.p, &q.p)
}

// EqualAffine reports whether p and q are the same group element across the
// two views.
func (p Projective) EqualAffine(q Affine) bool {
	return cgobinding.PointEquals(&p.p, &q.p)
}

// Add returns p + q.
func (p Projective) Add(q Projective) Projective {
	return Projective{p: cgobinding.PointAdd(&p.p, &q.p)}
}

// AddAffine returns p + q for a fixed-base operand (mixed addition).
func (p Projective) AddAffine(q Affine) Projective {
	return Projective{p: cgobinding.PointAdd(&p.p, &q.p)}
}

// Sub returns p - q.
func (p Projective) Sub(q Projective) Projective {
	return Projective{p: cgobinding.PointSub(&p.p, &q.p)}
}

// SubAffine returns p - q for a fixed-base operand.
func (p Projective) SubAffine(q Affine) Projective {
	return Projective{p: cgobinding.PointSub(&p.p, &q.p)}
}

// AddAssign sets p to p + q in place.
func (p *Projective) AddAssign(q Projective) {
	p.p = cgobinding.PointAdd(&p.p, &q.p)
}

// SubAssign sets p to p - q in place.
func (p *Projective) SubAssign(q Projective) {
	p.p = cgobinding.PointSub(&p.p, &q.p)
}

// Double returns p + p via the engine's dedicated doubling; the result is
// identical to Add(p, p).
func (p Projective) Double() Projective {
	return Projective{p: cgobinding.PointDouble(&p.p)}
}

// Mul returns k * p. Mul(0) is the identity and Mul(1) is p.
func (p Projective) Mul(k *Scalar) Projective {
	return Projective{p: cgobinding.PointMulFrob(&p.p, k.leBytes())}
}

// MulByCofactor multiplies p by the integer cofactor.
func (p Projective) MulByCofactor() Projective {
	return p.Mul(NewScalarUint64(Cofactor()))
}

// ClearCofactor maps p into the prime-order subgroup by cofactor multiply.
func (p Projective) ClearCofactor() Projective {
	return p.MulByCofactor()
}

// ToAffine converts p to the canonical view. O(1), no normalization cost.
func (p Projective) ToAffine() Affine {
	return Affine{p: p.p}
}

// Bytes returns the canonical compressed encoding, exactly PointSize bytes.
func (p Projective) Bytes() []byte {
	enc := cgobinding.PointEncode(&p.p)
	return enc[:]
}

// Key returns the canonical encoding as an array usable as a map key; equal
// elements yield identical keys in either view.
func (p Projective) Key() [PointSize]byte {
	return cgobinding.PointEncode(&p.p)
}

// Check reports whether the point is valid; see Affine.Check.
func (p Projective) Check() error {
	return p.ToAffine().Check()
}

// String returns the lowercase hex of the compressed encoding.
func (p Projective) String() string {
	return fasthex.EncodeToString(p.Bytes())
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Projective) MarshalBinary() ([]byte, error) {
	return p.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Projective) UnmarshalBinary(data []byte) error {
	dec, err := NewProjectiveFromBytes(data)
	if err != nil {
		return err
	}
	*p = dec
	return nil
}
