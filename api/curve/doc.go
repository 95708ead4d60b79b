// Package curve provides idiomatic Go bindings for the xsk233 group
// implemented by the native xs233 library.
//
// xsk233 is a prime-order subgroup built on the K-233 binary Koblitz curve.
// The native library keeps points in an opaque internal form: there is no
// access to affine coordinates, only the group operations and a canonical
// 30-byte compressed encoding. This package wraps that contract with two
// value types sharing one storage form:
//
//   - Affine — fixed bases: inputs, decoded points, serialization.
//   - Projective — working accumulators: sums and scalar multiples.
//
// Conversion between the two is free. All values are small, bit-copyable
// and immutable (except through the explicit *Assign accumulators), so
// independent copies may be used from multiple goroutines without locking.
//
// # Quick start
//
//	k, err := curve.RandomScalar(rand.Reader)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	P := curve.Generator().Mul(k)
//
//	wire := P.Bytes() // 30 bytes, fixed width
//	Q, err := curve.NewAffineFromBytes(wire)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(Q.EqualProjective(P)) // true
//
// Scalar arithmetic lives in Fr, the order of the subgroup; point
// arithmetic is delegated to the native engine through internal/cgobinding.
package curve
