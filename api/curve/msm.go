package curve

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MSM computes the multi-scalar multiplication
//
//	scalars[0]*bases[0] + scalars[1]*bases[1] + ...
//
// using the generic fallback: one scalar multiplication per pair, partial
// sums combined at the end. No bucket-method optimization is attempted; the
// Frobenius-accelerated native multiply is already the fast path for this
// curve. Inputs of mismatched length or nil scalars are rejected.
func MSM(bases []Affine, scalars []*Scalar) (Projective, error) {
	if len(bases) != len(scalars) {
		return ProjectiveIdentity(), opErr("MSM",
			fmt.Errorf("length mismatch: %d bases, %d scalars", len(bases), len(scalars)))
	}
	for i, s := range scalars {
		if s == nil {
			return ProjectiveIdentity(), opErr("MSM", fmt.Errorf("nil scalar at index %d", i))
		}
	}

	n := len(bases)
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers < 2 {
		return msmSerial(bases, scalars), nil
	}
	if workers > n {
		workers = n
	}

	partials := make([]Projective, workers)
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			partials[w] = msmSerial(bases[lo:hi], scalars[lo:hi])
			return nil
		})
	}
	_ = g.Wait()

	return Sum(partials), nil
}

func msmSerial(bases []Affine, scalars []*Scalar) Projective {
	acc := ProjectiveIdentity()
	for i := range bases {
		acc.AddAssign(bases[i].Mul(scalars[i]))
	}
	return acc
}
