package curve

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sum folds the points over addition starting from the identity. Because
// the group is abelian, the result is independent of slice order.
func Sum(points []Projective) Projective {
	acc := ProjectiveIdentity()
	for i := range points {
		acc.AddAssign(points[i])
	}
	return acc
}

// SumAffine folds fixed-base points over mixed addition.
func SumAffine(points []Affine) Projective {
	acc := ProjectiveIdentity()
	for i := range points {
		acc = acc.AddAffine(points[i])
	}
	return acc
}

// parallelThreshold is the input size below which the parallel helpers fall
// back to the sequential fold; goroutine overhead dominates under it.
const parallelThreshold = 128

// SumParallel computes Sum using independent partial accumulators combined
// at the end. Safe because addition is associative and commutative and each
// worker owns disjoint inputs and its own accumulator. The result is
// bit-for-bit the same group element as Sum's.
func SumParallel(points []Projective) Projective {
	n := len(points)
	workers := runtime.GOMAXPROCS(0)
	if n < parallelThreshold || workers < 2 {
		return Sum(points)
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
			partials[w] = Sum(points[lo:hi])
			return nil
		})
	}
	// Workers never return errors; Wait only joins them.
	_ = g.Wait()

	return Sum(partials)
}
