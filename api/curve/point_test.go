package curve

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoint(t *testing.T) Projective {
	t.Helper()
	p, err := RandomProjective(rand.Reader)
	require.NoError(t, err)
	return p
}

func TestIdentity(t *testing.T) {
	t.Run("identity_is_identity", func(t *testing.T) {
		assert.True(t, Identity().IsIdentity())
		assert.True(t, ProjectiveIdentity().IsIdentity())
	})

	t.Run("generator_is_not_identity", func(t *testing.T) {
		assert.False(t, Generator().IsIdentity())
		assert.False(t, ProjectiveGenerator().IsIdentity())
	})

	t.Run("identity_is_additive_neutral", func(t *testing.T) {
		p := randomPoint(t)
		assert.True(t, p.Add(ProjectiveIdentity()).Equal(p))
		assert.True(t, ProjectiveIdentity().Add(p).Equal(p))
	})

	t.Run("identity_negates_to_itself", func(t *testing.T) {
		assert.True(t, Identity().Neg().IsIdentity())
	})
}

func TestNegation(t *testing.T) {
	t.Run("p_plus_neg_p_is_identity", func(t *testing.T) {
		p := randomPoint(t)
		assert.True(t, p.Add(p.Neg()).IsIdentity())
	})

	t.Run("generator_plus_neg_generator", func(t *testing.T) {
		g := Generator()
		sum := g.ToProjective().AddAffine(g.Neg())
		assert.True(t, sum.IsIdentity())
	})

	t.Run("double_negation", func(t *testing.T) {
		p := randomPoint(t)
		assert.True(t, p.Neg().Neg().Equal(p))
	})
}

func TestAddition(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)

	t.Run("commutes", func(t *testing.T) {
		assert.True(t, p.Add(q).Equal(q.Add(p)))
	})

	t.Run("associates", func(t *testing.T) {
		r := randomPoint(t)
		assert.True(t, p.Add(q).Add(r).Equal(p.Add(q.Add(r))))
	})

	t.Run("sub_inverts_add", func(t *testing.T) {
		assert.True(t, p.Add(q).Sub(q).Equal(p))
	})

	t.Run("mixed_addition_agrees", func(t *testing.T) {
		qa := q.ToAffine()
		assert.True(t, p.AddAffine(qa).Equal(p.Add(q)))
		assert.True(t, p.SubAffine(qa).Equal(p.Sub(q)))
	})

	t.Run("affine_add_agrees", func(t *testing.T) {
		pa := p.ToAffine()
		qa := q.ToAffine()
		assert.True(t, pa.Add(qa).Equal(p.Add(q)))
		assert.True(t, pa.Sub(qa).Equal(p.Sub(q)))
	})

	t.Run("assign_forms_agree", func(t *testing.T) {
		acc := p
		acc.AddAssign(q)
		assert.True(t, acc.Equal(p.Add(q)))
		acc.SubAssign(q)
		assert.True(t, acc.Equal(p))
	})
}

func TestDouble(t *testing.T) {
	t.Run("double_equals_add_self", func(t *testing.T) {
		p := randomPoint(t)
		assert.True(t, p.Double().Equal(p.Add(p)))
	})

	t.Run("double_identity", func(t *testing.T) {
		assert.True(t, ProjectiveIdentity().Double().IsIdentity())
	})
}

func TestScalarMul(t *testing.T) {
	g := Generator()

	t.Run("times_zero_is_identity", func(t *testing.T) {
		assert.True(t, g.Mul(NewScalarUint64(0)).IsIdentity())
	})

	t.Run("times_one_is_self", func(t *testing.T) {
		p := randomPoint(t)
		assert.True(t, p.Mul(NewScalarUint64(1)).Equal(p))
	})

	t.Run("homomorphism", func(t *testing.T) {
		a, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		b, err := RandomScalar(rand.Reader)
		require.NoError(t, err)

		lhs := g.Mul(a).Add(g.Mul(b))
		rhs := g.Mul(a.Add(b))
		assert.True(t, lhs.Equal(rhs))
	})

	t.Run("small_multiple_matches_repeated_addition", func(t *testing.T) {
		byScalar := g.Mul(NewScalarUint64(5))
		byAdd := ProjectiveIdentity()
		for i := 0; i < 5; i++ {
			byAdd = byAdd.AddAffine(g)
		}
		assert.True(t, byScalar.Equal(byAdd))
	})

	t.Run("affine_and_projective_mul_agree", func(t *testing.T) {
		k, err := RandomScalar(rand.Reader)
		require.NoError(t, err)
		assert.True(t, g.Mul(k).Equal(g.ToProjective().Mul(k)))
	})
}

func TestCofactorOps(t *testing.T) {
	p := randomPoint(t)

	t.Run("mul_by_cofactor_is_times_four", func(t *testing.T) {
		assert.True(t, p.MulByCofactor().Equal(p.Mul(NewScalarUint64(4))))
	})

	t.Run("clear_cofactor_matches_mul_by_cofactor", func(t *testing.T) {
		assert.True(t, p.ClearCofactor().Equal(p.MulByCofactor()))
		pa := p.ToAffine()
		assert.True(t, pa.ClearCofactor().ToProjective().Equal(pa.MulByCofactor()))
	})
}

func TestEquality(t *testing.T) {
	p := randomPoint(t)
	q := randomPoint(t)

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, p.Equal(p))
		assert.True(t, p.ToAffine().Equal(p.ToAffine()))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, p.Equal(q), q.Equal(p))
	})

	t.Run("across_representations", func(t *testing.T) {
		pa := p.ToAffine()
		assert.True(t, p.EqualAffine(pa))
		assert.True(t, pa.EqualProjective(p))
		assert.True(t, pa.ToProjective().Equal(p))
	})

	t.Run("distinct_points_differ", func(t *testing.T) {
		// Two independent random points collide with negligible probability.
		assert.False(t, p.Equal(q))
	})

	t.Run("construction_path_is_irrelevant", func(t *testing.T) {
		// G+G and 2*G must be equal however computed.
		g := Generator()
		assert.True(t, g.Add(g).Equal(g.Mul(NewScalarUint64(2))))
		assert.True(t, g.Add(g).Equal(g.ToProjective().Double()))
	})
}

func TestKeyAgreesWithEquality(t *testing.T) {
	g := Generator()

	t.Run("equal_points_equal_keys", func(t *testing.T) {
		a := g.Add(g)
		b := g.Mul(NewScalarUint64(2))
		require.True(t, a.Equal(b))
		assert.Equal(t, a.Key(), b.Key())
		assert.Equal(t, a.ToAffine().Key(), b.Key())
	})

	t.Run("usable_as_map_key", func(t *testing.T) {
		seen := map[[PointSize]byte]int{}
		seen[g.Add(g).Key()]++
		seen[g.Mul(NewScalarUint64(2)).Key()]++
		assert.Len(t, seen, 1)
	})

	t.Run("distinct_points_distinct_keys", func(t *testing.T) {
		assert.NotEqual(t, g.Mul(NewScalarUint64(2)).Key(), g.Mul(NewScalarUint64(3)).Key())
	})
}

func TestXYUnavailable(t *testing.T) {
	_, _, err := Generator().XY()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCoordinatesUnavailable)

	var opError *Error
	require.ErrorAs(t, err, &opError)
	assert.Equal(t, "XY", opError.Op)
}

func TestRandomPoints(t *testing.T) {
	t.Run("distinct", func(t *testing.T) {
		a := randomPoint(t)
		b := randomPoint(t)
		assert.False(t, a.Equal(b))
	})

	t.Run("affine_sampling", func(t *testing.T) {
		p, err := RandomAffine(rand.Reader)
		require.NoError(t, err)
		assert.False(t, p.IsIdentity())
	})
}
