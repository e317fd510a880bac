package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMat4_IdentityMulVec4(t *testing.T) {
	t.Parallel()

	v := Vec4{X: 1, Y: 2, Z: 3, W: 1}
	got := Identity4().MulVec4(v)
	assert.Equal(t, v, got)
}

func TestMat4_TranslationMulPoint(t *testing.T) {
	t.Parallel()

	m := Translation4(Vec3{X: 1, Y: 2, Z: 3})
	got := m.MulPoint(Vec3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, Vec3{X: 2, Y: 3, Z: 4}, got)
}

func TestMat4_InverseRoundTrip(t *testing.T) {
	t.Parallel()

	m := Translation4(Vec3{X: 2, Y: -3, Z: 5}).Mul(Scale4(Vec3{X: 2, Y: 2, Z: 2}))
	inv, err := m.Inverse()
	require.NoError(t, err)

	p := Vec3{X: 7, Y: 1, Z: -2}
	roundTrip := inv.MulPoint(m.MulPoint(p))
	assert.True(t, roundTrip.ApproxEqual(p, 1e-4), "expected %v, got %v", p, roundTrip)
}

func TestMat4_InverseSingularReturnsError(t *testing.T) {
	t.Parallel()

	// A scale of zero on one axis collapses the matrix to singular.
	m := Scale4(Vec3{X: 1, Y: 0, Z: 1})
	_, err := m.Inverse()
	require.ErrorIs(t, err, ErrSingularMatrix)
}

func TestMat4_DeterminantOfIdentity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.0, float64(Identity4().Determinant()), 1e-6)
}
