package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_NormalizedZeroIsTotal(t *testing.T) {
	t.Parallel()

	v := Vec3{}
	got := v.Normalized()
	assert.Equal(t, Vec3{}, got, "normalizing the zero vector must return the zero vector, not NaN")
}

func TestVec3_NormalizedUnitLength(t *testing.T) {
	t.Parallel()

	v := Vec3{X: 3, Y: 4, Z: 0}
	got := v.Normalized()
	require.InDelta(t, 1.0, float64(got.Length()), Epsilon)
}

func TestVec3_CrossOrthogonal(t *testing.T) {
	t.Parallel()

	x := Vec3{X: 1}
	y := Vec3{Y: 1}
	got := x.Cross(y)
	assert.Equal(t, Vec3{Z: 1}, got)
}

func TestVec3_MinMax(t *testing.T) {
	t.Parallel()

	a := Vec3{X: 1, Y: 5, Z: -2}
	b := Vec3{X: 3, Y: -1, Z: 4}
	assert.Equal(t, Vec3{X: 1, Y: -1, Z: -2}, a.Min(b))
	assert.Equal(t, Vec3{X: 3, Y: 5, Z: 4}, a.Max(b))
}

func TestVec2_NormalizedZeroIsTotal(t *testing.T) {
	t.Parallel()

	v := Vec2{}
	assert.Equal(t, Vec2{}, v.Normalized())
}
