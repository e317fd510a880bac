package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAabb_IntersectsTouchingFaces(t *testing.T) {
	t.Parallel()

	a := Aabb{Min: Vec3{}, Max: Vec3{X: 1, Y: 1, Z: 1}}
	b := Aabb{Min: Vec3{X: 1}, Max: Vec3{X: 2, Y: 1, Z: 1}}
	assert.True(t, a.Intersects(b))
}

func TestAabb_FromPointsEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Aabb{}, AabbFromPoints(nil))
}

func TestAabb_UnionContainsBoth(t *testing.T) {
	t.Parallel()

	a := Aabb{Min: Vec3{}, Max: Vec3{X: 1, Y: 1, Z: 1}}
	b := Aabb{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 0.5, Y: 0.5, Z: 0.5}}
	u := a.Union(b)
	assert.Equal(t, Vec3{X: -1, Y: -1, Z: -1}, u.Min)
	assert.Equal(t, Vec3{X: 1, Y: 1, Z: 1}, u.Max)
}
