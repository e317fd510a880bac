package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotation_ComposeRotations(t *testing.T) {
	t.Parallel()

	a := Rotate(2, 6)
	b := Rotate(3, 6)
	got := a.Compose(b, 6)
	assert.Equal(t, Rotate(5, 6), got)
}

func TestRotation_InvertIsInverse(t *testing.T) {
	t.Parallel()

	for n := uint8(4); n <= 12; n += 2 {
		for steps := uint8(0); steps < n; steps++ {
			r := Rotate(steps, n)
			assert.Equal(t, Identity(), r.Compose(r.Invert(n), n))

			ref := Reflect(steps, n)
			assert.Equal(t, Identity(), ref.Compose(ref.Invert(n), n))
		}
	}
}

func TestRotation_RotateDirPureRotation(t *testing.T) {
	t.Parallel()

	r := Rotate(1, 6)
	assert.Equal(t, 1, r.RotateDir(0, 6))
	assert.Equal(t, 0, r.RotateDir(5, 6))
}

func TestRotation_IsReflection(t *testing.T) {
	t.Parallel()

	assert.False(t, Rotate(1, 6).IsReflection())
	assert.True(t, Reflect(1, 6).IsReflection())
}
