package geom

import "math"

// Quat is a unit quaternion used to represent 3D rotations; TRS carries one
// as its rotation component.
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat { return Quat{0, 0, 0, 1} }

// FromAxisAngle builds a quaternion representing a rotation of angleRad
// radians around axis (which need not be normalized).
func FromAxisAngle(axis Vec3, angleRad float32) Quat {
	a := axis.Normalized()
	s := float32(math.Sin(float64(angleRad) / 2))
	c := float32(math.Cos(float64(angleRad) / 2))
	return Quat{a.X * s, a.Y * s, a.Z * s, c}
}

// Mul returns the composition q*o: rotating by o first, then by q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// RotateVec3 rotates v by q.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Conjugate returns the conjugate (and, for a unit quaternion, the inverse)
// of q.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// ToMat4 returns the rotation matrix equivalent to q.
func (q Quat) ToMat4() Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	m := Identity4()
	m.M[0][0] = 1 - 2*(y*y+z*z)
	m.M[0][1] = 2 * (x*y + z*w)
	m.M[0][2] = 2 * (x*z - y*w)
	m.M[1][0] = 2 * (x*y - z*w)
	m.M[1][1] = 1 - 2*(x*x+z*z)
	m.M[1][2] = 2 * (y*z + x*w)
	m.M[2][0] = 2 * (x*z + y*w)
	m.M[2][1] = 2 * (y*z - x*w)
	m.M[2][2] = 1 - 2*(x*x+y*y)
	return m
}
