package geom

import "math"

// Vec2 is a 2D single-precision vector.
type Vec2 struct {
	X, Y float32
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled uniformly by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Normalized returns v scaled to unit length, or the zero vector if v is the
// zero vector (normalizing the zero vector is total, not an error).
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Vec3 is a 3D single-precision vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled uniformly by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.Dot(v)))) }

// Normalized returns v scaled to unit length, or the zero vector if v is the
// zero vector.
func (v Vec3) Normalized() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Min returns the component-wise minimum of v and o.
func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{minf32(v.X, o.X), minf32(v.Y, o.Y), minf32(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{maxf32(v.X, o.X), maxf32(v.Y, o.Y), maxf32(v.Z, o.Z)}
}

// ApproxEqual reports whether v and o differ by no more than eps per
// component.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return absf32(v.X-o.X) <= eps && absf32(v.Y-o.Y) <= eps && absf32(v.Z-o.Z) <= eps
}

// Vec4 is a 4D single-precision vector, used as the homogeneous coordinate
// form consumed by Mat4.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec3 drops the W component (no perspective divide is performed).
func (v Vec4) Vec3() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Vec3Int is an integer-valued 3D vector, used for cell-adjacent offset
// arithmetic where float rounding would be inappropriate.
type Vec3Int struct {
	X, Y, Z int32
}

// Add returns the component-wise sum of v and o.
func (v Vec3Int) Add(o Vec3Int) Vec3Int {
	return Vec3Int{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3Int) Sub(o Vec3Int) Vec3Int {
	return Vec3Int{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
