package geom

// Aabb is an axis-aligned bounding box in world units, inclusive of both
// Min and Max.
type Aabb struct {
	Min, Max Vec3
}

// AabbFromPoints returns the smallest Aabb containing every point in pts.
// Returns the zero Aabb if pts is empty.
func AabbFromPoints(pts []Vec3) Aabb {
	if len(pts) == 0 {
		return Aabb{}
	}
	box := Aabb{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box
}

// Union returns the smallest Aabb containing both a and o.
func (a Aabb) Union(o Aabb) Aabb {
	return Aabb{Min: a.Min.Min(o.Min), Max: a.Max.Max(o.Max)}
}

// Intersects reports whether a and o overlap, inclusive of touching faces.
func (a Aabb) Intersects(o Aabb) bool {
	return a.Min.X <= o.Max.X && a.Max.X >= o.Min.X &&
		a.Min.Y <= o.Max.Y && a.Max.Y >= o.Min.Y &&
		a.Min.Z <= o.Max.Z && a.Max.Z >= o.Min.Z
}

// Contains reports whether p lies within a, inclusive of the boundary.
func (a Aabb) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Center returns the midpoint of a.
func (a Aabb) Center() Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}
