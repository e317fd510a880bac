package geom

// TRS bundles a Translation, Rotation and Scale — the decomposed form most
// grid-modifier math wants, rather than a bare Mat4.
type TRS struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// IdentityTRS returns the identity transform (zero translation, identity
// rotation, unit scale).
func IdentityTRS() TRS {
	return TRS{Rotation: IdentityQuat(), Scale: Vec3{X: 1, Y: 1, Z: 1}}
}

// ToMat4 composes t into a single Mat4, applied in the order scale, then
// rotate, then translate.
func (t TRS) ToMat4() Mat4 {
	return Translation4(t.Translation).Mul(t.Rotation.ToMat4()).Mul(Scale4(t.Scale))
}

// TransformPoint applies t to a point in local space.
func (t TRS) TransformPoint(p Vec3) Vec3 {
	scaled := Vec3{p.X * t.Scale.X, p.Y * t.Scale.Y, p.Z * t.Scale.Z}
	return t.Rotation.RotateVec3(scaled).Add(t.Translation)
}
