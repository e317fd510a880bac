// Package rotation models the rotation/reflection group elements shared by
// every sylves cell type: a pure rotation by some number of steps, or a
// reflection followed by a rotation.
//
// This is a deliberate departure from the source library's encoding, which
// represents a hex/triangle rotation as a single signed int and uses the
// bitwise complement (~r) to flag a reflection (spec.md §9, REDESIGN FLAGS).
// That trick is compact but opaque and easy to get wrong under code
// generation or review. Rotation instead carries an explicit Reflected bool
// alongside the step count, with Compose and Invert implementing the same
// four-case (rotation/rotation, rotation/reflection, reflection/rotation,
// reflection/reflection) algebra spec.md §4.7 describes for hex.
package rotation
