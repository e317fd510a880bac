// Package geom provides the concrete value types used throughout sylves to
// describe positions, orientations, and extents in 2D and 3D space:
// Vec2, Vec3, Vec3Int, Vec4, Mat4, Quat, Aabb and TRS.
//
// Every operation here is total and pure: there is no allocation beyond the
// returned value, no shared mutable state, and no operation that depends on
// anything but its arguments. The one partial operation, Mat4.Inverse, fails
// with ErrSingularMatrix rather than returning a garbage matrix; everything
// else, including normalizing the zero vector, has a well-defined total
// result.
//
// Floating-point comparisons in this package's tests use a fixed absolute
// epsilon of 1e-6 unless a test documents otherwise.
package geom

// Epsilon is the default absolute tolerance used by this package's own
// approximate-equality helpers and tests.
const Epsilon = 1e-6
