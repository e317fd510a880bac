package geom

import "errors"

// ErrSingularMatrix is returned by Mat4.Inverse when the matrix determinant's
// magnitude falls below singularEpsilon and no numerically stable inverse
// exists.
var ErrSingularMatrix = errors.New("geom: matrix is singular")

// singularEpsilon is the determinant-magnitude threshold below which a Mat4
// is considered singular, per the spec's fixed tolerance for this check.
const singularEpsilon = 1e-12
