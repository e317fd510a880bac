package geom

// Mat4 is a column-major 4x4 matrix of float32, used for cell-to-world
// transforms (TRS).
//
// M[col][row] matches the convention used when multiplying column vectors:
// world = M.MulVec4(local).
type Mat4 struct {
	M [4][4]float32
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		m.M[i][i] = 1
	}
	return m
}

// Translation4 returns a matrix that translates by t.
func Translation4(t Vec3) Mat4 {
	m := Identity4()
	m.M[3][0] = t.X
	m.M[3][1] = t.Y
	m.M[3][2] = t.Z
	return m
}

// Scale4 returns a matrix that scales non-uniformly by s.
func Scale4(s Vec3) Mat4 {
	var m Mat4
	m.M[0][0] = s.X
	m.M[1][1] = s.Y
	m.M[2][2] = s.Z
	m.M[3][3] = 1
	return m
}

// MulVec4 transforms v by m, treating v as a column vector.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	out.X = m.M[0][0]*v.X + m.M[1][0]*v.Y + m.M[2][0]*v.Z + m.M[3][0]*v.W
	out.Y = m.M[0][1]*v.X + m.M[1][1]*v.Y + m.M[2][1]*v.Z + m.M[3][1]*v.W
	out.Z = m.M[0][2]*v.X + m.M[1][2]*v.Y + m.M[2][2]*v.Z + m.M[3][2]*v.W
	out.W = m.M[0][3]*v.X + m.M[1][3]*v.Y + m.M[2][3]*v.Z + m.M[3][3]*v.W
	return out
}

// MulPoint transforms a 3D point by m (W=1) and drops back to Vec3.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return m.MulVec4(Vec4{p.X, p.Y, p.Z, 1}).Vec3()
}

// Mul returns the matrix product m * o (applying o first, then m, to a
// column vector: (m*o)*v == m*(o*v)).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.M[k][row] * o.M[col][k]
			}
			out.M[col][row] = sum
		}
	}
	return out
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.M[col][row] = m.M[row][col]
		}
	}
	return out
}

// Determinant returns the determinant of m via cofactor expansion along the
// first row.
func (m Mat4) Determinant() float32 {
	a := m.M
	sub := func(skipRow, skipCol int) [3][3]float32 {
		var s [3][3]float32
		sr := 0
		for r := 0; r < 4; r++ {
			if r == skipRow {
				continue
			}
			sc := 0
			for c := 0; c < 4; c++ {
				if c == skipCol {
					continue
				}
				s[sr][sc] = a[c][r] // note: a is column-major, indexed [col][row]
				sc++
			}
			sr++
		}
		return s
	}
	det3 := func(s [3][3]float32) float32 {
		return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
			s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
			s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
	}
	var det float32
	sign := float32(1)
	for c := 0; c < 4; c++ {
		det += sign * a[c][0] * det3(sub(0, c))
		sign = -sign
	}
	return det
}

// Inverse computes the inverse of m via Gauss-Jordan elimination on the
// augmented [M | I] system, in the same validate/decompose/solve/finalize
// shape as the teacher's NxN matrix inverse (matrix/ops/inverse.go): first
// reject a matrix whose determinant magnitude falls below singularEpsilon,
// then eliminate with partial pivoting, then read the right half of the
// augmented matrix back out as the inverse.
//
// Returns ErrSingularMatrix if the determinant's magnitude is below 1e-12.
func (m Mat4) Inverse() (Mat4, error) {
	if absf32(m.Determinant()) < singularEpsilon {
		return Mat4{}, ErrSingularMatrix
	}

	// Build augmented matrix in row-major scratch form [A | I], 4 rows x 8 cols.
	var aug [4][8]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			aug[row][col] = float64(m.M[col][row])
		}
		aug[row][4+row] = 1
	}

	for pivot := 0; pivot < 4; pivot++ {
		// Partial pivot: find the row with the largest magnitude in this column.
		best := pivot
		for r := pivot + 1; r < 4; r++ {
			if abs64(aug[r][pivot]) > abs64(aug[best][pivot]) {
				best = r
			}
		}
		aug[pivot], aug[best] = aug[best], aug[pivot]

		pv := aug[pivot][pivot]
		for c := 0; c < 8; c++ {
			aug[pivot][c] /= pv
		}
		for r := 0; r < 4; r++ {
			if r == pivot {
				continue
			}
			factor := aug[r][pivot]
			for c := 0; c < 8; c++ {
				aug[r][c] -= factor * aug[pivot][c]
			}
		}
	}

	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.M[col][row] = float32(aug[row][4+col])
		}
	}
	return out, nil
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
