package rotation

import "github.com/chetanxpatil/livnium-engine/lattice"

// Matrix is a 3×3 integer matrix in row-major order.
// Group members are signed basis permutations, so every entry is
// -1, 0 or +1 with exactly one non-zero entry per row and column.
type Matrix [3][3]int

// Identity3 is the 3×3 identity matrix.
var Identity3 = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Det returns the determinant of m.
// Complexity: O(1).
func (m Matrix) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Mul returns the matrix product m·o.
// Complexity: O(1).
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += m[r][k] * o[k][c]
			}
			out[r][c] = s
		}
	}
	return out
}

// Transpose returns mᵀ. For orthonormal integer matrices the
// transpose is the inverse.
// Complexity: O(1).
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Apply returns m·v for a lattice coordinate v.
// Complexity: O(1).
func (m Matrix) Apply(v lattice.Coord) lattice.Coord {
	return lattice.Coord{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// less orders matrices lexicographically over rows (row-major entry
// comparison). This ordering fixes the stable op-id assignment.
func less(a, b Matrix) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if a[r][c] != b[r][c] {
				return a[r][c] < b[r][c]
			}
		}
	}
	return false
}
