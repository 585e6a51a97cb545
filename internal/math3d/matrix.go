package math3d

import "github.com/go-gl/mathgl/mgl32"

// Matrix4x4 is a row-major 4x4 matrix. Points are row vectors and are
// multiplied on the left (v * M), so translation lives in row 3 and
// transforms compose left to right.
type Matrix4x4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix4x4 {
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m1 * m2. The product is not commutative: with row vectors
// m1 is applied first.
func Multiply(m1, m2 Matrix4x4) Matrix4x4 {
	var result Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m1[i][k] * m2[k][j]
			}
			result[i][j] = sum
		}
	}
	return result
}

// Mgl converts m to an mgl32 matrix. mgl32 stores column-major matrices for
// column vectors, which is exactly the flat layout of the row-major
// row-vector transpose, so no element moves.
func (m Matrix4x4) Mgl() mgl32.Mat4 {
	var out mgl32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i*4+j] = m[i][j]
		}
	}
	return out
}
