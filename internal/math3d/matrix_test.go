package math3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func requireMatInDelta(t *testing.T, want, got Matrix4x4, delta float64) {
	t.Helper()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.InDelta(t, want[i][j], got[i][j], delta, "m[%d][%d]", i, j)
		}
	}
}

var (
	matA = Matrix4x4{
		{1, 2, 0, 0.5},
		{0, 1, -1, 0},
		{3, 0, 1, 0},
		{0.25, -2, 0, 1},
	}
	matB = Matrix4x4{
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 2, 1},
		{4, 5, 6, 1},
	}
	matC = Matrix4x4{
		{0.5, 0, 0, 0},
		{0, 0.5, 0.1, 0},
		{0, -0.2, 0.5, 0},
		{1, 1, 1, 1},
	}
)

func TestMultiplyIdentity(t *testing.T) {
	require.Equal(t, matA, Multiply(matA, Identity()))
	require.Equal(t, matA, Multiply(Identity(), matA))
}

func TestMultiplyAssociative(t *testing.T) {
	left := Multiply(Multiply(matA, matB), matC)
	right := Multiply(matA, Multiply(matB, matC))
	requireMatInDelta(t, left, right, 1e-4)
}

func TestMultiplyNotCommutative(t *testing.T) {
	require.NotEqual(t, Multiply(matA, matB), Multiply(matB, matA))
}

func TestMultiplyMatchesMgl(t *testing.T) {
	// (A*B)^T = B^T * A^T, and Mgl is a transposing reinterpretation.
	got := Multiply(matA, matB).Mgl()
	want := matB.Mgl().Mul4(matA.Mgl())
	require.True(t, want.ApproxEqualThreshold(got, 1e-5), "want %v got %v", want, got)
}

func fromMgl(src mgl32.Mat4) Matrix4x4 {
	var m Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = src[i*4+j]
		}
	}
	return m
}

func TestMglRoundTrip(t *testing.T) {
	require.Equal(t, matC, fromMgl(matC.Mgl()))
	require.Equal(t, Identity(), fromMgl(mgl32.Ident4()))
}
