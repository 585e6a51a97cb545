package math3d

import "math"

func sincos(angle float32) (sin, cos float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

// MakeRotateXMatrix rotates around the X axis
func MakeRotateXMatrix(angle float32) Matrix4x4 {
	sin, cos := sincos(angle)
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, cos, sin, 0},
		{0, -sin, cos, 0},
		{0, 0, 0, 1},
	}
}

// MakeRotateYMatrix rotates around the Y axis
func MakeRotateYMatrix(angle float32) Matrix4x4 {
	sin, cos := sincos(angle)
	return Matrix4x4{
		{cos, 0, -sin, 0},
		{0, 1, 0, 0},
		{sin, 0, cos, 0},
		{0, 0, 0, 1},
	}
}

// MakeRotateZMatrix rotates around the Z axis
func MakeRotateZMatrix(angle float32) Matrix4x4 {
	sin, cos := sincos(angle)
	return Matrix4x4{
		{cos, sin, 0, 0},
		{-sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MakeRotateMatrix builds the camera rotation from Euler angles in radians.
// The axes always combine as Z * X * Y; camera controls depend on that order.
func MakeRotateMatrix(rotate Vector3) Matrix4x4 {
	return Multiply(Multiply(MakeRotateZMatrix(rotate.Z), MakeRotateXMatrix(rotate.X)), MakeRotateYMatrix(rotate.Y))
}

// MakeViewMatrix builds a look-at view matrix. The camera looks down +Z in
// view space, so a point in front of the eye ends up with positive depth.
func MakeViewMatrix(eye, target, up Vector3) Matrix4x4 {
	zAxis := Normalize(target.Sub(eye))
	xAxis := Normalize(Cross(up, zAxis))
	yAxis := Cross(zAxis, xAxis)

	return Matrix4x4{
		{xAxis.X, yAxis.X, zAxis.X, 0},
		{xAxis.Y, yAxis.Y, zAxis.Y, 0},
		{xAxis.Z, yAxis.Z, zAxis.Z, 0},
		{-eye.Dot(xAxis), -eye.Dot(yAxis), -eye.Dot(zAxis), 1},
	}
}

// MakePerspectiveMatrix builds a perspective projection that maps depth
// into [0, 1] and carries view-space z in w (column 3).
func MakePerspectiveMatrix(fovY, aspect, nearZ, farZ float32) Matrix4x4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m Matrix4x4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = farZ / (farZ - nearZ)
	m[2][3] = 1
	m[3][2] = -nearZ * farZ / (farZ - nearZ)
	m[3][3] = 0
	return m
}

// MakeOrthographicMatrix maps the box [left, right] x [bottom, top] onto
// clip space with depth in [0, 1]. Passing top < bottom gives pixel
// coordinates with y growing downwards.
func MakeOrthographicMatrix(left, top, right, bottom, nearZ, farZ float32) Matrix4x4 {
	return Matrix4x4{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, 1 / (farZ - nearZ), 0},
		{(left + right) / (left - right), (top + bottom) / (bottom - top), nearZ / (nearZ - farZ), 1},
	}
}

// MakeViewportMatrix maps normalized device coordinates to pixels with the
// origin at the top-left corner and y growing downwards.
func MakeViewportMatrix(left, top, width, height, minDepth, maxDepth float32) Matrix4x4 {
	return Matrix4x4{
		{width / 2, 0, 0, 0},
		{0, -height / 2, 0, 0},
		{0, 0, maxDepth - minDepth, 0},
		{left + width/2, top + height/2, minDepth, 1},
	}
}
