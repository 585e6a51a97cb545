package math3d

// Transform treats v as the homogeneous point (x, y, z, 1), computes v * m and
// divides by the resulting w. When w is zero the divide is skipped and the
// pre-divide coordinates are returned, which keeps the result finite.
func Transform(v Vector3, m Matrix4x4) Vector3 {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vector3{x, y, z}
}
