package scene

import "spheres3d/internal/math3d"

var (
	localForward = math3d.Vector3{X: 0, Y: 0, Z: 1}
	localUp      = math3d.Vector3{X: 0, Y: 1, Z: 0}
)

// Camera is the free-fly camera state mutated by input every frame.
// Rotate holds Euler angles in radians.
type Camera struct {
	Translate math3d.Vector3
	Rotate    math3d.Vector3
}

// Basis derives the look-at inputs from the current rotation.
func (c Camera) Basis() (eye, target, up math3d.Vector3) {
	rotateMatrix := math3d.MakeRotateMatrix(c.Rotate)
	forward := math3d.Transform(localForward, rotateMatrix)
	up = math3d.Transform(localUp, rotateMatrix)
	return c.Translate, c.Translate.Add(forward), up
}

// ViewMatrix is rebuilt from the current state on every call.
func (c Camera) ViewMatrix() math3d.Matrix4x4 {
	eye, target, up := c.Basis()
	return math3d.MakeViewMatrix(eye, target, up)
}
