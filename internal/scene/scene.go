package scene

import (
	"fmt"

	"spheres3d/internal/math3d"
)

// Projection holds the perspective parameters. FovY is in radians.
type Projection struct {
	FovY   float32
	Aspect float32
	NearZ  float32
	FarZ   float32
}

// Matrix builds the projection matrix.
func (p Projection) Matrix() math3d.Matrix4x4 {
	return math3d.MakePerspectiveMatrix(p.FovY, p.Aspect, p.NearZ, p.FarZ)
}

// Viewport is the target surface size in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Matrix maps clip space onto the whole surface with depth in [0, 1].
func (v Viewport) Matrix() math3d.Matrix4x4 {
	return math3d.MakeViewportMatrix(0, 0, float32(v.Width), float32(v.Height), 0, 1)
}

// Aspect returns width / height.
func (v Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// Grid describes the ground grid on the XZ plane.
type Grid struct {
	HalfWidth   float32
	Subdivision uint32
}

// Scene is the whole mutable state of the demo. It is owned by the frame loop
// and passed by pointer; nothing in it is global.
type Scene struct {
	Camera     Camera
	A, B       Sphere
	Projection Projection
	Viewport   Viewport
	Grid       Grid
	// SphereSubdivision is the number of latitude and longitude bands.
	SphereSubdivision uint32
}

// Validate checks the spheres. Camera and projection values come from
// validated config and are not rechecked here.
func (s *Scene) Validate() error {
	if err := s.A.Validate(); err != nil {
		return fmt.Errorf("sphere a: %w", err)
	}
	if err := s.B.Validate(); err != nil {
		return fmt.Errorf("sphere b: %w", err)
	}
	return nil
}

// ViewProjection returns view * projection for the current camera.
func (s *Scene) ViewProjection() math3d.Matrix4x4 {
	return math3d.Multiply(s.Camera.ViewMatrix(), s.Projection.Matrix())
}

// ViewportMatrix returns the clip-to-screen transform.
func (s *Scene) ViewportMatrix() math3d.Matrix4x4 {
	return s.Viewport.Matrix()
}

// Colliding reports whether the two spheres currently intersect.
func (s *Scene) Colliding() bool {
	return IsColliding(s.A, s.B)
}

// SetSpheres replaces both spheres if they are valid and leaves the scene
// untouched otherwise.
func (s *Scene) SetSpheres(a, b Sphere) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("sphere a: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("sphere b: %w", err)
	}
	s.A, s.B = a, b
	return nil
}
