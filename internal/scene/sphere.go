package scene

import (
	"errors"
	"fmt"

	"spheres3d/internal/math3d"
)

// ErrNegativeRadius is returned when a sphere is built or edited with a radius below zero.
var ErrNegativeRadius = errors.New("sphere radius must not be negative")

// Sphere is a center and a radius in world units.
type Sphere struct {
	Center math3d.Vector3 `yaml:"center"`
	Radius float32        `yaml:"radius"`
}

// NewSphere validates the radius before returning the sphere.
func NewSphere(center math3d.Vector3, radius float32) (Sphere, error) {
	s := Sphere{Center: center, Radius: radius}
	if err := s.Validate(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// Validate reports whether the sphere can take part in collision tests.
func (s Sphere) Validate() error {
	if s.Radius < 0 {
		return fmt.Errorf("radius %g: %w", s.Radius, ErrNegativeRadius)
	}
	return nil
}

// IsColliding reports whether two spheres overlap. Touching spheres collide.
func IsColliding(a, b Sphere) bool {
	distanceSquared := a.Center.Sub(b.Center).LengthSquared()
	radiusSum := a.Radius + b.Radius
	return distanceSquared <= radiusSum*radiusSum
}
