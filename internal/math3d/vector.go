package math3d

import "math"

// Vector3 is a 3D point or direction. The zero value is the origin.
type Vector3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Add returns v + o
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o
func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSquared avoids the square root when only comparisons are needed.
func (v Vector3) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns |v|
func (v Vector3) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize returns v scaled to unit length.
// A zero-length vector has no direction, so the zero vector is returned.
func Normalize(v Vector3) Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	inv := 1 / length
	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
