package scene

import (
	"math"

	"spheres3d/internal/math3d"
)

// Segment is a world-space line segment.
type Segment struct {
	Start, End math3d.Vector3
}

// GridLine is a segment of the ground grid. Center marks the lines through
// the origin.
type GridLine struct {
	Segment
	Center bool
}

// GridLines returns subdivision+1 offsets across [-halfWidth, halfWidth], two
// lines per offset: first parallel to Z (x fixed), then parallel to X (z fixed).
func GridLines(halfWidth float32, subdivision uint32) []GridLine {
	every := (halfWidth * 2) / float32(subdivision)
	lines := make([]GridLine, 0, 2*(subdivision+1))
	for i := uint32(0); i <= subdivision; i++ {
		// the conversion rounds the product before the add so it is never fused;
		// offset is then an exact multiple of every and the center line hits 0
		offset := -halfWidth + float32(float32(i)*every)
		center := offset == 0

		lines = append(lines,
			GridLine{
				Segment: Segment{
					Start: math3d.Vector3{X: offset, Y: 0, Z: -halfWidth},
					End:   math3d.Vector3{X: offset, Y: 0, Z: halfWidth},
				},
				Center: center,
			},
			GridLine{
				Segment: Segment{
					Start: math3d.Vector3{X: -halfWidth, Y: 0, Z: offset},
					End:   math3d.Vector3{X: halfWidth, Y: 0, Z: offset},
				},
				Center: center,
			},
		)
	}
	return lines
}

// SpherePoint maps latitude and longitude in radians onto the sphere surface.
func SpherePoint(s Sphere, lat, lon float32) math3d.Vector3 {
	sinLat, cosLat := math.Sincos(float64(lat))
	sinLon, cosLon := math.Sincos(float64(lon))
	return math3d.Vector3{
		X: s.Center.X + s.Radius*float32(cosLat*cosLon),
		Y: s.Center.Y + s.Radius*float32(sinLat),
		Z: s.Center.Z + s.Radius*float32(cosLat*sinLon),
	}
}

// SphereWireframe builds a latitude/longitude mesh. Each cell contributes its
// latitude edge followed by its longitude edge, so the result holds exactly
// 2*subdivision*subdivision segments.
func SphereWireframe(s Sphere, subdivision uint32) []Segment {
	latEvery := float32(math.Pi) / float32(subdivision)
	lonEvery := 2 * float32(math.Pi) / float32(subdivision)

	segments := make([]Segment, 0, 2*subdivision*subdivision)
	for latIndex := uint32(0); latIndex < subdivision; latIndex++ {
		lat := -float32(math.Pi)/2 + latEvery*float32(latIndex)
		nextLat := lat + latEvery
		for lonIndex := uint32(0); lonIndex < subdivision; lonIndex++ {
			lon := float32(lonIndex) * lonEvery
			nextLon := lon + lonEvery

			a := SpherePoint(s, lat, lon)
			b := SpherePoint(s, nextLat, lon)
			c := SpherePoint(s, lat, nextLon)

			segments = append(segments, Segment{a, b}, Segment{a, c})
		}
	}
	return segments
}
