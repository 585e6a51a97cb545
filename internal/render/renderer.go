package render

import (
	"spheres3d/internal/math3d"
	"spheres3d/internal/scene"
)

// LineDrawer draws a screen-space line in pixel coordinates.
type LineDrawer interface {
	DrawLine(x0, y0, x1, y1 int, c Color)
}

// Renderer projects world-space wireframes and hands the resulting segments
// to a LineDrawer.
type Renderer struct {
	viewProjection math3d.Matrix4x4
	viewport       math3d.Matrix4x4
	out            LineDrawer
}

// NewRenderer creates a renderer for one frame.
func NewRenderer(viewProjection, viewport math3d.Matrix4x4, out LineDrawer) *Renderer {
	return &Renderer{
		viewProjection: viewProjection,
		viewport:       viewport,
		out:            out,
	}
}

// Project maps a world-space point to screen space: world to clip, then clip
// to pixels.
func (r *Renderer) Project(p math3d.Vector3) math3d.Vector3 {
	return math3d.Transform(math3d.Transform(p, r.viewProjection), r.viewport)
}

// DrawSegment projects both ends and truncates them to pixel positions.
func (r *Renderer) DrawSegment(s scene.Segment, c Color) {
	start := r.Project(s.Start)
	end := r.Project(s.End)
	r.out.DrawLine(int(start.X), int(start.Y), int(end.X), int(end.Y), c)
}

// DrawGrid draws the ground grid. Lines through the origin are black.
func (r *Renderer) DrawGrid(g scene.Grid) {
	for _, line := range scene.GridLines(g.HalfWidth, g.Subdivision) {
		c := Gray
		if line.Center {
			c = Black
		}
		r.DrawSegment(line.Segment, c)
	}
}

// DrawSphere draws the latitude/longitude wireframe of s.
func (r *Renderer) DrawSphere(s scene.Sphere, subdivision uint32, c Color) {
	for _, seg := range scene.SphereWireframe(s, subdivision) {
		r.DrawSegment(seg, c)
	}
}

// DrawScene draws sphere A, highlighted while it collides with B, then
// sphere B, then the grid.
func (r *Renderer) DrawScene(sc *scene.Scene, colliding bool) {
	colorA := White
	if colliding {
		colorA = Red
	}
	r.DrawSphere(sc.A, sc.SphereSubdivision, colorA)
	r.DrawSphere(sc.B, sc.SphereSubdivision, White)
	r.DrawGrid(sc.Grid)
}
