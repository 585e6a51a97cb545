package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spheres3d/internal/math3d"
	"spheres3d/internal/scene"
)

type lineDrawerFunc func(x0, y0, x1, y1 int, c Color)

func (f lineDrawerFunc) DrawLine(x0, y0, x1, y1 int, c Color) { f(x0, y0, x1, y1, c) }

func defaultScene() *scene.Scene {
	return &scene.Scene{
		Camera:            scene.Camera{Translate: math3d.Vector3{Y: 2, Z: -7}},
		A:                 scene.Sphere{Center: math3d.Vector3{Y: 1}, Radius: 1},
		B:                 scene.Sphere{Center: math3d.Vector3{X: 2, Y: 1}, Radius: 1},
		Projection:        scene.Projection{FovY: 0.5, Aspect: 1280.0 / 720.0, NearZ: 0.1, FarZ: 100},
		Viewport:          scene.Viewport{Width: 1280, Height: 720},
		Grid:              scene.Grid{HalfWidth: 2, Subdivision: 10},
		SphereSubdivision: 16,
	}
}

func newTestRenderer(sc *scene.Scene, out LineDrawer) *Renderer {
	return NewRenderer(sc.ViewProjection(), sc.ViewportMatrix(), out)
}

func TestDrawGridCallCount(t *testing.T) {
	sc := defaultScene()
	rec := NewRecorder(0)
	newTestRenderer(sc, rec).DrawGrid(sc.Grid)

	require.Equal(t, 22, rec.Len())
	assert.Equal(t, 2, rec.Count(Black))
	assert.Equal(t, 20, rec.Count(Gray))
}

func TestDrawGridCenterLinesAreMiddlePair(t *testing.T) {
	sc := defaultScene()
	rec := NewRecorder(22)
	newTestRenderer(sc, rec).DrawGrid(sc.Grid)

	for i, l := range rec.Lines() {
		if i == 10 || i == 11 {
			assert.Equal(t, Black, l.Color, "line %d", i)
		} else {
			assert.Equal(t, Gray, l.Color, "line %d", i)
		}
	}
}

func TestDrawSphereCallCount(t *testing.T) {
	sc := defaultScene()
	rec := NewRecorder(0)
	newTestRenderer(sc, rec).DrawSphere(sc.A, 16, White)

	require.Equal(t, 512, rec.Len())
	assert.Equal(t, 512, rec.Count(White))
}

func TestDrawSceneHighlightsCollision(t *testing.T) {
	sc := defaultScene()
	rec := NewRecorder(0)
	newTestRenderer(sc, rec).DrawScene(sc, sc.Colliding())

	require.Equal(t, 512+512+22, rec.Len())
	assert.Equal(t, 512, rec.Count(Red))
	assert.Equal(t, 512, rec.Count(White))
	// sphere A is drawn first
	assert.Equal(t, Red, rec.Lines()[0].Color)
	assert.Equal(t, White, rec.Lines()[512].Color)

	rec.Reset()
	sc.B.Center.X = 3
	newTestRenderer(sc, rec).DrawScene(sc, sc.Colliding())
	assert.Equal(t, 0, rec.Count(Red))
	assert.Equal(t, 1024, rec.Count(White))
}

func TestProjectTruncatesToPixels(t *testing.T) {
	var got []Line
	out := lineDrawerFunc(func(x0, y0, x1, y1 int, c Color) {
		got = append(got, Line{x0, y0, x1, y1, c})
	})

	// identity view-projection: world x/y are already NDC
	r := NewRenderer(math3d.Identity(), math3d.MakeViewportMatrix(0, 0, 100, 100, 0, 1), out)
	r.DrawSegment(scene.Segment{
		Start: math3d.Vector3{X: -1, Y: 1},
		End:   math3d.Vector3{X: 0.019, Y: -0.019},
	}, Red)

	require.Len(t, got, 1)
	assert.Equal(t, Line{0, 0, 50, 50, Red}, got[0])
}

func TestProjectOriginToScreenCenter(t *testing.T) {
	sc := defaultScene()
	sc.Camera.Translate = math3d.Vector3{Z: -7}
	p := newTestRenderer(sc, nil).Project(math3d.Vector3{})
	assert.InDelta(t, 640, p.X, 1e-3)
	assert.InDelta(t, 360, p.Y, 1e-3)
}

func TestRecorderDigest(t *testing.T) {
	sc := defaultScene()
	a, b := NewRecorder(0), NewRecorder(0)
	newTestRenderer(sc, a).DrawScene(sc, true)
	newTestRenderer(sc, b).DrawScene(sc, true)
	require.Equal(t, a.Digest(), b.Digest())

	b.Reset()
	newTestRenderer(sc, b).DrawScene(sc, false)
	require.NotEqual(t, a.Digest(), b.Digest())
}

func TestRecorderReplay(t *testing.T) {
	src := NewRecorder(0)
	src.DrawLine(1, 2, 3, 4, Red)
	src.DrawLine(-5, 6, 7, -8, Gray)

	dst := NewRecorder(0)
	src.Replay(dst)
	require.Equal(t, src.Lines(), dst.Lines())
	require.Equal(t, src.Digest(), dst.Digest())
}

func TestColor(t *testing.T) {
	c := Color(0x11223344)
	rgba := c.ToRGBA()
	assert.Equal(t, uint8(0x11), rgba.R)
	assert.Equal(t, uint8(0x22), rgba.G)
	assert.Equal(t, uint8(0x33), rgba.B)
	assert.Equal(t, uint8(0x44), rgba.A)
	assert.Equal(t, "#AAAAAAFF", Gray.String())
	assert.Equal(t, [4]float32{1, 0, 0, 1}, Red.Floats())
}
