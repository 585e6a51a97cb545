package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spheres3d/internal/math3d"
	"spheres3d/internal/scene"
)

func keys(pressed ...Key) State {
	s := NewState()
	for _, k := range pressed {
		s.Keys[k] = true
	}
	return s
}

func drag(x, y int) State {
	s := NewState()
	s.MouseX, s.MouseY = x, y
	s.Buttons[MouseButtonRight] = true
	return s
}

func TestControllerMovement(t *testing.T) {
	tests := []struct {
		key  Key
		want math3d.Vector3
	}{
		{KeyW, math3d.Vector3{Z: 0.1}},
		{KeyS, math3d.Vector3{Z: -0.1}},
		{KeyA, math3d.Vector3{X: -0.1}},
		{KeyD, math3d.Vector3{X: 0.1}},
		{KeyQ, math3d.Vector3{Y: 0.1}},
		{KeyE, math3d.Vector3{Y: -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			c := NewController(0, 0)
			var cam scene.Camera
			quit := c.Apply(&cam, keys(tt.key))
			assert.False(t, quit)
			assert.Equal(t, tt.want, cam.Translate)
			assert.Equal(t, math3d.Vector3{}, cam.Rotate)
		})
	}
}

func TestControllerOpposingKeysCancel(t *testing.T) {
	c := NewController(0.5, 0)
	cam := scene.Camera{Translate: math3d.Vector3{X: 1, Y: 2, Z: 3}}
	c.Apply(&cam, keys(KeyW, KeyS, KeyA, KeyD))
	assert.Equal(t, math3d.Vector3{X: 1, Y: 2, Z: 3}, cam.Translate)
}

func TestControllerRightDrag(t *testing.T) {
	c := NewController(0, 0)
	var cam scene.Camera

	// cursor moved while no button was held
	c.Apply(&cam, func() State { s := NewState(); s.MouseX, s.MouseY = 10, 10; return s }())
	require.False(t, c.dragging)

	// first drag frame does not rotate even though the cursor jumped
	c.Apply(&cam, drag(100, 50))
	require.True(t, c.dragging)
	require.Equal(t, math3d.Vector3{}, cam.Rotate)

	c.Apply(&cam, drag(110, 45))
	assert.InDelta(t, 0.1, cam.Rotate.Y, 1e-6)
	assert.InDelta(t, -0.05, cam.Rotate.X, 1e-6)

	c.Apply(&cam, drag(110, 45))
	assert.InDelta(t, 0.1, cam.Rotate.Y, 1e-6)

	// release then press again re-anchors
	c.Apply(&cam, NewState())
	require.False(t, c.dragging)
	c.Apply(&cam, drag(500, 500))
	assert.InDelta(t, 0.1, cam.Rotate.Y, 1e-6)
	assert.InDelta(t, -0.05, cam.Rotate.X, 1e-6)
}

func TestControllerLeftButtonDoesNotRotate(t *testing.T) {
	c := NewController(0, 0)
	var cam scene.Camera
	for _, x := range []int{0, 20, 40} {
		s := NewState()
		s.MouseX = x
		s.Buttons[MouseButtonLeft] = true
		c.Apply(&cam, s)
	}
	assert.Equal(t, math3d.Vector3{}, cam.Rotate)
}

func TestControllerEscapeEdge(t *testing.T) {
	c := NewController(0, 0)
	var cam scene.Camera

	assert.False(t, c.Apply(&cam, NewState()))
	assert.True(t, c.Apply(&cam, keys(KeyEscape)))
	// held, not a new press
	assert.False(t, c.Apply(&cam, keys(KeyEscape)))
	assert.False(t, c.Apply(&cam, NewState()))
	assert.True(t, c.Apply(&cam, keys(KeyEscape)))
}

func TestStateZeroValue(t *testing.T) {
	var s State
	assert.False(t, s.Pressed(KeyW))
	assert.False(t, s.ButtonPressed(MouseButtonRight))
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Unknown", Key(99).String())
}
