package input

import "spheres3d/internal/scene"

const (
	DefaultMoveSpeed float32 = 0.1
	DefaultLookSpeed float32 = 0.01
)

// Controller turns per-frame input into camera movement. It remembers the
// previous frame so it can compute mouse deltas and key edges.
type Controller struct {
	MoveSpeed float32
	LookSpeed float32

	prev     State
	dragging bool
}

// NewController creates a controller with the given speeds. Zero speeds
// fall back to the defaults.
func NewController(moveSpeed, lookSpeed float32) *Controller {
	if moveSpeed == 0 {
		moveSpeed = DefaultMoveSpeed
	}
	if lookSpeed == 0 {
		lookSpeed = DefaultLookSpeed
	}
	return &Controller{
		MoveSpeed: moveSpeed,
		LookSpeed: lookSpeed,
		prev:      NewState(),
	}
}

// Apply mutates cam from the current input and reports whether Escape was
// pressed this frame.
func (c *Controller) Apply(cam *scene.Camera, cur State) (quit bool) {
	prev := c.prev
	c.prev = cur

	if cur.ButtonPressed(MouseButtonRight) {
		if !c.dragging {
			// first frame of a drag only anchors the cursor
			c.dragging = true
		} else {
			cam.Rotate.Y += float32(cur.MouseX-prev.MouseX) * c.LookSpeed
			cam.Rotate.X += float32(cur.MouseY-prev.MouseY) * c.LookSpeed
		}
	} else {
		c.dragging = false
	}

	if cur.Pressed(KeyW) {
		cam.Translate.Z += c.MoveSpeed
	}
	if cur.Pressed(KeyS) {
		cam.Translate.Z -= c.MoveSpeed
	}
	if cur.Pressed(KeyA) {
		cam.Translate.X -= c.MoveSpeed
	}
	if cur.Pressed(KeyD) {
		cam.Translate.X += c.MoveSpeed
	}
	if cur.Pressed(KeyQ) {
		cam.Translate.Y += c.MoveSpeed
	}
	if cur.Pressed(KeyE) {
		cam.Translate.Y -= c.MoveSpeed
	}

	return !prev.Pressed(KeyEscape) && cur.Pressed(KeyEscape)
}
