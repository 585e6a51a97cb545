package input

// Key identifies a keyboard key the controller reacts to.
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
	KeyQ
	KeyE
	KeyEscape
)

var keyNames = map[Key]string{
	KeyW:      "W",
	KeyS:      "S",
	KeyA:      "A",
	KeyD:      "D",
	KeyQ:      "Q",
	KeyE:      "E",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// MouseButton follows the host numbering: 0 left, 1 right, 2 middle.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// State is a snapshot of the devices for one frame.
type State struct {
	Keys    map[Key]bool
	MouseX  int
	MouseY  int
	Buttons map[MouseButton]bool
}

// NewState returns an empty snapshot with its maps allocated.
func NewState() State {
	return State{
		Keys:    make(map[Key]bool),
		Buttons: make(map[MouseButton]bool),
	}
}

// Pressed reports whether k is held. Nil maps read as released.
func (s State) Pressed(k Key) bool {
	return s.Keys[k]
}

// ButtonPressed reports whether b is held.
func (s State) ButtonPressed(b MouseButton) bool {
	return s.Buttons[b]
}
