package render

import (
	"fmt"
	"image/color"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

const (
	White Color = 0xFFFFFFFF
	Red   Color = 0xFF0000FF
	Black Color = 0x000000FF
	Gray  Color = 0xAAAAAAFF
)

// ToRGBA unpacks c into a standard library color.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

// Floats returns the channels scaled to [0, 1], as GL vertex attributes expect.
func (c Color) Floats() [4]float32 {
	rgba := c.ToRGBA()
	return [4]float32{
		float32(rgba.R) / 255,
		float32(rgba.G) / 255,
		float32(rgba.B) / 255,
		float32(rgba.A) / 255,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
