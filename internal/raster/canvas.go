package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spheres3d/internal/render"
)

// Canvas is a software render target. It implements render.LineDrawer.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a width x height canvas filled with background.
func NewCanvas(width, height int, background render.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background.ToRGBA()), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// DrawLine draws a line from (x1, y1) to (x2, y2) with a DDA stepper.
// Pixels outside the canvas are skipped.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col render.Color) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		c.set(x1, y1, col.ToRGBA())
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	rgba := col.ToRGBA()
	for i := 0; i <= int(steps); i++ {
		c.set(int(math.Round(x)), int(math.Round(y)), rgba)
		x += xInc
		y += yInc
	}
}

func (c *Canvas) set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return
	}
	offset := c.img.PixOffset(x, y)
	c.img.Pix[offset] = col.R
	c.img.Pix[offset+1] = col.G
	c.img.Pix[offset+2] = col.B
	c.img.Pix[offset+3] = col.A
}

// DrawText writes one line of text with its baseline at y.
func (c *Canvas) DrawText(x, y int, text string, col render.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.ToRGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// LineHeight is the advance between DrawText lines.
func LineHeight() int {
	return basicfont.Face7x13.Metrics().Height.Ceil()
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
