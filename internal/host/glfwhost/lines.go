package glfwhost

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"spheres3d/internal/math3d"
	"spheres3d/internal/render"
)

// floats per vertex: x, y, r, g, b, a
const vertexStride = 6

// lineBatch collects the frame's screen-space lines and draws them in one
// GL_LINES call.
type lineBatch struct {
	program           uint32
	vao, vbo          uint32
	projectionUniform int32
	vertices          []float32
	uploadedCapacity  int
}

func newLineBatch() (*lineBatch, error) {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	b := &lineBatch{
		program:           program,
		projectionUniform: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		vertices:          make([]float32, 0, 2*vertexStride*1100),
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	posAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(posAttrib)
	gl.VertexAttribPointer(posAttrib, 2, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(0))

	colAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(colAttrib)
	gl.VertexAttribPointer(colAttrib, 4, gl.FLOAT, false, vertexStride*4, gl.PtrOffset(2*4))

	return b, nil
}

// DrawLine implements render.LineDrawer. Pixel coordinates are shifted to
// pixel centers so axis-aligned lines stay one pixel wide.
func (b *lineBatch) DrawLine(x0, y0, x1, y1 int, c render.Color) {
	rgba := c.Floats()
	b.vertices = append(b.vertices,
		float32(x0)+0.5, float32(y0)+0.5, rgba[0], rgba[1], rgba[2], rgba[3],
		float32(x1)+0.5, float32(y1)+0.5, rgba[0], rgba[1], rgba[2], rgba[3],
	)
}

// flush uploads and draws the batch, then empties it. width and height are
// the logical surface size the line coordinates are expressed in.
func (b *lineBatch) flush(width, height int) {
	if len(b.vertices) == 0 {
		return
	}
	gl.UseProgram(b.program)

	// top-left origin with y growing downwards, matching the viewport matrix
	projection := math3d.MakeOrthographicMatrix(0, 0, float32(width), float32(height), 0, 1).Mgl()
	gl.UniformMatrix4fv(b.projectionUniform, 1, false, &projection[0])

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	if len(b.vertices) > b.uploadedCapacity {
		gl.BufferData(gl.ARRAY_BUFFER, cap(b.vertices)*4, nil, gl.DYNAMIC_DRAW)
		b.uploadedCapacity = cap(b.vertices)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(b.vertices)*4, gl.Ptr(b.vertices))
	gl.DrawArrays(gl.LINES, 0, int32(len(b.vertices)/vertexStride))

	b.vertices = b.vertices[:0]
}

func (b *lineBatch) delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteProgram(b.program)
}
