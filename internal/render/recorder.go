package render

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Line is one recorded DrawLine call.
type Line struct {
	X0, Y0, X1, Y1 int
	Color          Color
}

// Recorder is a LineDrawer that keeps the draw calls of a frame in order.
type Recorder struct {
	lines []Line
}

// NewRecorder returns an empty recorder with room for capacity lines.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{lines: make([]Line, 0, capacity)}
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.lines = append(r.lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: c})
}

// Lines returns the recorded calls. The slice is reused after Reset.
func (r *Recorder) Lines() []Line {
	return r.lines
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	return len(r.lines)
}

// Reset drops the recorded calls and keeps the backing array.
func (r *Recorder) Reset() {
	r.lines = r.lines[:0]
}

// Replay issues every recorded call, in order, on out.
func (r *Recorder) Replay(out LineDrawer) {
	for _, l := range r.lines {
		out.DrawLine(l.X0, l.Y0, l.X1, l.Y1, l.Color)
	}
}

// Count returns how many calls used color c.
func (r *Recorder) Count(c Color) int {
	n := 0
	for _, l := range r.lines {
		if l.Color == c {
			n++
		}
	}
	return n
}

// Digest fingerprints the call sequence. Two frames with the same digest
// issued the same lines in the same order.
func (r *Recorder) Digest() uint64 {
	h := xxhash.New()
	var buf [36]byte
	for _, l := range r.lines {
		binary.LittleEndian.PutUint64(buf[0:], uint64(int64(l.X0)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(l.Y0)))
		binary.LittleEndian.PutUint64(buf[16:], uint64(int64(l.X1)))
		binary.LittleEndian.PutUint64(buf[24:], uint64(int64(l.Y1)))
		binary.LittleEndian.PutUint32(buf[32:], uint32(l.Color))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
