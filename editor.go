// seehuhn.de/go/scanline - a software polygon rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scanline

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

var (
	// ErrOutOfBounds is returned when a vertex lies outside the buffer.
	ErrOutOfBounds = errors.New("vertex outside buffer")

	// ErrTooFewVertices is returned when a fill is requested for a
	// polygon with fewer than three vertices.
	ErrTooFewVertices = errors.New("need at least 3 vertices to fill")
)

// State describes the progress of the polygon being edited.
type State int

const (
	StateEmpty    State = iota // no vertices
	StateBuilding              // one or two vertices
	StateReady                 // at least three vertices, not filled
	StateFilled                // filled, no vertices added since
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateReady:
		return "ready"
	case StateFilled:
		return "filled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultMarkerSize is the default half-width of the square drawn at
// every vertex.
const DefaultMarkerSize = 2

// Editor is an interactive polygon editing session.  It owns the vertex
// list and the pixel buffer the polygon is drawn into.
//
// The vertex list is the authoritative state; the buffer is derived from
// it and can be reconstructed at any time, which happens after a resize.
// Every change to the buffer marks the editor as dirty, and [Editor.Present]
// only transfers the buffer to a display when it is dirty.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	buf        *Buffer
	filler     *Filler
	vertices   Polygon
	palette    Palette
	markerSize int
	filledAt   int // number of vertices at the last fill, 0 if none
	dirty      bool
	log        *slog.Logger
}

// Option configures an [Editor].
type Option func(*Editor)

// WithPalette sets the colours used for drawing.
func WithPalette(p Palette) Option {
	return func(e *Editor) { e.palette = p }
}

// WithMarkerSize sets the half-width of the vertex markers.  A size of 0
// draws single-pixel markers; negative sizes disable markers.
func WithMarkerSize(size int) Option {
	return func(e *Editor) { e.markerSize = size }
}

// WithLogger sets the logger of the editor, overriding the package
// logger set by [SetLogger].
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// NewEditor starts an editing session with an empty width×height buffer.
func NewEditor(width, height int, opts ...Option) (*Editor, error) {
	e := &Editor{
		palette:    DefaultPalette(),
		markerSize: DefaultMarkerSize,
	}
	for _, opt := range opts {
		opt(e)
	}

	buf, err := NewBuffer(width, height, e.palette.Background)
	if err != nil {
		return nil, err
	}
	e.buf = buf
	e.filler = NewFiller(buf.Bounds())
	e.dirty = true
	e.logger().Info("buffer created", "width", width, "height", height)
	return e, nil
}

func (e *Editor) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return Logger()
}

// Buffer returns the pixel buffer of the session.  The caller must not
// modify it.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

// Bounds returns the bounds of the pixel buffer.
func (e *Editor) Bounds() image.Rectangle {
	return e.buf.Bounds()
}

// Palette returns the colours used for drawing.
func (e *Editor) Palette() Palette {
	return e.palette
}

// Vertices returns a copy of the vertex list.
func (e *Editor) Vertices() Polygon {
	return e.vertices.Clone()
}

// State returns the current editing state.
func (e *Editor) State() State {
	switch n := len(e.vertices); {
	case n == 0:
		return StateEmpty
	case n < 3:
		return StateBuilding
	case e.filledAt == n:
		return StateFilled
	default:
		return StateReady
	}
}

// Dirty reports whether the buffer changed since it was last presented.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// AddVertex appends p to the polygon.  The new vertex is joined to the
// previous one by an anti-aliased line and marked with a small square.
// Points outside the buffer are rejected with [ErrOutOfBounds] and leave
// the session unchanged.
func (e *Editor) AddVertex(p vec.Vec2) error {
	w, h := float64(e.buf.Width()), float64(e.buf.Height())
	if !(p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h) {
		e.logger().Warn("vertex rejected", "x", p.X, "y", p.Y, "width", w, "height", h)
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrOutOfBounds, p.X, p.Y)
	}

	if n := len(e.vertices); n > 0 {
		e.buf.DrawLine(e.vertices[n-1], p, e.palette.Line)
	}
	e.drawMarker(p)
	e.vertices = append(e.vertices, p)
	e.dirty = true

	e.logger().Debug("vertex added", "x", p.X, "y", p.Y, "count", len(e.vertices))
	return nil
}

// Fill fills the polygon with the fill colour and draws the closed
// outline and the vertex markers on top.  At least three vertices are
// required, otherwise [ErrTooFewVertices] is returned and the buffer is
// left unchanged.
//
// The picture is rebuilt from the vertex list, so repeated calls produce
// identical buffers.
func (e *Editor) Fill() error {
	if n := len(e.vertices); n < 3 {
		e.logger().Warn("fill rejected", "vertices", n)
		return fmt.Errorf("%w: have %d", ErrTooFewVertices, n)
	}

	e.filledAt = len(e.vertices)
	e.render()

	e.logger().Debug("polygon filled", "vertices", len(e.vertices))
	return nil
}

// Resize reallocates the buffer with the new dimensions and redraws the
// polygon from the vertex list.  Vertices outside the new bounds are kept
// and are clipped while drawing.  Non-positive sizes are rejected with
// [ErrInvalidSize] and leave the session unchanged.
func (e *Editor) Resize(width, height int) error {
	if err := e.buf.Resize(width, height); err != nil {
		e.logger().Warn("resize rejected", "width", width, "height", height)
		return err
	}
	e.filler.Clip = e.buf.Bounds()
	e.render()

	e.logger().Info("buffer resized", "width", width, "height", height)
	return nil
}

// Clear discards all vertices and clears the buffer.
func (e *Editor) Clear() {
	e.vertices = e.vertices[:0]
	e.filledAt = 0
	e.buf.Clear()
	e.dirty = true

	e.logger().Debug("cleared")
}

// Handle applies an input event to the session.
func (e *Editor) Handle(ev Event) error {
	switch ev := ev.(type) {
	case VertexClick:
		return e.AddVertex(vec.Vec2{X: ev.X, Y: ev.Y})
	case FillRequest:
		return e.Fill()
	case ClearRequest:
		e.Clear()
		return nil
	case ResizeEvent:
		return e.Resize(ev.Width, ev.Height)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// Present shows the buffer on d if it changed since the last successful
// call.  The return value reports whether d.Present was called
// successfully.
func (e *Editor) Present(d Display) (bool, error) {
	if !e.dirty {
		return false, nil
	}
	if err := d.Present(e.buf.RGBA()); err != nil {
		return false, err
	}
	e.dirty = false
	return true, nil
}

// render redraws the buffer from the vertex list.  The drawing order
// matches the incremental drawing done by AddVertex and Fill, so that the
// result is identical to the buffer before a resize.  Vertices added after
// the last fill continue the outline on top of the filled polygon.
func (e *Editor) render() {
	e.buf.Clear()
	if len(e.vertices) > 0 {
		e.drawMarker(e.vertices[0])
	}

	if e.filledAt == 0 {
		e.drawSegments(e.vertices)
	} else {
		filled := e.vertices[:e.filledAt]
		e.drawSegments(filled)
		e.buf.FillPolygon(e.filler, filled, e.palette.Fill)

		// The spans overwrite the thin outline and the markers.
		for p, q := range filled.Edges() {
			e.buf.DrawLine(p, q, e.palette.Line)
		}
		for _, v := range filled {
			e.drawMarker(v)
		}

		e.drawSegments(e.vertices[e.filledAt-1:])
	}
	e.dirty = true
}

// drawSegments draws the open polyline through poly, with a marker at the
// end of every segment.
func (e *Editor) drawSegments(poly Polygon) {
	for p, q := range poly.Segments() {
		e.buf.DrawLine(p, q, e.palette.Line)
		e.drawMarker(q)
	}
}

func (e *Editor) drawMarker(p vec.Vec2) {
	s := e.markerSize
	if s < 0 {
		return
	}
	x, y := roundInt(p.X), roundInt(p.Y)
	e.buf.FillRect(image.Rect(x-s, y-s, x+s+1, y+s+1), e.palette.Marker)
}
