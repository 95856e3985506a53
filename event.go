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

// Event is an input event for an [Editor].
//
// The set of events is closed: the only implementations are
// [VertexClick], [FillRequest], [ClearRequest] and [ResizeEvent].
// Input sources translate their native events (mouse buttons, key codes,
// window notifications) into these values before they reach the editor.
type Event interface {
	isEvent()
}

// VertexClick requests a new polygon vertex at the given buffer
// coordinates.
type VertexClick struct {
	X, Y float64
}

// FillRequest requests that the current polygon be filled.
type FillRequest struct{}

// ClearRequest requests that all vertices be discarded.
type ClearRequest struct{}

// ResizeEvent reports a new size of the display surface, in pixels.
type ResizeEvent struct {
	Width, Height int
}

func (VertexClick) isEvent()  {}
func (FillRequest) isEvent()  {}
func (ClearRequest) isEvent() {}
func (ResizeEvent) isEvent()  {}

// ScaleClick converts a click position in window coordinates to a
// [VertexClick] in buffer coordinates.  The scale factors are the ratios
// of backing-store size to window size, for example 2 on a high-density
// display.  Non-positive scale factors are treated as 1.
func ScaleClick(x, y, scaleX, scaleY float64) VertexClick {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	return VertexClick{X: x * scaleX, Y: y * scaleY}
}
