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

package main

import (
	"image"
	"image/png"
	"log/slog"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/x/explorer"

	"seehuhn.de/go/scanline"
)

// loop runs the window event loop.  The window is both the input source
// and the display surface of the session.  All editing happens on this
// goroutine.
func loop(w *app.Window, s *session) error {
	expl := explorer.NewExplorer(w)

	// frame is the last image presented by the editor.  The editor
	// allocates a new image for every presentation, so a frame can be
	// handed to other goroutines once it has been replaced.
	var frame *image.RGBA
	display := scanline.DisplayFunc(func(img *image.RGBA) error {
		frame = img
		return nil
	})

	var ops op.Ops
	clickTag := new(int)
	for {
		e := w.Event()
		expl.ListenEvents(e)
		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			if e.Size != s.editor.Bounds().Size() {
				s.handle(scanline.ResizeEvent{Width: e.Size.X, Height: e.Size.Y})
			}

			for {
				ev, ok := gtx.Event(pointer.Filter{Target: clickTag, Kinds: pointer.Press})
				if !ok {
					break
				}
				pe, ok := ev.(pointer.Event)
				if !ok || !pe.Buttons.Contain(pointer.ButtonPrimary) {
					continue
				}
				// Frame and pointer coordinates are both in physical pixels.
				s.handle(scanline.ScaleClick(float64(pe.Position.X), float64(pe.Position.Y), 1, 1))
			}

			for {
				ev, ok := gtx.Event(
					key.Filter{Name: "F"},
					key.Filter{Name: "C"},
					key.Filter{Name: "S"},
					key.Filter{Name: key.NameEscape},
				)
				if !ok {
					break
				}
				ke, ok := ev.(key.Event)
				if !ok || ke.State != key.Press {
					continue
				}
				switch ke.Name {
				case "F":
					s.handle(scanline.FillRequest{})
				case "C":
					s.handle(scanline.ClearRequest{})
				case "S":
					if frame != nil {
						go saveSnapshot(expl, frame)
					}
				case key.NameEscape:
					return nil
				}
			}

			if _, err := s.editor.Present(display); err != nil {
				slog.Warn("present", "error", err)
			}

			area := clip.Rect(image.Rectangle{Max: e.Size}).Push(gtx.Ops)
			event.Op(gtx.Ops, clickTag)
			if frame != nil {
				paint.NewImageOp(frame).Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
			}
			area.Pop()

			e.Frame(gtx.Ops)
		}
	}
}

// saveSnapshot asks the user for a file name and writes img to it.
func saveSnapshot(expl *explorer.Explorer, img *image.RGBA) {
	f, err := expl.CreateFile("polygon.png")
	if err != nil {
		slog.Warn("save snapshot", "error", err)
		return
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		slog.Warn("save snapshot", "error", err)
		return
	}
	if err := f.Close(); err != nil {
		slog.Warn("save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved")
}
