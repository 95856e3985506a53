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

// Command polydraw is an interactive polygon rasterizer.
//
// Left-click to add polygon vertices.  Keys: F fills the polygon, C clears
// it, S saves a snapshot as PNG and Escape quits.  Settings are read from
// POLYDRAW_* environment variables, see [Config].
//
// If POLYDRAW_SCRIPT names an event script, polydraw replays it without
// opening a window and writes the final picture to POLYDRAW_OUTPUT.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"seehuhn.de/go/scanline"
	"seehuhn.de/go/scanline/script"
)

func main() {
	cfg, err := Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	scanline.SetLogger(slog.Default())

	ed, err := scanline.NewEditor(cfg.Width, cfg.Height,
		scanline.WithPalette(cfg.Palette()),
		scanline.WithMarkerSize(cfg.MarkerSize))
	if err != nil {
		slog.Error("create editor", "error", err)
		os.Exit(1)
	}

	s := &session{editor: ed, record: io.Discard}
	if cfg.Record != "" {
		f, err := os.OpenFile(cfg.Record, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			slog.Error("open record file", "error", err)
			os.Exit(1)
		}
		s.record = f
		s.closer = f
	}

	if cfg.Script != "" {
		err := replay(s, cfg)
		s.close()
		if err != nil {
			slog.Error("replay", "script", cfg.Script, "error", err)
			os.Exit(1)
		}
		return
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Scanline Fill & Wu Line AA"),
			app.Size(unit.Dp(cfg.Width), unit.Dp(cfg.Height)))
		err := loop(w, s)
		s.close()
		if err != nil {
			slog.Error("window", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// session connects an editor to an input source.  Every event is passed
// to the editor and recorded; rejected events are logged by the editor
// and do not stop the session.
type session struct {
	editor *scanline.Editor
	record io.Writer
	closer io.Closer // closes record, may be nil
}

// close releases the record file.  It must be called before os.Exit.
func (s *session) close() {
	if s.closer == nil {
		return
	}
	if err := s.closer.Close(); err != nil {
		slog.Warn("close record file", "error", err)
	}
	s.closer = nil
}

func (s *session) handle(ev scanline.Event) {
	if _, err := fmt.Fprintln(s.record, script.Format(ev)); err != nil {
		slog.Warn("record event", "error", err)
	}
	if err := s.editor.Handle(ev); err != nil {
		slog.Info("event rejected", "event", script.Format(ev), "error", err)
	}
}

// replay runs an event script and presents the final buffer as a PNG file.
func replay(s *session, cfg *Config) error {
	f, err := os.Open(cfg.Script)
	if err != nil {
		return err
	}
	events, err := script.Parse(f)
	f.Close()
	if err != nil {
		return err
	}

	for _, ev := range events {
		s.handle(ev)
	}

	display := &scanline.PNGDisplay{Path: cfg.Output, Scale: cfg.Scale}
	if _, err := s.editor.Present(display); err != nil {
		return err
	}
	slog.Info("picture written", "file", cfg.Output, "events", len(events))
	return nil
}
