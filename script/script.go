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

// Package script reads editor event scripts.
//
// A script is a text file with one event per line:
//
//	click X Y        add a vertex at buffer coordinates (X, Y)
//	fill             fill the polygon
//	clear            discard all vertices
//	resize W H       resize the buffer to W×H pixels
//
// Keywords are case-insensitive; "vertex" is accepted as a synonym for
// "click".  Empty lines and lines starting with '#' are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/scanline"
)

// Error describes a malformed script line.
type Error struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse reads a complete script.
func Parse(r io.Reader) ([]scanline.Event, error) {
	var events []scanline.Event

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := ParseLine(line)
		if err != nil {
			return nil, &Error{Line: lineNo, Text: line, Err: err}
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// ParseLine translates a single script line into an event.
func ParseLine(line string) (scanline.Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty line")
	}

	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "click", "vertex":
		if len(args) != 2 {
			return nil, fmt.Errorf("click: want 2 coordinates, got %d", len(args))
		}
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return nil, fmt.Errorf("click: %w", err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("click: %w", err)
		}
		return scanline.VertexClick{X: x, Y: y}, nil

	case "fill":
		if len(args) != 0 {
			return nil, fmt.Errorf("fill: unexpected arguments")
		}
		return scanline.FillRequest{}, nil

	case "clear":
		if len(args) != 0 {
			return nil, fmt.Errorf("clear: unexpected arguments")
		}
		return scanline.ClearRequest{}, nil

	case "resize":
		if len(args) != 2 {
			return nil, fmt.Errorf("resize: want width and height, got %d values", len(args))
		}
		w, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		h, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
		return scanline.ResizeEvent{Width: w, Height: h}, nil

	default:
		return nil, fmt.Errorf("unknown command %q", fields[0])
	}
}

// Format returns the script line for ev.  It is the inverse of ParseLine.
func Format(ev scanline.Event) string {
	switch ev := ev.(type) {
	case scanline.VertexClick:
		return "click " + strconv.FormatFloat(ev.X, 'g', -1, 64) + " " +
			strconv.FormatFloat(ev.Y, 'g', -1, 64)
	case scanline.FillRequest:
		return "fill"
	case scanline.ClearRequest:
		return "clear"
	case scanline.ResizeEvent:
		return fmt.Sprintf("resize %d %d", ev.Width, ev.Height)
	default:
		return fmt.Sprintf("# unknown event %T", ev)
	}
}
