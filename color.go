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
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Default colours, matching the values the interactive program starts with.
var (
	DefaultBackground = Color{R: 25, G: 25, B: 25}
	DefaultFill       = Color{R: 0, G: 50, B: 155}
	DefaultLine       = Color{R: 255, G: 255, B: 0}
	DefaultMarker     = Color{R: 255, G: 0, B: 0}
)

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// String returns the colour in #rrggbb notation.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Accepted forms are "#rrggbb", "rrggbb" and "r,g,b" with decimal
// components in the range 0-255.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return fmt.Errorf("invalid colour %q: want three components", s)
		}
		var v [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return fmt.Errorf("invalid colour %q: %w", s, err)
			}
			v[i] = uint8(n)
		}
		*c = Color{R: v[0], G: v[1], B: v[2]}
		return nil
	}

	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid colour %q: want #rrggbb", string(text))
	}
	var v [3]byte
	if _, err := hex.Decode(v[:], []byte(s)); err != nil {
		return fmt.Errorf("invalid colour %q: %w", string(text), err)
	}
	*c = Color{R: v[0], G: v[1], B: v[2]}
	return nil
}

// blend mixes c over bg with the given coverage, which must be in [0, 1].
func (c Color) blend(bg Color, coverage float64) Color {
	mix := func(fg, bg uint8) uint8 {
		v := float64(fg)*coverage + float64(bg)*(1-coverage)
		return uint8(min(255, max(0, math.Round(v))))
	}
	return Color{
		R: mix(c.R, bg.R),
		G: mix(c.G, bg.G),
		B: mix(c.B, bg.B),
	}
}

// Palette holds the colours used by an [Editor].
type Palette struct {
	Background Color
	Fill       Color
	Line       Color
	Marker     Color
}

// DefaultPalette returns the palette of the interactive program.
func DefaultPalette() Palette {
	return Palette{
		Background: DefaultBackground,
		Fill:       DefaultFill,
		Line:       DefaultLine,
		Marker:     DefaultMarker,
	}
}
