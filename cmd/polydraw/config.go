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
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"seehuhn.de/go/scanline"
)

// Config holds the settings of polydraw, read from POLYDRAW_* environment
// variables.
type Config struct {
	Width  int `envconfig:"WIDTH" default:"800"`
	Height int `envconfig:"HEIGHT" default:"600"`

	// Script, if set, replays the events from this file without opening
	// a window and writes the result to Output.
	Script string `envconfig:"SCRIPT"`
	Output string `envconfig:"OUTPUT" default:"polydraw.png"`
	Scale  int    `envconfig:"SCALE" default:"1"`

	// Record, if set, appends every event handled by the editor to this
	// file, in script format.
	Record string `envconfig:"RECORD"`

	LogLevel slog.Level `envconfig:"LOG_LEVEL" default:"info"`

	Background scanline.Color `envconfig:"BACKGROUND" default:"#191919"`
	FillColor  scanline.Color `envconfig:"FILL_COLOR" default:"#00329b"`
	LineColor  scanline.Color `envconfig:"LINE_COLOR" default:"#ffff00"`
	Marker     scanline.Color `envconfig:"MARKER_COLOR" default:"#ff0000"`
	MarkerSize int            `envconfig:"MARKER_SIZE" default:"2"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("polydraw", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Palette returns the colours configured for the editor.
func (c *Config) Palette() scanline.Palette {
	return scanline.Palette{
		Background: c.Background,
		Fill:       c.FillColor,
		Line:       c.LineColor,
		Marker:     c.Marker,
	}
}
