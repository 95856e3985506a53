// Command export writes test case definitions to JSON, for use by external
// reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scanline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string      `json:"name"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Vertices [][]float64 `json:"vertices"`
	Op       string      `json:"op"`
	FillRule string      `json:"fill_rule,omitempty"`
	Closed   bool        `json:"closed,omitempty"`
	LineCap  string      `json:"line_cap,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Vertices: make([][]float64, len(tc.Vertices)),
	}
	for i, v := range tc.Vertices {
		jtc.Vertices[i] = []float64{v.X, v.Y}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.FillRule = "evenodd"
	case testcases.Outline:
		jtc.Op = "outline"
		jtc.Closed = op.Closed
		jtc.LineCap = op.Cap.String()
	}
	return jtc
}
