// seehuhn.de/go/shapes - pixel outlines of simple geometric shapes
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

// Command genpdf writes the vector outlines of all test cases as PDF
// files.  Comparing these with the output of the export command shows
// how well the pixel outlines follow the ideal shapes.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			skipped, err := generatePDF(tc, pdfPath)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if skipped > 0 {
				logger.Warn("shapes without outline", "case", name, "count", skipped)
			}
			logger.Info("wrote", "file", pdfPath)
		}
	}
}

// generatePDF writes a single page PDF with the outlines of all shapes
// in tc.  It returns the number of shapes which could not be outlined.
func generatePDF(tc testcases.TestCase, pdfPath string) (int, error) {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return 0, err
	}

	// black background, matching a fresh canvas
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left, pixel coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// One pixel wide, with round caps so that points are visible.
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	skipped := 0
	for _, s := range tc.Shapes {
		o, ok := s.(shapes.Outliner)
		if !ok {
			skipped++
			continue
		}
		drawPath(page, o.Outline())
		page.Stroke()
	}

	return skipped, page.Close()
}

func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
