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

// Command export rasterises all test cases and writes them as PNG images.
// Run from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/output", "output directory")
	scale := flag.Int("scale", 1, "integer magnification factor")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)

	if *scale < 1 {
		panic(fmt.Errorf("invalid scale %d", *scale))
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(*outDir, name+".png")

			if err := export(tc, pngPath, *scale); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("wrote", "file", pngPath, "shapes", len(tc.Shapes))
		}
	}
}

func export(tc testcases.TestCase, pngPath string, scale int) (err error) {
	canvas := shapes.NewCanvas(tc.Width, tc.Height)
	if err := shapes.DrawAll(canvas, tc.Shapes...); err != nil {
		return err
	}

	var img image.Image = canvas
	if scale > 1 {
		// nearest neighbour keeps individual pixels visible
		big := image.NewRGBA(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
		draw.NearestNeighbor.Scale(big, big.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
		img = big
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
