// main.go - vramdump renders a small demonstration scene through the psxsw
// rasterizer and writes the resulting VRAM surface out as a PNG, optionally
// upscaled with a nearest-neighbor filter so individual pixels are easy to
// inspect. It exists purely as a visual debugging aid.
//
// Usage: go run ./cmd/vramdump -out scene.png -scale 4
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/intuitionamiga/psxsw"
)

func main() {
	outPath := flag.String("out", "vram.png", "output PNG path")
	scale := flag.Int("scale", 1, "nearest-neighbor upscale factor")
	flag.Parse()

	if *scale < 1 {
		log.Fatalf("scale must be >= 1, got %d", *scale)
	}

	v := psxsw.NewVRAM()
	renderDemoScene(v)

	img := psxsw.ToRGBA(v)
	if *scale > 1 {
		img = upscale(img, *scale)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal(&psxsw.RasterError{Operation: "vramdump output", Details: *outPath, Err: err})
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		log.Fatal(&psxsw.RasterError{Operation: "vramdump encode", Details: *outPath, Err: err})
	}

	log.Printf("wrote %s (%dx%d)", *outPath, img.Bounds().Dx(), img.Bounds().Dy())
}

// renderDemoScene exercises all three rasterizers: a flat rectangle, a
// Gouraud-shaded triangle, and a line, so the dump has something worth
// looking at.
func renderDemoScene(v *psxsw.VRAM) {
	area := psxsw.DrawingArea{Left: 0, Top: 0, Right: psxsw.VRAMWidth - 1, Bottom: psxsw.VRAMHeight - 1}

	psxsw.DrawRectangle(&psxsw.Sprite{
		X: 32, Y: 32, Width: 96, Height: 64,
		Color: psxsw.RGB8{R: 200, G: 40, B: 40},
	}, v, area)

	psxsw.DrawPolygon(&psxsw.Polygon{
		Vertices: []psxsw.Vertex{
			{X: 160, Y: 32, R: 255, G: 0, B: 0},
			{X: 260, Y: 32, R: 0, G: 255, B: 0},
			{X: 210, Y: 130, R: 0, G: 0, B: 255},
		},
		Flags: psxsw.PolygonFlags{Shading: true},
	}, v, area)

	p0 := &psxsw.LineVertex{X: 32, Y: 150, R: 255, G: 255, B: 0}
	p1 := &psxsw.LineVertex{X: 280, Y: 150, R: 0, G: 255, B: 255}
	psxsw.DrawLine(&psxsw.Line{Flags: psxsw.LineFlags{Shading: true}}, p0, p1, v, area)
}

func upscale(src *image.RGBA, factor int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
