// triangle_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import "testing"

func flatTriangle(x0, y0, x1, y1, x2, y2 int32, r, g, b uint8) *Polygon {
	mk := func(x, y int32) Vertex { return Vertex{X: x, Y: y, R: r, G: g, B: b} }
	return &Polygon{Vertices: []Vertex{mk(x0, y0), mk(x1, y1), mk(x2, y2)}}
}

func TestDrawPolygon_FlatTriangleInterior(t *testing.T) {
	v := NewVRAM()
	cmd := flatTriangle(10, 10, 50, 10, 30, 40, 255, 255, 255)
	DrawPolygon(cmd, v, fullScreen())

	if got := v.At(30, 20); got == 0 {
		t.Errorf("At(30,20) = 0, want drawn pixel inside triangle")
	}
	if got := v.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = 0x%04X, want 0 (outside triangle)", got)
	}
}

func TestDrawPolygon_DegenerateHorizontalIsDropped(t *testing.T) {
	v := NewVRAM()
	// All three vertices share Y: a.Y == c.Y after sort, so the triangle
	// must be silently dropped without touching VRAM.
	cmd := flatTriangle(0, 5, 50, 5, 25, 5, 255, 255, 255)
	DrawPolygon(cmd, v, fullScreen())

	for x := int32(0); x <= 50; x++ {
		if got := v.At(x, 5); got != 0 {
			t.Errorf("At(%d,5) = 0x%04X, want 0 (collinear triangle draws nothing)", x, got)
		}
	}
}

func TestDrawPolygon_OversizeIsDropped(t *testing.T) {
	v := NewVRAM()
	cmd := flatTriangle(0, 0, MaxPrimitiveWidth, 0, 0, 10, 255, 255, 255)
	DrawPolygon(cmd, v, fullScreen())

	for x := int32(0); x < 10; x++ {
		for y := int32(0); y < 10; y++ {
			if got := v.At(x, y); got != 0 {
				t.Errorf("At(%d,%d) = 0x%04X, want 0 (oversize triangle dropped)", x, y, got)
			}
		}
	}
}

func TestDrawPolygon_QuadSplitsIntoTwoTriangles(t *testing.T) {
	v := NewVRAM()
	mk := func(x, y int32) Vertex { return Vertex{X: x, Y: y, R: 255, G: 255, B: 255} }
	cmd := &Polygon{Vertices: []Vertex{mk(0, 0), mk(20, 0), mk(0, 20), mk(20, 20)}}
	DrawPolygon(cmd, v, fullScreen())

	// Well inside the first half-triangle (0,1,2), away from the shared
	// diagonal edge.
	if got := v.At(3, 3); got == 0 {
		t.Errorf("At(3,3) = 0, want drawn pixel in first half-triangle")
	}
	// Well inside the second half-triangle (1,2,3), away from the shared
	// diagonal edge.
	if got := v.At(17, 17); got == 0 {
		t.Errorf("At(17,17) = 0, want drawn pixel in second half-triangle")
	}
}

func TestDrawPolygon_ShadedTriangleInterpolates(t *testing.T) {
	v := NewVRAM()
	cmd := &Polygon{
		Vertices: []Vertex{
			{X: 0, Y: 0, R: 0, G: 0, B: 0},
			{X: 60, Y: 0, R: 255, G: 0, B: 0},
			{X: 0, Y: 60, R: 0, G: 0, B: 0},
		},
		Flags: PolygonFlags{Shading: true},
	}
	DrawPolygon(cmd, v, fullScreen())

	near := v.At(5, 1)
	far := v.At(55, 1)
	if near >= far {
		t.Errorf("shaded triangle: pixel near dark vertex (0x%04X) should read less red than pixel near bright vertex (0x%04X)", near, far)
	}
}

func TestDrawPolygon_MaskBlocksWrite(t *testing.T) {
	v := NewVRAM()
	v.Set(5, 5, 0x8000)
	cmd := flatTriangle(0, 0, 20, 0, 0, 20, 255, 255, 255)
	cmd.Params.Mask = MaskParams{And: 0x8000, Or: 0}
	DrawPolygon(cmd, v, fullScreen())

	if got := v.At(5, 5); got != 0x8000 {
		t.Errorf("At(5,5) = 0x%04X, want unchanged 0x8000 (masked write blocked)", got)
	}
}
