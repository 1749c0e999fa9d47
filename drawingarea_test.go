// drawingarea_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import "testing"

func TestDrawingArea_Contains(t *testing.T) {
	d := DrawingArea{Left: 10, Top: 20, Right: 19, Bottom: 29}
	inside := [][2]int32{{10, 20}, {19, 29}, {15, 25}}
	outside := [][2]int32{{9, 20}, {20, 20}, {10, 19}, {10, 30}}

	for _, p := range inside {
		if !d.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = false, want true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if d.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d,%d) = true, want false", p[0], p[1])
		}
	}
}

func TestDrawingArea_Empty(t *testing.T) {
	if (DrawingArea{Left: 0, Top: 0, Right: 9, Bottom: 9}).Empty() {
		t.Error("non-empty area reported Empty() = true")
	}
	if !(DrawingArea{Left: 10, Top: 0, Right: 9, Bottom: 9}).Empty() {
		t.Error("Right < Left area reported Empty() = false")
	}
	if !(DrawingArea{Left: 0, Top: 10, Right: 9, Bottom: 9}).Empty() {
		t.Error("Bottom < Top area reported Empty() = false")
	}
}

func TestInterlaceParams_Masks(t *testing.T) {
	disabled := InterlaceParams{Enabled: false, ActiveLineLSB: 0}
	for y := int32(0); y < 4; y++ {
		if disabled.Masks(y) {
			t.Errorf("disabled interlace Masks(%d) = true, want false", y)
		}
	}

	field0 := InterlaceParams{Enabled: true, ActiveLineLSB: 0}
	if !field0.Masks(0) {
		t.Error("field 0 should mask (skip) even rows")
	}
	if field0.Masks(1) {
		t.Error("field 0 should not mask odd rows")
	}

	field1 := InterlaceParams{Enabled: true, ActiveLineLSB: 1}
	if field1.Masks(0) {
		t.Error("field 1 should not mask even rows")
	}
	if !field1.Masks(1) {
		t.Error("field 1 should mask (skip) odd rows")
	}
}
