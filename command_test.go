// command_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import (
	"reflect"
	"testing"
)

func TestTextureWindow_Apply(t *testing.T) {
	w := TextureWindow{AndX: 0xF8, AndY: 0xF8, OrX: 0x04, OrY: 0x00}
	x, y := w.Apply(0xFF, 0x07)
	if x != 0xFC {
		t.Errorf("Apply x = 0x%02X, want 0xFC", x)
	}
	if y != 0x00 {
		t.Errorf("Apply y = 0x%02X, want 0x00", y)
	}
}

func TestTextureWindow_ApplyIdentity(t *testing.T) {
	w := TextureWindow{AndX: 0xFF, AndY: 0xFF, OrX: 0, OrY: 0}
	x, y := w.Apply(123, 45)
	if x != 123 || y != 45 {
		t.Errorf("Apply(123,45) = (%d,%d), want identity", x, y)
	}
}

func TestLine_Segments(t *testing.T) {
	l := &Line{Vertices: []LineVertex{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
	}}
	segs := l.Segments()
	want := [][2]LineVertex{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 10, Y: 0}, {X: 10, Y: 10}},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("Segments() = %+v, want %+v", segs, want)
	}
}

func TestLine_Segments_TooFewVertices(t *testing.T) {
	if got := (&Line{}).Segments(); got != nil {
		t.Errorf("Segments() on empty line = %+v, want nil", got)
	}
	if got := (&Line{Vertices: []LineVertex{{X: 1, Y: 1}}}).Segments(); got != nil {
		t.Errorf("Segments() on single-vertex line = %+v, want nil", got)
	}
}
