// vram_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import "testing"

func TestVRAM_SetAtRoundTrip(t *testing.T) {
	v := NewVRAM()
	v.Set(0, 0, 0x1234)
	v.Set(VRAMWidth-1, VRAMHeight-1, 0xABCD)
	v.Set(512, 256, 0x7FFF)

	if got := v.At(0, 0); got != 0x1234 {
		t.Errorf("At(0,0) = 0x%04X, want 0x1234", got)
	}
	if got := v.At(VRAMWidth-1, VRAMHeight-1); got != 0xABCD {
		t.Errorf("At(last,last) = 0x%04X, want 0xABCD", got)
	}
	if got := v.At(512, 256); got != 0x7FFF {
		t.Errorf("At(512,256) = 0x%04X, want 0x7FFF", got)
	}
}

func TestVRAM_NewIsZeroed(t *testing.T) {
	v := NewVRAM()
	for _, p := range [][2]int32{{0, 0}, {1023, 511}, {500, 400}} {
		if got := v.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d) = 0x%04X, want 0 on fresh VRAM", p[0], p[1], got)
		}
	}
}

func TestVRAM_Pixels(t *testing.T) {
	v := NewVRAM()
	v.Set(1, 0, 0x5555)
	pix := v.Pixels()
	if len(pix) != VRAMWidth*VRAMHeight {
		t.Fatalf("len(Pixels()) = %d, want %d", len(pix), VRAMWidth*VRAMHeight)
	}
	if pix[1] != 0x5555 {
		t.Errorf("Pixels()[1] = 0x%04X, want 0x5555", pix[1])
	}
}

func TestWrapXY(t *testing.T) {
	cases := []struct {
		in, want int32
	}{
		{0, 0},
		{1, 1},
		{VRAMWidth, 0},
		{VRAMWidth + 5, 5},
		{-1, VRAMWidth - 1},
	}
	for _, c := range cases {
		if got := wrapX(c.in); got != c.want {
			t.Errorf("wrapX(%d) = %d, want %d", c.in, got, c.want)
		}
	}

	hcases := []struct {
		in, want int32
	}{
		{0, 0},
		{VRAMHeight, 0},
		{VRAMHeight + 3, 3},
		{-1, VRAMHeight - 1},
	}
	for _, c := range hcases {
		if got := wrapY(c.in); got != c.want {
			t.Errorf("wrapY(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
