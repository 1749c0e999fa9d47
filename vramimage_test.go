// vramimage_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import (
	"bytes"
	"image/png"
	"testing"
)

func TestToRGBA_UnpacksChannelsAndExpandsRange(t *testing.T) {
	v := NewVRAM()
	v.Set(0, 0, 0x001F) // max red only, BGR555
	v.Set(1, 0, 0x0000)

	img := ToRGBA(v)

	if got := img.RGBAAt(0, 0); got.R != 0xFF || got.G != 0 || got.B != 0 {
		t.Errorf("RGBAAt(0,0) = %+v, want R=0xFF G=0 B=0", got)
	}
	if got := img.RGBAAt(1, 0); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("RGBAAt(1,0) = %+v, want all zero", got)
	}
	if b := img.Bounds(); b.Dx() != VRAMWidth || b.Dy() != VRAMHeight {
		t.Errorf("bounds = %v, want %dx%d", b, VRAMWidth, VRAMHeight)
	}
}

func TestEncodePNG_ProducesDecodableImage(t *testing.T) {
	v := NewVRAM()
	v.Set(5, 5, 0x7FFF)

	var buf bytes.Buffer
	if err := EncodePNG(v, &buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != VRAMWidth || b.Dy() != VRAMHeight {
		t.Errorf("decoded bounds = %v, want %dx%d", b, VRAMWidth, VRAMHeight)
	}
}
