// vram.go - the 1024x512 15-bit-color VRAM surface.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// VRAM dimensions, fixed by the hardware being emulated.
const (
	VRAMWidth  = 1024
	VRAMHeight = 512

	// MaxPrimitiveWidth/Height bound the triangle and line rasterizers:
	// any primitive whose bounding box exceeds these is silently dropped
	// (spec.md §7), matching the reference's oversize-primitive guard.
	MaxPrimitiveWidth  = 1024
	MaxPrimitiveHeight = 512
)

// VRAM is the GPU's pixel memory: a flat, row-major array of 16-bit words,
// each holding a 15-bit BGR555 color plus a mask bit in bit 15.
//
// At and Set perform no bounds checking. Callers are responsible for
// wrapping coordinates into [0, VRAMWidth) x [0, VRAMHeight) first - see
// wrapX/wrapY - the same contract the reference rasterizer's GetPixel/
// SetPixel follow.
type VRAM struct {
	pix []uint16
}

// NewVRAM allocates a zeroed VRAM surface.
func NewVRAM() *VRAM {
	return &VRAM{pix: make([]uint16, VRAMWidth*VRAMHeight)}
}

// At reads the pixel at (x, y). x and y must already be in range.
func (v *VRAM) At(x, y int32) uint16 {
	return v.pix[int(y)*VRAMWidth+int(x)]
}

// Set writes the pixel at (x, y). x and y must already be in range.
func (v *VRAM) Set(x, y int32, val uint16) {
	v.pix[int(y)*VRAMWidth+int(x)] = val
}

// Pixels exposes the underlying row-major pixel slice, for bulk readers
// such as cmd/vramdump. Callers must not resize it.
func (v *VRAM) Pixels() []uint16 {
	return v.pix
}

// wrapX wraps a texture page / palette x-coordinate into VRAM's width.
// VRAMWidth is a power of two, so a mask is exact modulo arithmetic even
// for negative inputs (two's complement AND behaves like Euclidean mod
// here).
func wrapX(x int32) int32 { return x & (VRAMWidth - 1) }

// wrapY wraps a texture page / palette y-coordinate into VRAM's height.
func wrapY(y int32) int32 { return y & (VRAMHeight - 1) }
