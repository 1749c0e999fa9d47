// dither.go - the precomputed ordered-dither lookup table.
//
// Grounded on the teacher's bayer4x4Flat/getDitherThreshold/applyDither
// trio in voodoo_software.go (an ordered matrix indexed by y&3, x&3 that
// perturbs a color value before quantization), adapted here from a
// per-pixel float threshold into the PS1 GPU's exact precomputed integer
// table: the four dither offsets below are a hardware constant, not a
// design choice.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// ditherMatrix is the PS1 GPU's fixed 4x4 ordered-dither offset pattern.
var ditherMatrix = [4][4]int32{
	{-4, 0, -3, 1},
	{2, -2, 3, -1},
	{-3, 1, -4, 0},
	{3, -1, 2, -2},
}

// DitherLUT maps (y mod 4, x mod 4, a 9-bit pre-dither channel value) to
// a clamped 5-bit channel value. The 512-wide third dimension accommodates
// the textured/modulated path, whose pre-dither value can run well above
// 255 before clamping.
type DitherLUT [4][4][512]uint8

// NewDitherLUT builds a dither table. It is pure data with no external
// input, so one instance can be shared by every draw call; defaultDitherLUT
// below is the package's shared instance.
func NewDitherLUT() *DitherLUT {
	lut := &DitherLUT{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			offset := ditherMatrix[y][x]
			for v := 0; v < 512; v++ {
				d := int32(v) + offset
				if d < 0 {
					d = 0
				}
				if d > 255 {
					d = 255
				}
				lut[y][x][v] = uint8(d >> 3)
			}
		}
	}
	return lut
}

// Apply looks up the dithered 5-bit value for channel value v at pixel
// (x, y). y and x are reduced mod 4 here so callers can pass raw pixel
// coordinates directly.
func (lut *DitherLUT) Apply(y, x int32, v uint16) uint8 {
	return lut[y&3][x&3][v]
}

// defaultDitherLUT is the table every exported Draw* entry point uses.
// It is package-level because it depends on nothing but the fixed
// hardware dither pattern above.
var defaultDitherLUT = NewDitherLUT()
