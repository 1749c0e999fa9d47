// texture.go - texel sampling: palette-indexed (4-bit/8-bit) and direct
// 15-bit texture modes, with texture-window application and the texel==0
// transparency-key discard rule. Ported from the reference's ShadePixel
// texture-fetch switch.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// sampleTexel fetches the texel at window-adjusted (tcx, tcy) according
// to p.Mode.TextureMode, returning ok=false when the fetched texel is
// exactly zero - the PS1 GPU's hardware "texel zero is transparent, draw
// nothing" rule, independent of any transparency flag.
func sampleTexel(v *VRAM, p *shadeParams, tcx, tcy uint8) (uint16, bool) {
	tcx, tcy = p.Window.Apply(tcx, tcy)

	var texel uint16
	switch p.Mode.TextureMode {
	case Palette4Bit:
		px := wrapX(p.Mode.PageX + int32(tcx)/4)
		py := wrapY(p.Mode.PageY + int32(tcy))
		paletteValue := v.At(px, py)
		index := (paletteValue >> ((uint(tcx) % 4) * 4)) & 0x0F
		palX := wrapX(p.Palette.XBase + int32(index))
		texel = v.At(palX, p.Palette.YBase)

	case Palette8Bit:
		px := wrapX(p.Mode.PageX + int32(tcx)/2)
		py := wrapY(p.Mode.PageY + int32(tcy))
		paletteValue := v.At(px, py)
		index := (paletteValue >> ((uint(tcx) % 2) * 8)) & 0xFF
		palX := wrapX(p.Palette.XBase + int32(index))
		texel = v.At(palX, p.Palette.YBase)

	default: // Direct15
		px := wrapX(p.Mode.PageX + int32(tcx))
		py := wrapY(p.Mode.PageY + int32(tcy))
		texel = v.At(px, py)
	}

	if texel == 0 {
		return 0, false
	}
	return texel, true
}

// modulateDithered combines a sampled texel with a Gouraud-interpolated
// modulation color, dithering each channel through lut at (dy, dx). The
// texel's own mask bit (bit 15) passes through unchanged.
func modulateDithered(lut *DitherLUT, texel uint16, r, g, b uint8, dy, dx int32) uint16 {
	rc := lut.Apply(dy, dx, (uint16(texel&0x1F)*uint16(r))>>4)
	gc := lut.Apply(dy, dx, (uint16((texel>>5)&0x1F)*uint16(g))>>4)
	bc := lut.Apply(dy, dx, (uint16((texel>>10)&0x1F)*uint16(b))>>4)
	return uint16(rc) | uint16(gc)<<5 | uint16(bc)<<10 | (texel & 0x8000)
}

// colorFromRGB dithers a flat/Gouraud RGB triple (no texture) through lut
// at (dy, dx) into a packed 15-bit color.
func colorFromRGB(lut *DitherLUT, r, g, b uint8, dy, dx int32) uint16 {
	return uint16(lut.Apply(dy, dx, uint16(r))) |
		uint16(lut.Apply(dy, dx, uint16(g)))<<5 |
		uint16(lut.Apply(dy, dx, uint16(b)))<<10
}
