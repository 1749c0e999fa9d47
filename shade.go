// shade.go - pixel-shader closure construction.
//
// The reference resolves texture/raw/transparency/dither into a fully
// monomorphized C++ template instantiation at compile time; Go has no
// compile-time boolean specialization. The idiomatic substitute - and the
// one spec.md §4.5/§9 itself points at - is to resolve the same four
// booleans once, at draw-table construction time, into a composed closure
// that contains no per-pixel flag branch at all: only genuinely
// data-dependent branches survive into the hot path (texel==0 discard,
// the mask-bit test, whether a fetched color's own bit 15 is set).
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// pixelShader is the fully-resolved per-pixel entry point every
// rasterizer's inner loop calls. v is the VRAM surface being written; p
// carries the command's draw mode/window/palette/mask; lut is the shared
// dither table; (x, y) is the destination pixel; (r, g, b) is the
// Gouraud/flat color at this pixel; (tcx, tcy) is the texture coordinate
// at this pixel (unused when untextured).
type pixelShader func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8)

// colorFunc computes this pixel's shaded 15-bit color, or ok=false if the
// pixel should be discarded outright (the texel==0 rule).
type colorFunc func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool)

// buildColorFunc resolves texture/raw/transparent/dither into one of
// seven concrete closures, each with its dither coordinates (or lack of
// them) and texture path baked in.
func buildColorFunc(texture, raw, transparent, dither bool) colorFunc {
	switch {
	case texture && raw:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			return sampleTexel(v, p, tcx, tcy)
		}

	case texture && dither:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			texel, ok := sampleTexel(v, p, tcx, tcy)
			if !ok {
				return 0, false
			}
			return modulateDithered(lut, texel, r, g, b, y&3, x&3), true
		}

	case texture:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			texel, ok := sampleTexel(v, p, tcx, tcy)
			if !ok {
				return 0, false
			}
			return modulateDithered(lut, texel, r, g, b, 2, 3), true
		}

	case transparent && dither:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			return colorFromRGB(lut, r, g, b, y&3, x&3) | 0x8000, true
		}

	case transparent:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			return colorFromRGB(lut, r, g, b, 2, 3) | 0x8000, true
		}

	case dither:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			return colorFromRGB(lut, r, g, b, y&3, x&3), true
		}

	default:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) (uint16, bool) {
			return colorFromRGB(lut, r, g, b, 2, 3), true
		}
	}
}

// buildPixelShader resolves the four draw-time flags into a complete
// pixel shader: color computation, optional blend against the existing
// background, the mask-bit test, and the final write.
func buildPixelShader(texture, raw, transparent, dither bool) pixelShader {
	colorOf := buildColorFunc(texture, raw, transparent, dither)

	switch {
	case transparent && texture:
		// Textured transparent: only blend when the fetched color's own
		// bit 15 is set (the reference's "color & 0x8000" check) - this is
		// a genuine per-pixel data dependency, not a flag branch.
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) {
			color, ok := colorOf(v, p, lut, x, y, r, g, b, tcx, tcy)
			if !ok {
				return
			}
			bg := v.At(x, y)
			if color&0x8000 != 0 {
				color = blendPixel(p.Mode.Transparency, color, bg)
			}
			if bg&p.Mask.And != 0 {
				return
			}
			v.Set(x, y, color|p.Mask.Or)
		}

	case transparent:
		// Untextured transparent pixels are always blend-eligible, and the
		// result never carries bit 15 onward (it's not a real mask bit for
		// this path - see the reference's trailing "!texture_enable" clear).
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) {
			color, ok := colorOf(v, p, lut, x, y, r, g, b, tcx, tcy)
			if !ok {
				return
			}
			bg := v.At(x, y)
			color = blendPixel(p.Mode.Transparency, color, bg) &^ 0x8000
			if bg&p.Mask.And != 0 {
				return
			}
			v.Set(x, y, color|p.Mask.Or)
		}

	default:
		return func(v *VRAM, p *shadeParams, lut *DitherLUT, x, y int32, r, g, b, tcx, tcy uint8) {
			color, ok := colorOf(v, p, lut, x, y, r, g, b, tcx, tcy)
			if !ok {
				return
			}
			bg := v.At(x, y)
			if bg&p.Mask.And != 0 {
				return
			}
			v.Set(x, y, color|p.Mask.Or)
		}
	}
}
