// rectangle.go - the rectangle (sprite) rasterizer. Flat color only (no
// Gouraud shading) and never dithered, per spec.md: rectangles shade every
// pixel from the command's single RGB8 color.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// rectFunc is one resolved entry of the rectangle dispatch table.
type rectFunc func(cmd *Sprite, v *VRAM, area DrawingArea, lut *DitherLUT)

var rectangleTable [2][2][2]rectFunc // [texture][rawTexture][transparent]

func init() {
	buildRectangleTable()
}

func buildRectangleTable() {
	for _, texture := range []bool{false, true} {
		for _, transparent := range []bool{false, true} {
			shader := buildPixelShader(texture, false, transparent, false)
			fn := rectFunc(func(cmd *Sprite, v *VRAM, area DrawingArea, lut *DitherLUT) {
				drawRectangleGeneric(shader, cmd, v, area, lut)
			})
			rectangleTable[b2i(texture)][0][b2i(transparent)] = fn
			if texture {
				rawShader := buildPixelShader(texture, true, transparent, false)
				rawFn := rectFunc(func(cmd *Sprite, v *VRAM, area DrawingArea, lut *DitherLUT) {
					drawRectangleGeneric(rawShader, cmd, v, area, lut)
				})
				rectangleTable[1][1][b2i(transparent)] = rawFn
			} else {
				// raw_texture has no effect when untextured; the reference's
				// own dispatch table duplicates the same function pointer
				// across both raw-texture slots rather than special-casing
				// the lookup, so we do too.
				rectangleTable[0][1][b2i(transparent)] = fn
			}
		}
	}
}

// drawRectangleGeneric walks the rectangle's footprint, clips to area,
// and invokes shader for every surviving pixel.
func drawRectangleGeneric(shader pixelShader, cmd *Sprite, v *VRAM, area DrawingArea, lut *DitherLUT) {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return
	}
	p := shadeParams{
		Mode:    cmd.DrawMode,
		Window:  cmd.Window,
		Palette: cmd.Palette,
		Mask:    cmd.Params.Mask,
	}

	for row := int32(0); row < cmd.Height; row++ {
		y := cmd.Y + row
		if y < area.Top || y > area.Bottom {
			continue
		}
		if cmd.Params.Interlace.Masks(y) {
			continue
		}
		tcy := uint8(uint32(cmd.TexcoordY) + uint32(row))

		for col := int32(0); col < cmd.Width; col++ {
			x := cmd.X + col
			if x < area.Left || x > area.Right {
				continue
			}
			tcx := uint8(uint32(cmd.TexcoordX) + uint32(col))
			shader(v, &p, lut, x, y, cmd.Color.R, cmd.Color.G, cmd.Color.B, tcx, tcy)
		}
	}
}

// DrawRectangle draws a flat or textured rectangle into v, clipped to
// area.
func DrawRectangle(cmd *Sprite, v *VRAM, area DrawingArea) {
	fn := rectangleTable[b2i(cmd.Flags.Texture)][b2i(cmd.Flags.RawTexture)][b2i(cmd.Flags.Transparency)]
	fn(cmd, v, area, defaultDitherLUT)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
