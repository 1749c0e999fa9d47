// dispatch.go - the triangle (polygon) function-table construction and
// the DrawPolygon entry point. The rectangle and line tables live beside
// their rasterizers (rectangle.go, line.go); this file holds the bigger,
// five-flag triangle table and the quad-splitting entry point, per
// spec.md §4.5.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// triFunc is one resolved entry of the triangle dispatch table.
type triFunc func(cmd *Polygon, v0, v1, v2 *Vertex, v *VRAM, area DrawingArea, lut *DitherLUT)

// triangleTable is indexed [shading][texture][rawTexture][transparent][dithering].
var triangleTable [2][2][2][2][2]triFunc

func init() {
	buildTriangleTable()
}

// buildTriangleTable resolves all 32 flag combinations once. raw_texture
// has no effect when texture is false, and dithering has no effect when
// raw_texture is in effect (ShadePixel's textured branch forces dither_x/y
// to fixed values once raw_texture is set); dithering still applies to an
// untextured triangle, shaded or flat, exactly as it does to a textured
// one. Rather than special-case the lookup, the effective flags are
// collapsed before building the closure, reproducing the reference's table
// of duplicate function pointers for those slots exactly (see
// gpu_sw_rasterizer.inl's DrawTriangleFunctions and SPEC_FULL.md §4).
func buildTriangleTable() {
	bools := []bool{false, true}
	for _, shading := range bools {
		for _, texture := range bools {
			for _, raw := range bools {
				for _, transparent := range bools {
					for _, dither := range bools {
						effRaw := raw && texture
						effDither := dither && !effRaw
						shader := buildPixelShader(texture, effRaw, transparent, effDither)
						addDX := selectAddDX(shading, texture)
						addDY := selectAddDY(shading, texture)
						sh, tx := shading, texture
						fn := triFunc(func(cmd *Polygon, v0, v1, v2 *Vertex, v *VRAM, area DrawingArea, lut *DitherLUT) {
							p := shadeParams{
								Mode:    cmd.DrawMode,
								Window:  cmd.Window,
								Palette: cmd.Palette,
								Mask:    cmd.Params.Mask,
							}
							drawTriangle(shader, addDX, addDY, sh, tx, v0, v1, v2, &p, cmd.Params, v, area, lut)
						})
						triangleTable[b2i(shading)][b2i(texture)][b2i(raw)][b2i(transparent)][b2i(dither)] = fn
					}
				}
			}
		}
	}
}

// DrawPolygon draws a triangle (3 vertices) or quad (4 vertices, drawn as
// two triangles sharing the middle edge) into v, clipped to area.
func DrawPolygon(cmd *Polygon, v *VRAM, area DrawingArea) {
	fn := triangleTable[b2i(cmd.Flags.Shading)][b2i(cmd.Flags.Texture)][b2i(cmd.Flags.RawTexture)][b2i(cmd.Flags.Transparency)][b2i(cmd.Flags.Dithering)]

	switch len(cmd.Vertices) {
	case 3:
		fn(cmd, &cmd.Vertices[0], &cmd.Vertices[1], &cmd.Vertices[2], v, area, defaultDitherLUT)
	case 4:
		fn(cmd, &cmd.Vertices[0], &cmd.Vertices[1], &cmd.Vertices[2], v, area, defaultDitherLUT)
		fn(cmd, &cmd.Vertices[1], &cmd.Vertices[2], &cmd.Vertices[3], v, area, defaultDitherLUT)
	}
}
