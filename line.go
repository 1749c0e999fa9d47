// line.go - the line rasterizer: a 32.32 fixed-point DDA across position
// with a separate 20.12 fixed-point DDA across Gouraud color, ported from
// the reference's LineDivide/DrawLine.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// lineColorFunc returns this step's (r, g, b) and advances internal
// state, if any. Building one per segment at setup time keeps the
// "shading enabled or not" decision out of the per-step loop.
type lineColorFunc func() (r, g, b uint8)

// buildLineColorStepper resolves shading once per segment: without
// shading every step reads p0's constant color; with shading, a 20.12
// fixed-point accumulator steps from p0's color to p1's color over k
// steps, matching the reference's line_fxp_coord/line_fxp_step.
func buildLineColorStepper(shading bool, p0, p1 *LineVertex, k int32) lineColorFunc {
	if !shading {
		r, g, b := p0.R, p0.G, p0.B
		return func() (uint8, uint8, uint8) { return r, g, b }
	}

	var dr, dg, db int32
	if k != 0 {
		dr = int32(uint32(int32(p1.R)-int32(p0.R))<<12) / k
		dg = int32(uint32(int32(p1.G)-int32(p0.G))<<12) / k
		db = int32(uint32(int32(p1.B)-int32(p0.B))<<12) / k
	}

	curR := (uint32(p0.R) << 12) | (1 << 11)
	curG := (uint32(p0.G) << 12) | (1 << 11)
	curB := (uint32(p0.B) << 12) | (1 << 11)

	return func() (uint8, uint8, uint8) {
		r := uint8(curR >> 12)
		g := uint8(curG >> 12)
		b := uint8(curB >> 12)
		curR = uint32(int32(curR) + dr)
		curG = uint32(int32(curG) + dg)
		curB = uint32(int32(curB) + db)
		return r, g, b
	}
}

// lineFunc is one resolved entry of the line dispatch table.
type lineFunc func(cmd *Line, p0, p1 *LineVertex, v *VRAM, area DrawingArea, lut *DitherLUT)

var lineTable [2][2][2]lineFunc // [shading][transparent][dither]

func init() {
	buildLineTable()
}

func buildLineTable() {
	for _, shading := range []bool{false, true} {
		for _, transparent := range []bool{false, true} {
			for _, dither := range []bool{false, true} {
				shader := buildPixelShader(false, false, transparent, dither)
				sh := shading
				fn := lineFunc(func(cmd *Line, p0, p1 *LineVertex, v *VRAM, area DrawingArea, lut *DitherLUT) {
					drawLineSegment(shader, sh, cmd, p0, p1, v, area, lut)
				})
				lineTable[b2i(shading)][b2i(transparent)][b2i(dither)] = fn
			}
		}
	}
}

// drawLineSegment walks the DDA from p0 to p1, clips to area, and
// invokes shader for every surviving step.
func drawLineSegment(shader pixelShader, shading bool, cmd *Line, p0, p1 *LineVertex, v *VRAM, area DrawingArea, lut *DitherLUT) {
	dx := absInt32(p1.X - p0.X)
	dy := absInt32(p1.Y - p0.Y)
	if dx >= MaxPrimitiveWidth || dy >= MaxPrimitiveHeight {
		return
	}
	k := dx
	if dy > dx {
		k = dy
	}

	if p0.X >= p1.X && k > 0 {
		p0, p1 = p1, p0
	}

	var stepX, stepY int64
	if k != 0 {
		stepX = lineDivide(int64(p1.X-p0.X), k)
		stepY = lineDivide(int64(p1.Y-p0.Y), k)
	}

	colorNext := buildLineColorStepper(shading, p0, p1, k)

	p := shadeParams{Mask: cmd.Params.Mask}

	curX := uint64(uint32(p0.X))<<32 | (1 << 31)
	curY := uint64(uint32(p0.Y))<<32 | (1 << 31)
	curX -= 1024
	if stepY < 0 {
		curY -= 1024
	}

	for i := int32(0); i <= k; i++ {
		x := int32((curX >> 32) & 2047)
		y := int32((curY >> 32) & 2047)
		r, g, b := colorNext()
		if !cmd.Params.Interlace.Masks(y) && area.Contains(x, y) {
			shader(v, &p, lut, x, y, r, g, b, 0, 0)
		}
		curX += uint64(stepX)
		curY += uint64(stepY)
	}
}

// DrawLine draws one line segment into v, clipped to area. Callers
// drawing a polyline should call this once per pair returned by
// Line.Segments().
func DrawLine(cmd *Line, p0, p1 *LineVertex, v *VRAM, area DrawingArea) {
	fn := lineTable[b2i(cmd.Flags.Shading)][b2i(cmd.Flags.Transparency)][b2i(cmd.Flags.Dithering)]
	fn(cmd, p0, p1, v, area, defaultDitherLUT)
}
