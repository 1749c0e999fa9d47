// fixed.go - fixed-point helpers shared by the line and triangle
// rasterizers: 32.32 position arithmetic with rounding away from zero,
// ported bit-for-bit from the reference's MakePolyXFP/MakePolyXFPStep/
// LineDivide.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// polyXFPBias is the rounding bias baked into every triangle edge's
// starting X: one full 32.32 integer step (1<<32), minus a small epsilon
// (1<<11) the reference subtracts to land pixel centers consistently
// with the real GPU.
const polyXFPBias = (int64(1) << 32) - (1 << 11)

// makePolyXFP converts a vertex X coordinate into 32.32 fixed point,
// biased so that edge-walking rounds consistently with the hardware.
func makePolyXFP(x int32) int64 {
	return (int64(uint32(x)) << 32) + polyXFPBias
}

// makePolyXFPStep computes a 32.32 fixed-point per-scanline X step from
// an edge's (dx, dy), rounding the division away from zero. dy must be
// nonzero.
func makePolyXFPStep(dx, dy int32) int64 {
	dxEx := int64(dx) << 32
	if dxEx < 0 {
		dxEx -= int64(dy) - 1
	}
	if dxEx > 0 {
		dxEx += int64(dy) - 1
	}
	return dxEx / int64(dy)
}

// getPolyXFPInt extracts the integer part of a 32.32 fixed-point X.
func getPolyXFPInt(xfp int64) int32 {
	return int32(xfp >> 32)
}

// lineDivide computes a 32.32 fixed-point per-step position delta for the
// line rasterizer, rounding away from zero. dk must be nonzero.
func lineDivide(delta int64, dk int32) int64 {
	v := delta << 32
	if v < 0 {
		v -= int64(dk) - 1
	}
	if v > 0 {
		v += int64(dk) - 1
	}
	return v / int64(dk)
}

// truncateVertexCoord mirrors the reference's TruncateGPUVertexPosition.
// Its definition was not present in the retrieved original source; every
// call site truncates a y (or x) scan counter that is already guaranteed,
// by the oversize-primitive rejection that runs before any span is
// walked, to lie within the valid primitive-size range - so within that
// guarantee the truncation has no effect. See DESIGN.md's Open Question
// decisions.
func truncateVertexCoord(x int32) int32 { return x }

func absInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
