// triangle.go - the triangle rasterizer: core-vertex edge walk with a
// 32.32 fixed-point X step per scanline and a 12+12-bit fixed-point
// gradient matrix for Gouraud color and texture coordinates. Ported
// bit-for-bit from the reference's DrawTriangle/CalcIDeltas/DrawSpan -
// this is the one place where matching the reference exactly, rather than
// the prose description, is the point.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// iGroup is the running per-pixel attribute accumulator: each field holds
// a value in 12+12-bit fixed point (COORD_FBS + COORD_POST_PADDING).
type iGroup struct {
	u, v    uint32
	r, g, b uint32
}

// iDeltas holds the per-axis gradient for every attribute, computed once
// per triangle by calcIDeltas.
type iDeltas struct {
	duDx, dvDx          uint32
	drDx, dgDx, dbDx    uint32
	duDy, dvDy          uint32
	drDy, dgDy, dbDy    uint32
}

// attrStep advances an iGroup by count steps along one axis. Which
// attributes actually move (shading's r/g/b, texture's u/v, both, or
// neither) is resolved once per triangle by selectAddDX/selectAddDY, so
// the span loop below never re-checks the shading/texture flags.
type attrStep func(ig *iGroup, idl *iDeltas, count int32)

func addNone(ig *iGroup, idl *iDeltas, count int32) {}

func addShadingDX(ig *iGroup, idl *iDeltas, count int32) {
	c := uint32(count)
	ig.r += idl.drDx * c
	ig.g += idl.dgDx * c
	ig.b += idl.dbDx * c
}

func addShadingDY(ig *iGroup, idl *iDeltas, count int32) {
	c := uint32(count)
	ig.r += idl.drDy * c
	ig.g += idl.dgDy * c
	ig.b += idl.dbDy * c
}

func addTextureDX(ig *iGroup, idl *iDeltas, count int32) {
	c := uint32(count)
	ig.u += idl.duDx * c
	ig.v += idl.dvDx * c
}

func addTextureDY(ig *iGroup, idl *iDeltas, count int32) {
	c := uint32(count)
	ig.u += idl.duDy * c
	ig.v += idl.dvDy * c
}

func addShadingTextureDX(ig *iGroup, idl *iDeltas, count int32) {
	addShadingDX(ig, idl, count)
	addTextureDX(ig, idl, count)
}

func addShadingTextureDY(ig *iGroup, idl *iDeltas, count int32) {
	addShadingDY(ig, idl, count)
	addTextureDY(ig, idl, count)
}

func selectAddDX(shading, texture bool) attrStep {
	switch {
	case shading && texture:
		return addShadingTextureDX
	case shading:
		return addShadingDX
	case texture:
		return addTextureDX
	default:
		return addNone
	}
}

func selectAddDY(shading, texture bool) attrStep {
	switch {
	case shading && texture:
		return addShadingTextureDY
	case shading:
		return addShadingDY
	case texture:
		return addTextureDY
	default:
		return addNone
	}
}

// calcis implements the reference's CALCIS(p, q) macro:
// (B.p - A.p) * (C.q - B.q) - (C.p - B.p) * (B.q - A.q), with p and q
// each instantiated at the call site for whichever vertex field is
// needed (x, y, r, g, b, u or v).
func calcis(bp, ap, cp, cq, bq, aq int32) int32 {
	return (bp-ap)*(cq-bq) - (cp-bp)*(bq-aq)
}

// calcIDeltas computes the gradient matrix for the triangle A,B,C. It
// returns false (meaning: draw nothing) when the triangle is degenerate,
// matching the reference's "denom == 0" abort - which covers, among other
// cases, three vertices sharing one Y (every cross term below multiplies
// a zero delta-Y).
func calcIDeltas(idl *iDeltas, shading, texture bool, a, b, c *Vertex) bool {
	denom := calcis(b.X, a.X, c.X, c.Y, b.Y, a.Y)
	if denom == 0 {
		return false
	}

	grad := func(v int32) uint32 {
		return uint32(v*(1<<12)/denom) << 12
	}

	if shading {
		idl.drDx = grad(calcis(int32(b.R), int32(a.R), int32(c.R), c.Y, b.Y, a.Y))
		idl.drDy = grad(calcis(b.X, a.X, c.X, int32(c.R), int32(b.R), int32(a.R)))
		idl.dgDx = grad(calcis(int32(b.G), int32(a.G), int32(c.G), c.Y, b.Y, a.Y))
		idl.dgDy = grad(calcis(b.X, a.X, c.X, int32(c.G), int32(b.G), int32(a.G)))
		idl.dbDx = grad(calcis(int32(b.B), int32(a.B), int32(c.B), c.Y, b.Y, a.Y))
		idl.dbDy = grad(calcis(b.X, a.X, c.X, int32(c.B), int32(b.B), int32(a.B)))
	}
	if texture {
		idl.duDx = grad(calcis(int32(b.U), int32(a.U), int32(c.U), c.Y, b.Y, a.Y))
		idl.duDy = grad(calcis(b.X, a.X, c.X, int32(c.U), int32(b.U), int32(a.U)))
		idl.dvDx = grad(calcis(int32(b.V), int32(a.V), int32(c.V), c.Y, b.Y, a.Y))
		idl.dvDy = grad(calcis(b.X, a.X, c.X, int32(c.V), int32(b.V), int32(a.V)))
	}
	return true
}

// sortTriangleVertices reorders v0,v1,v2 into ascending-Y order and
// returns the index (0, 1 or 2, into the now-sorted order) of the "core
// vertex" the gradient matrix is biased from. Ported bit-for-bit from the
// reference's bit-permutation tracking - see DESIGN.md's Open Question
// decision on dec_mode derivation.
func sortTriangleVertices(v0, v1, v2 *Vertex) (a, b, c *Vertex, coreVertex uint32) {
	cvtemp := uint32(0)
	if v1.X <= v0.X {
		if v2.X <= v1.X {
			cvtemp = 1 << 2
		} else {
			cvtemp = 1 << 1
		}
	} else if v2.X < v0.X {
		cvtemp = 1 << 2
	} else {
		cvtemp = 1 << 0
	}

	if v2.Y < v1.Y {
		v2, v1 = v1, v2
		cvtemp = ((cvtemp >> 1) & 0x2) | ((cvtemp << 1) & 0x4) | (cvtemp & 0x1)
	}
	if v1.Y < v0.Y {
		v1, v0 = v0, v1
		cvtemp = ((cvtemp >> 1) & 0x1) | ((cvtemp << 1) & 0x2) | (cvtemp & 0x4)
	}
	if v2.Y < v1.Y {
		v2, v1 = v1, v2
		cvtemp = ((cvtemp >> 1) & 0x2) | ((cvtemp << 1) & 0x4) | (cvtemp & 0x1)
	}

	return v0, v1, v2, cvtemp >> 1
}

// triangleHalf is one of the two edge-walk phases a sorted triangle is
// split into: top vertex to middle vertex, then middle vertex to bottom
// vertex.
type triangleHalf struct {
	xCoord, xStep [2]int64
	yCoord, yBound int32
	decMode        bool
}

// drawTriangle rasterizes one triangle (v0, v1, v2, in original winding)
// using the resolved shader/addDX/addDY for this flag combination.
func drawTriangle(shader pixelShader, addDX, addDY attrStep, shading, texture bool, v0, v1, v2 *Vertex, p *shadeParams, params DrawParams, v *VRAM, area DrawingArea, lut *DitherLUT) {
	a, b, c, coreVertex := sortTriangleVertices(v0, v1, v2)

	if a.Y == c.Y {
		return
	}
	if uint32(absInt32(c.X-a.X)) >= MaxPrimitiveWidth ||
		uint32(absInt32(c.X-b.X)) >= MaxPrimitiveWidth ||
		uint32(absInt32(b.X-a.X)) >= MaxPrimitiveWidth ||
		uint32(c.Y-a.Y) >= MaxPrimitiveHeight {
		return
	}

	baseCoord := makePolyXFP(a.X)
	baseStep := makePolyXFPStep(c.X-a.X, c.Y-a.Y)

	var boundUS int64
	var rightFacing bool
	if b.Y == a.Y {
		boundUS = 0
		rightFacing = b.X > a.X
	} else {
		boundUS = makePolyXFPStep(b.X-a.X, b.Y-a.Y)
		rightFacing = boundUS > baseStep
	}

	var boundLS int64
	if c.Y == b.Y {
		boundLS = 0
	} else {
		boundLS = makePolyXFPStep(c.X-b.X, c.Y-b.Y)
	}

	var idl iDeltas
	if !calcIDeltas(&idl, shading, texture, a, b, c) {
		return
	}

	vertices := [3]*Vertex{a, b, c}

	var ig iGroup
	if texture {
		ig.u = (uint32(vertices[coreVertex].U)<<12 + (1 << 11)) << 12
		ig.v = (uint32(vertices[coreVertex].V)<<12 + (1 << 11)) << 12
	}
	ig.r = (uint32(vertices[coreVertex].R)<<12 + (1 << 11)) << 12
	ig.g = (uint32(vertices[coreVertex].G)<<12 + (1 << 11)) << 12
	ig.b = (uint32(vertices[coreVertex].B)<<12 + (1 << 11)) << 12

	addDX(&ig, &idl, -vertices[coreVertex].X)
	addDY(&ig, &idl, -vertices[coreVertex].Y)

	var tripart [2]triangleHalf

	vo := uint32(0)
	vp := uint32(0)
	if coreVertex != 0 {
		vo = 1
	}
	if coreVertex == 2 {
		vp = 3
	}

	ri := b2i(rightFacing)
	tripart[vo].yCoord = vertices[0^vo].Y
	tripart[vo].yBound = vertices[1^vo].Y
	tripart[vo].xCoord[ri] = makePolyXFP(vertices[0^vo].X)
	tripart[vo].xStep[ri] = boundUS
	tripart[vo].xCoord[1-ri] = baseCoord + int64(vertices[vo].Y-vertices[0].Y)*baseStep
	tripart[vo].xStep[1-ri] = baseStep
	tripart[vo].decMode = vo != 0

	tripart[vo^1].yCoord = vertices[1^vp].Y
	tripart[vo^1].yBound = vertices[2^vp].Y
	tripart[vo^1].xCoord[ri] = makePolyXFP(vertices[1^vp].X)
	tripart[vo^1].xStep[ri] = boundLS
	tripart[vo^1].xCoord[1-ri] = baseCoord + int64(vertices[1^vp].Y-vertices[0].Y)*baseStep
	tripart[vo^1].xStep[1-ri] = baseStep
	tripart[vo^1].decMode = vp != 0

	for i := 0; i < 2; i++ {
		yi := tripart[i].yCoord
		yb := tripart[i].yBound
		lc := tripart[i].xCoord[0]
		ls := tripart[i].xStep[0]
		rc := tripart[i].xCoord[1]
		rs := tripart[i].xStep[1]

		if tripart[i].decMode {
			for yi > yb {
				yi--
				lc -= ls
				rc -= rs

				y := truncateVertexCoord(yi)
				if y < area.Top {
					break
				}
				if y > area.Bottom {
					continue
				}
				drawTriangleSpan(shader, addDX, addDY, v, p, lut, params, area, yi, getPolyXFPInt(lc), getPolyXFPInt(rc), ig, idl)
			}
		} else {
			for yi < yb {
				y := truncateVertexCoord(yi)
				if y > area.Bottom {
					break
				}
				if y >= area.Top {
					drawTriangleSpan(shader, addDX, addDY, v, p, lut, params, area, yi, getPolyXFPInt(lc), getPolyXFPInt(rc), ig, idl)
				}
				yi++
				lc += ls
				rc += rs
			}
		}
	}
}

// drawTriangleSpan rasterizes one scanline of a triangle, clipping to
// area and biasing a *copy* of the triangle's origin-biased attribute
// accumulator by this row's (x_start, y) - the same ig value is reused
// unmodified for every span, exactly as the reference passes i_group by
// value into DrawSpan.
func drawTriangleSpan(shader pixelShader, addDX, addDY attrStep, v *VRAM, p *shadeParams, lut *DitherLUT, params DrawParams, area DrawingArea, y, xStart, xBound int32, ig iGroup, idl iDeltas) {
	if params.Interlace.Masks(y) {
		return
	}

	xIGAdjust := xStart
	w := xBound - xStart
	x := truncateVertexCoord(xStart)

	if x < area.Left {
		delta := area.Left - x
		xIGAdjust += delta
		x += delta
		w -= delta
	}
	if x+w > area.Right+1 {
		w = area.Right + 1 - x
	}
	if w <= 0 {
		return
	}

	addDX(&ig, &idl, xIGAdjust)
	addDY(&ig, &idl, y)

	for {
		r := uint8(ig.r >> 24)
		g := uint8(ig.g >> 24)
		b := uint8(ig.b >> 24)
		u := uint8(ig.u >> 24)
		vv := uint8(ig.v >> 24)

		shader(v, p, lut, x, y, r, g, b, u, vv)

		x++
		addDX(&ig, &idl, 1)
		w--
		if w <= 0 {
			break
		}
	}
}
