// command.go - draw command types: Sprite, Polygon, Line, and the shared
// mode/window/palette/mask parameters they carry.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// TextureMode selects how a texel is fetched from VRAM.
type TextureMode uint8

const (
	Palette4Bit TextureMode = iota
	Palette8Bit
	Direct15
)

// TransparencyMode selects one of the four semi-transparency blend
// formulas (see blend.go).
type TransparencyMode uint8

const (
	HalfHalf TransparencyMode = iota
	Add
	Sub
	QuarterAdd
)

// DrawMode carries the texture page base and sampling/blend mode that
// apply to a textured primitive. Untextured primitives still read
// Transparency when their Transparency flag is set.
type DrawMode struct {
	PageX, PageY int32
	TextureMode  TextureMode
	Transparency TransparencyMode
}

// TextureWindow masks and offsets texture coordinates before the
// texture-mode switch runs, per spec.md §4.1 step 1. AndX/AndY/OrX/OrY are
// the raw 8-bit window fields; Apply performs (tc & and) | or on both
// axes in one call so every sampling path shares the identical rule.
type TextureWindow struct {
	AndX, AndY, OrX, OrY uint8
}

// Apply masks and offsets a texture coordinate pair.
func (w TextureWindow) Apply(tcx, tcy uint8) (uint8, uint8) {
	return (tcx & w.AndX) | w.OrX, (tcy & w.AndY) | w.OrY
}

// Palette locates a CLUT (color lookup table) in VRAM for 4-bit/8-bit
// indexed texture modes.
type Palette struct {
	XBase, YBase int32
}

// MaskParams implements the GPU's mask-bit test-and-set: a pixel is
// dropped if the existing VRAM word, ANDed with And, is nonzero;
// otherwise the new color is ORed with Or before being written.
type MaskParams struct {
	And, Or uint16
}

// DrawParams bundles the two per-command parameters that apply
// uniformly regardless of primitive shape.
type DrawParams struct {
	Mask      MaskParams
	Interlace InterlaceParams
}

// RGB8 is an 8-bit-per-channel color, as carried by GP0 draw commands
// (UnpackColorRGB24 in the reference). It is truncated to 5 bits per
// channel only inside the dither LUT (dither.go) - never earlier, or the
// dither's least-significant bits would already be lost by the time it
// runs.
type RGB8 struct {
	R, G, B uint8
}

// Vertex is one corner of a polygon: position, Gouraud color, and texture
// coordinate. Untextured or unshaded polygons still carry all fields;
// which ones are consumed depends on the polygon's Flags.
type Vertex struct {
	X, Y int32
	R, G, B uint8
	U, V    uint8
}

// LineVertex is one endpoint of a line: position and Gouraud color.
type LineVertex struct {
	X, Y    int32
	R, G, B uint8
}

// SpriteFlags selects a rectangle command's behavior.
type SpriteFlags struct {
	Texture      bool
	RawTexture   bool
	Transparency bool
}

// PolygonFlags selects a triangle command's behavior.
type PolygonFlags struct {
	Shading      bool
	Texture      bool
	RawTexture   bool
	Transparency bool
	Dithering    bool
}

// LineFlags selects a line command's behavior. Lines never texture.
type LineFlags struct {
	Shading      bool
	Transparency bool
	Dithering    bool
}

// Sprite is a flat or textured rectangle draw command (GP0 0x60-0x7F).
type Sprite struct {
	X, Y          int32
	Width, Height int32
	Color         RGB8
	TexcoordX     uint8
	TexcoordY     uint8
	DrawMode      DrawMode
	Window        TextureWindow
	Palette       Palette
	Params        DrawParams
	Flags         SpriteFlags
}

// Polygon is a triangle or quad draw command (GP0 0x20-0x3F). A quad is
// two triangles sharing an edge: Vertices[0,1,2] and Vertices[1,2,3].
type Polygon struct {
	Vertices []Vertex
	DrawMode DrawMode
	Window   TextureWindow
	Palette  Palette
	Params   DrawParams
	Flags    PolygonFlags
}

// Line is a polyline draw command (GP0 0x40-0x5F): one or more straight
// segments sharing endpoints. Segments returns the consecutive vertex
// pairs the caller (or our own tests) should feed to the line rasterizer
// one at a time, mirroring how the out-of-scope GP0 command processor
// walks a polyline's vertex list.
type Line struct {
	Vertices []LineVertex
	Params   DrawParams
	Flags    LineFlags
}

// Segments returns the polyline's consecutive vertex pairs.
func (l *Line) Segments() [][2]LineVertex {
	if len(l.Vertices) < 2 {
		return nil
	}
	segs := make([][2]LineVertex, 0, len(l.Vertices)-1)
	for i := 0; i+1 < len(l.Vertices); i++ {
		segs = append(segs, [2]LineVertex{l.Vertices[i], l.Vertices[i+1]})
	}
	return segs
}

// shadeParams is the subset of a command's fields the pixel shader needs,
// gathered once per draw call and passed by pointer into the rasterizer's
// inner loop so the shader itself stays independent of which command
// shape (Sprite/Polygon/Line) produced it.
type shadeParams struct {
	Mode    DrawMode
	Window  TextureWindow
	Palette Palette
	Mask    MaskParams
}
