// commands.go - Command adapters wrapping psxsw's three draw entry points,
// so a caller can feed real Sprite/Polygon/Line commands into a Queue
// without hand-rolling RowRange for each one.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package stripqueue

import "github.com/intuitionamiga/psxsw"

// RectCommand adapts psxsw.DrawRectangle.
type RectCommand struct {
	Cmd *psxsw.Sprite
}

func (c RectCommand) RowRange() (int32, int32) {
	return c.Cmd.Y, c.Cmd.Y + c.Cmd.Height - 1
}

func (c RectCommand) Draw(v *psxsw.VRAM, area psxsw.DrawingArea) {
	psxsw.DrawRectangle(c.Cmd, v, area)
}

// LineCommand adapts psxsw.DrawLine for a single segment.
type LineCommand struct {
	Cmd    *psxsw.Line
	P0, P1 *psxsw.LineVertex
}

func (c LineCommand) RowRange() (int32, int32) {
	top, bottom := c.P0.Y, c.P1.Y
	if bottom < top {
		top, bottom = bottom, top
	}
	return top, bottom
}

func (c LineCommand) Draw(v *psxsw.VRAM, area psxsw.DrawingArea) {
	psxsw.DrawLine(c.Cmd, c.P0, c.P1, v, area)
}

// PolygonCommand adapts psxsw.DrawPolygon.
type PolygonCommand struct {
	Cmd *psxsw.Polygon
}

func (c PolygonCommand) RowRange() (int32, int32) {
	top, bottom := c.Cmd.Vertices[0].Y, c.Cmd.Vertices[0].Y
	for _, vx := range c.Cmd.Vertices[1:] {
		if vx.Y < top {
			top = vx.Y
		}
		if vx.Y > bottom {
			bottom = vx.Y
		}
	}
	return top, bottom
}

func (c PolygonCommand) Draw(v *psxsw.VRAM, area psxsw.DrawingArea) {
	psxsw.DrawPolygon(c.Cmd, v, area)
}
