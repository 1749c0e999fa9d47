// drawingarea.go - clip rectangle and interlace-field skip helpers.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

// DrawingArea is the inclusive clip rectangle all three rasterizers test
// against before writing a pixel. An empty area (Right < Left or
// Bottom < Top) rejects every pixel without needing a special case in the
// callers - the ordinary per-pixel bound checks already do the right
// thing.
type DrawingArea struct {
	Left, Top, Right, Bottom int32
}

// Contains reports whether (x, y) lies inside the clip rectangle.
func (d DrawingArea) Contains(x, y int32) bool {
	return x >= d.Left && x <= d.Right && y >= d.Top && y <= d.Bottom
}

// Empty reports whether the area contains no pixels at all.
func (d DrawingArea) Empty() bool {
	return d.Left > d.Right || d.Top > d.Bottom
}

// InterlaceParams models GP1's interlaced-display field skip: when
// enabled, scanlines whose low bit matches ActiveLineLSB are skipped.
type InterlaceParams struct {
	Enabled       bool
	ActiveLineLSB uint8
}

// Masks reports whether row y should be skipped: the reference draws when
// "!interlaced || active_line_lsb != (y & 1)", so a row is skipped only
// when interlacing is on and the row's parity equals ActiveLineLSB.
func (p InterlaceParams) Masks(y int32) bool {
	return p.Enabled && p.ActiveLineLSB == uint8(y&1)
}
