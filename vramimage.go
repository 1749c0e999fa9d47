// vramimage.go - converts a VRAM surface to a standard Go image and PNG
// stream, shared by the cmd/vramdump and cmd/gpuscript debugging tools so
// neither has to carry its own copy of the BGR555-to-RGBA unpacking.
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToRGBA unpacks every BGR555 VRAM word into a standard image.RGBA,
// expanding each 5-bit channel into 8 bits by left-shifting and
// replicating the top bits into the new low bits.
func ToRGBA(v *VRAM) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, VRAMWidth, VRAMHeight))
	pix := v.Pixels()

	for y := 0; y < VRAMHeight; y++ {
		for x := 0; x < VRAMWidth; x++ {
			word := pix[y*VRAMWidth+x]
			img.SetRGBA(x, y, color.RGBA{
				R: expand5to8(uint8(word & 0x1F)),
				G: expand5to8(uint8((word >> 5) & 0x1F)),
				B: expand5to8(uint8((word >> 10) & 0x1F)),
				A: 0xFF,
			})
		}
	}
	return img
}

// expand5to8 replicates a 5-bit channel's top 3 bits into the new low
// bits, so 0x00 maps to 0x00 and 0x1F maps to 0xFF.
func expand5to8(c uint8) uint8 {
	return (c << 3) | (c >> 2)
}

// EncodePNG writes v's current contents to w as a PNG image.
func EncodePNG(v *VRAM, w io.Writer) error {
	return png.Encode(w, ToRGBA(v))
}
