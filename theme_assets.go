// theme_assets.go - PNG-decoded theme art (desktop pattern, icon glyphs)

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// DecodePNGBitmap decodes a PNG blob (as supplied by the filesystem/ROM
// loader collaborator, out of this runtime's scope) into a Bitmap whose
// pixels are indexed against nearest-match entries in palette. Pixels
// whose alpha is below 50% (high byte under 0x80) are treated as
// "masked out" and left at index 0, the same near-black-transparency
// convention the font rasterization tooling in the example pack uses
// for glyph art.
func DecodePNGBitmap(alloc *Allocator, blob []byte, palette [256]uint32, pool Pool) (*Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(blob))
	if err != nil {
		return nil, &VUIError{Operation: "decode png bitmap", Details: "png decode failed", Err: err}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	b, err := NewBitmap(alloc, w, h, nil, pool)
	if err != nil {
		return nil, &VUIError{Operation: "decode png bitmap", Details: "bitmap alloc failed", Err: err}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a>>8 < 0x80 {
				continue // masked: leave at index 0
			}
			idx := nearestPaletteIndex(palette, byte(r>>8), byte(g>>8), byte(bl>>8))
			b.SetPixel(x, y, idx)
		}
	}
	return b, nil
}

func nearestPaletteIndex(palette [256]uint32, r, g, bl byte) byte {
	best := 0
	bestDist := int(^uint(0) >> 1)
	for i, rgb := range palette {
		pr := byte(rgb >> 16)
		pg := byte(rgb >> 8)
		pb := byte(rgb)
		dr := int(r) - int(pr)
		dg := int(g) - int(pg)
		db := int(bl) - int(pb)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return byte(best)
}

// EncodeBitmapPNG renders a Bitmap back to a PNG for diagnostic dumps
// (screenshot tooling, regression fixtures), mapping each indexed pixel
// through palette.
func EncodeBitmapPNG(b *Bitmap, palette [256]uint32) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, b.Width(), b.Height()))
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			idx, _ := b.GetPixel(x, y)
			rgb := palette[idx]
			img.Set(x, y, color.RGBA{R: byte(rgb >> 16), G: byte(rgb >> 8), B: byte(rgb), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &VUIError{Operation: "encode bitmap png", Details: "png encode failed", Err: err}
	}
	return buf.Bytes(), nil
}
