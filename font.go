// font.go - Mac-style bitmapped font: parsing, measuring, drawing

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

import (
	"encoding/binary"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MeasureStringNoLimit, passed as maxChars, means "unlimited up to the
// safety cap" for MeasureString and DrawString.
const MeasureStringNoLimit = -1

// measureSafetyCap bounds an "unlimited" measure/draw request so a
// corrupt or pathological string can't walk off into the weeds.
const measureSafetyCap = 12800

// fontHeader mirrors the Mac "FONT" resource's fixed 13 16-bit-field
// header, read big-endian as the original resource format specifies.
type fontHeader struct {
	FontType    uint16
	FirstChar   uint16
	LastChar    uint16
	MaxWidth    uint16
	KernMax     uint16
	NDescent    uint16
	FRectWidth  uint16
	FRectHeight uint16
	OWTLoc      uint16
	Ascent      uint16
	Descent     uint16
	Leading     uint16
	RowWords    uint16
}

// Font is a Mac-style bitmapped font: a packed glyph image table plus
// three (optionally four) parallel per-glyph tables. Fonts are shared —
// a Bitmap/Window holds a non-owning reference and never frees one.
type Font struct {
	hdr fontHeader

	image     []uint16 // rowWords * fRectHeight words
	loc       []uint16 // lastChar-firstChar+3 words
	widOff    []uint16 // same size: high byte advance, low byte left bearing
	heightOff []uint16 // optional, same size again

	hasHeightTable bool

	basic *basicfont.Face // non-nil for the stdlib-backed built-in font
}

// NewFontFromBlob parses a Mac "FONT" resource blob: the 13-field header
// followed by the four (three mandatory, one optional) glyph tables.
func NewFontFromBlob(blob []byte) (*Font, error) {
	const headerBytes = 13 * 2
	if len(blob) < headerBytes {
		return nil, &VUIError{Operation: "font parse", Details: "blob shorter than header"}
	}
	f := &Font{}
	fields := []*uint16{
		&f.hdr.FontType, &f.hdr.FirstChar, &f.hdr.LastChar, &f.hdr.MaxWidth,
		&f.hdr.KernMax, &f.hdr.NDescent, &f.hdr.FRectWidth, &f.hdr.FRectHeight,
		&f.hdr.OWTLoc, &f.hdr.Ascent, &f.hdr.Descent, &f.hdr.Leading, &f.hdr.RowWords,
	}
	for i, p := range fields {
		*p = binary.BigEndian.Uint16(blob[i*2 : i*2+2])
	}
	off := headerBytes
	f.hasHeightTable = f.hdr.FontType&1 != 0

	imageWords := int(f.hdr.RowWords) * int(f.hdr.FRectHeight)
	tableLen := int(f.hdr.LastChar) - int(f.hdr.FirstChar) + 3

	read := func(n int) ([]uint16, error) {
		need := n * 2
		if off+need > len(blob) {
			return nil, &VUIError{Operation: "font parse", Details: "blob truncated before table end"}
		}
		out := make([]uint16, n)
		for i := range out {
			out[i] = binary.BigEndian.Uint16(blob[off : off+2])
			off += 2
		}
		return out, nil
	}

	var err error
	if f.image, err = read(imageWords); err != nil {
		return nil, err
	}
	if f.loc, err = read(tableLen); err != nil {
		return nil, err
	}
	if f.widOff, err = read(tableLen); err != nil {
		return nil, err
	}
	if f.hasHeightTable {
		if f.heightOff, err = read(tableLen); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewBuiltinFont wraps golang.org/x/image/font/basicfont's 7x13 face as a
// Font, used when no Mac FONT resource is available (system console
// fallback, headless tests).
func NewBuiltinFont() *Font {
	face := basicfont.Face7x13
	return &Font{
		hdr: fontHeader{
			FirstChar:   32,
			LastChar:    126,
			FRectHeight: uint16(face.Height),
			Ascent:      uint16(face.Ascent),
			Descent:     uint16(face.Descent),
		},
		basic: face,
	}
}

// glyphBits returns the per-glyph rendering parameters for code c,
// applying the missing-glyph redirect to lastChar+1 when c is absent,
// per the construct-from-blob glyph lookup algorithm.
func (f *Font) glyphBits(c int) (hOffset, advance, pixelWidth, startWord, startBit int, ok bool) {
	first, last := int(f.hdr.FirstChar), int(f.hdr.LastChar)
	idx := c - first
	if idx < 0 || idx > last-first {
		idx = last - first + 1 // missing-glyph slot
	}
	if idx < 0 || idx+1 >= len(f.widOff) || idx+1 >= len(f.loc) {
		return 0, 0, 0, 0, 0, false
	}
	wo := f.widOff[idx]
	if int16(wo) == -1 {
		idx = last - first + 1
		if idx+1 >= len(f.widOff) {
			return 0, 0, 0, 0, 0, false
		}
		wo = f.widOff[idx]
	}
	hOffset = int(wo & 0xFF)
	advance = int(wo >> 8)
	pixelWidth = int(f.loc[idx+1]) - int(f.loc[idx])
	startWord = int(f.loc[idx]) / 16
	startBit = int(f.loc[idx]) % 16
	return hOffset, advance, pixelWidth, startWord, startBit, true
}

// rowRange returns the [firstRow, firstRow+rowCount) range to render for
// character code c, restricted by the optional height/offset table.
func (f *Font) rowRange(c int) (firstRow, rowCount int) {
	if !f.hasHeightTable {
		return 0, int(f.hdr.FRectHeight)
	}
	first, last := int(f.hdr.FirstChar), int(f.hdr.LastChar)
	idx := c - first
	if idx < 0 || idx > last-first || idx >= len(f.heightOff) {
		idx = last - first + 1
		if idx >= len(f.heightOff) {
			return 0, int(f.hdr.FRectHeight)
		}
	}
	ho := f.heightOff[idx]
	return int(ho & 0xFF), int(ho >> 8)
}

// DrawGlyph renders character code c at dst's current pen position using
// dst's current color, advancing the pen by the glyph's advance width
// (not its pixel-only width). Returns false if the font has no usable
// table data for c.
func (f *Font) DrawGlyph(dst *Bitmap, c int) bool {
	if f.basic != nil {
		return f.drawGlyphBasic(dst, c)
	}
	hOffset, advance, pixelWidth, startWord, startBit, ok := f.glyphBits(c)
	if !ok {
		return false
	}
	firstRow, rowCount := f.rowRange(c)
	penX, penY := dst.PenXY()
	rowWords := int(f.hdr.RowWords)

	for row := 0; row < rowCount; row++ {
		wordIdx := startWord + row*rowWords
		bit := startBit
		y := penY + firstRow + row
		col := 0
		for col < pixelWidth {
			if wordIdx >= len(f.image) {
				break
			}
			word := f.image[wordIdx]
			if word&(1<<(15-uint(bit))) != 0 {
				dst.SetPixel(penX+hOffset+col, y, dst.color)
			}
			col++
			bit++
			if bit == 16 {
				bit = 0
				wordIdx++
			}
		}
	}
	dst.penX += advance
	return true
}

func (f *Font) drawGlyphBasic(dst *Bitmap, c int) bool {
	if c < 32 || c > 126 {
		c = int(f.hdr.LastChar) + 1
		if c > 126 {
			return false
		}
	}
	penX, penY := dst.PenXY()
	maskRect, mask, maskp, advance, ok := f.basic.Glyph(
		fixed.P(penX, penY+int(f.hdr.Ascent)), rune(c))
	if !ok {
		return false
	}
	for y := maskRect.Min.Y; y < maskRect.Max.Y; y++ {
		for x := maskRect.Min.X; x < maskRect.Max.X; x++ {
			// maskp is the mask point matching maskRect.Min.
			_, _, _, a := mask.At(maskp.X+x-maskRect.Min.X, maskp.Y+y-maskRect.Min.Y).RGBA()
			if a != 0 {
				dst.SetPixel(x, y, dst.color)
			}
		}
	}
	dst.penX += advance.Round()
	return true
}

// MeasureString sums per-glyph advances from s, stopping before the
// glyph that would exceed availWidth pixels or after maxChars glyphs
// (MeasureStringNoLimit for unlimited, capped at measureSafetyCap).
// Returns the glyph count that fits and the pixel width consumed.
func (f *Font) MeasureString(s string, maxChars, availWidth int) (count, pixels int) {
	limit := maxChars
	if limit < 0 || limit > measureSafetyCap {
		limit = measureSafetyCap
	}
	for i := 0; i < len(s) && i < limit; i++ {
		advance := f.glyphAdvance(int(s[i]))
		if pixels+advance > availWidth {
			break
		}
		pixels += advance
		count++
	}
	return count, pixels
}

func (f *Font) glyphAdvance(c int) int {
	if f.basic != nil {
		a, ok := f.basic.GlyphAdvance(rune(c))
		if !ok {
			return 0
		}
		return a.Round()
	}
	_, advance, _, _, _, ok := f.glyphBits(c)
	if !ok {
		return 0
	}
	return advance
}

// DrawString measures s against the bitmap's remaining width
// (dst.width - pen_x), then draws exactly the glyphs that fit.
// maxChars == MeasureStringNoLimit draws the full string.
func (f *Font) DrawString(dst *Bitmap, s string, maxChars int) int {
	avail := dst.width - dst.penX
	count, _ := f.MeasureString(s, maxChars, avail)
	for i := 0; i < count; i++ {
		f.DrawGlyph(dst, int(s[i]))
	}
	return count
}

// WrapAndTrim reformats s into lines no wider than wrapWidth pixels,
// breaking at the last space before the limit (or mid-word if a single
// word exceeds wrapWidth), joined with '\n'.
func (f *Font) WrapAndTrim(s string, wrapWidth int) string {
	var out []byte
	lineStart := 0
	lastSpace := -1
	lineWidth := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '\n' {
			out = append(out, s[lineStart:i]...)
			out = append(out, '\n')
			lineStart = i + 1
			lastSpace = -1
			lineWidth = 0
			continue
		}
		adv := f.glyphAdvance(int(ch))
		if lineWidth+adv > wrapWidth && lineStart < i {
			breakAt := i
			if lastSpace >= lineStart {
				breakAt = lastSpace
			}
			out = append(out, s[lineStart:breakAt]...)
			out = append(out, '\n')
			lineStart = breakAt
			if lastSpace == breakAt {
				lineStart = breakAt + 1
			}
			lastSpace = -1
			lineWidth = 0
			i = lineStart - 1
			continue
		}
		if ch == ' ' {
			lastSpace = i
		}
		lineWidth += adv
	}
	out = append(out, s[lineStart:]...)
	return string(out)
}

// ContinuationFunc is called when DrawStringInBox has more text than fits
// in the box. Returning true clears the box and displays the next page;
// returning false stops and leaves the remainder undrawn.
type ContinuationFunc func() bool

// DrawStringInBox wraps s to wrapWidth, then draws line by line into dst
// starting at the current pen, advancing pen_y by fRectHeight+leading
// per line and stopping at the first line that would overflow
// boxHeight. If text remains and cont is non-nil and returns true, the
// pen returns to the starting position and the next page is drawn over
// the previous one; the box is not cleared. Otherwise drawing stops and
// the index of the first undrawn byte of the wrapped text (WrapAndTrim's
// output, which can differ from s where a line was broken mid-word) is
// returned; len(s) is returned if everything was drawn.
func (f *Font) DrawStringInBox(dst *Bitmap, s string, wrapWidth, boxHeight int, cont ContinuationFunc) int {
	wrapped := f.WrapAndTrim(s, wrapWidth)
	lineAdvance := int(f.hdr.FRectHeight) + int(f.hdr.Leading)
	if lineAdvance <= 0 {
		lineAdvance = 1
	}
	startX, startY := dst.PenXY()
	pos := 0
	for pos < len(wrapped) {
		_, y := dst.PenXY()
		if y+lineAdvance > startY+boxHeight {
			if cont != nil && cont() {
				dst.SetPenXY(startX, startY)
				continue
			}
			return pos
		}
		end := pos
		for end < len(wrapped) && wrapped[end] != '\n' {
			end++
		}
		dst.SetPenXY(startX, y)
		f.DrawString(dst, wrapped[pos:end], MeasureStringNoLimit)
		pos = end + 1
		dst.SetPenXY(startX, y+lineAdvance)
	}
	return len(s)
}
