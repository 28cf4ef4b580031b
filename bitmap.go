// bitmap.go - Indexed-color pixel buffer and 2D drawing primitives

/*
Copyright (c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package vui

const (
	BitmapMinDim = 2
	BitmapMaxDim = 2000
)

// Bitmap owns a rectangular buffer of 8-bit palette-index pixels plus the
// pen state every drawing primitive and Font.DrawString reads from. It
// does not own a Font: the font reference is shared, never freed by the
// Bitmap that points at it.
type Bitmap struct {
	width, height int
	pixels        []byte // width*height bytes, row-major
	pool          Pool   // pool the pixel buffer was allocated from

	penX, penY int
	color      byte
	font       *Font

	alloc *Allocator
}

// NewBitmap allocates a Bitmap's descriptor from the Normal pool and its
// pixel buffer from pool. width and height must each be in
// [BitmapMinDim, BitmapMaxDim].
func NewBitmap(alloc *Allocator, width, height int, font *Font, pool Pool) (*Bitmap, error) {
	if width < BitmapMinDim || width > BitmapMaxDim || height < BitmapMinDim || height > BitmapMaxDim {
		return nil, &VUIError{Operation: "bitmap create", Details: "width/height out of range"}
	}
	buf, err := alloc.ZeroAlloc(width*height, 1, pool)
	if err != nil {
		return nil, &VUIError{Operation: "bitmap create", Details: "pixel buffer allocation failed", Err: err}
	}
	return &Bitmap{
		width: width, height: height,
		pixels: buf, pool: pool,
		font: font, alloc: alloc,
	}, nil
}

// ReassignBuffer points the bitmap at an already-allocated buffer (used for
// the two screen layers, whose buffer is reassigned to a fixed VRAM offset
// after creation per the Platform's layer placement). The bitmap's
// original buffer is freed back to its old pool first.
func (b *Bitmap) ReassignBuffer(buf []byte, pool Pool) {
	if b.alloc != nil && b.pixels != nil {
		b.alloc.Free(b.pixels, b.pool)
	}
	b.pixels = buf
	b.pool = pool
}

// Destroy frees the bitmap's pixel buffer back to the pool it came from.
// Callers that share a bitmap (theme-owned control art, the backdrop
// window's on-screen bitmap) must not call Destroy on it.
func (b *Bitmap) Destroy() {
	if b.alloc != nil && b.pixels != nil {
		b.alloc.Free(b.pixels, b.pool)
	}
	b.pixels = nil
}

func (b *Bitmap) Width() int        { return b.width }
func (b *Bitmap) Height() int       { return b.height }
func (b *Bitmap) Font() *Font       { return b.font }
func (b *Bitmap) PenXY() (int, int) { return b.penX, b.penY }

// SetFont installs font as the bitmap's current font for DrawString.
func (b *Bitmap) SetFont(font *Font) { b.font = font }

// SetColor sets the current pen color used by all drawing primitives.
func (b *Bitmap) SetColor(c byte) { b.color = c }

// SetPenXY moves the pen. Returns false (no mutation) if x>=width or
// y>=height; negative coordinates are accepted since text can legally
// start partly off the left/top edge.
func (b *Bitmap) SetPenXY(x, y int) bool {
	if x >= b.width || y >= b.height {
		return false
	}
	b.penX, b.penY = x, y
	return true
}

func (b *Bitmap) at(x, y int) int { return y*b.width + x }

// inBounds is the corrected range check: the source's equivalent test is
// always false, a latent bug the spec requires fixing rather than
// reproducing.
func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetPixel writes one pixel. Out-of-bounds requests are not fatal and
// leave the bitmap unmodified.
func (b *Bitmap) SetPixel(x, y int, c byte) bool {
	if !b.inBounds(x, y) {
		return false
	}
	b.pixels[b.at(x, y)] = c
	return true
}

// GetPixel reads one pixel, returning (0, false) out of bounds.
func (b *Bitmap) GetPixel(x, y int) (byte, bool) {
	if !b.inBounds(x, y) {
		return 0, false
	}
	return b.pixels[b.at(x, y)], true
}

// Blit copies a w×h rect from src at (srcX,srcY) to dst at (dstX,dstY).
// src and dst may be the same bitmap. Both rects are clipped (never
// failed) against their owning bitmap; a source rect wholly offscreen
// copies nothing.
func Blit(src *Bitmap, srcX, srcY int, dst *Bitmap, dstX, dstY, w, h int) {
	sx, sy, sw, sh, ok := clipToBounds(srcX, srcY, w, h, src.width, src.height)
	if !ok {
		return
	}
	// Re-derive the destination origin from however much the source clip
	// ate off the left/top, then clip again against the destination.
	dx := dstX + (sx - srcX)
	dy := dstY + (sy - srcY)
	dx2, dy2, dw, dh, ok := clipToBounds(dx, dy, sw, sh, dst.width, dst.height)
	if !ok {
		return
	}
	// The destination clip may have moved the origin right/down (a
	// negative dx/dy clamps to 0) as well as trimming the right/bottom, so
	// shift the read origin by the same amount; dw/dh bound both sides.
	sx += dx2 - dx
	sy += dy2 - dy
	if src == dst && dy2 > sy {
		// Overlapping, downward copy: iterate bottom-to-top so source
		// rows aren't clobbered before they're read.
		for row := dh - 1; row >= 0; row-- {
			srcOff := src.at(sx, sy+row)
			dstOff := dst.at(dx2, dy2+row)
			copy(dst.pixels[dstOff:dstOff+dw], src.pixels[srcOff:srcOff+dw])
		}
		return
	}
	for row := 0; row < dh; row++ {
		srcOff := src.at(sx, sy+row)
		dstOff := dst.at(dx2, dy2+row)
		copy(dst.pixels[dstOff:dstOff+dw], src.pixels[srcOff:srcOff+dw])
	}
}

// Tile fills dst starting at (0,0) with copies of a w×h tile taken from
// src at (srcX,srcY). The tile must lie entirely within src. Fills by
// repeating the first tile-height band across dst's full width, then
// repeating that band down dst's full height; h_rem/v_rem are the partial
// tiles clipped at the right/bottom edges.
func Tile(src *Bitmap, srcX, srcY int, dst *Bitmap, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if srcX < 0 || srcY < 0 || srcX+w > src.width || srcY+h > src.height {
		return false
	}
	dw, dh := dst.width, dst.height

	// (a) Build the first horizontal band, one tile-width copy at a time.
	for x := 0; x < dw; x += w {
		hRem := w
		if x+hRem > dw {
			hRem = dw - x
		}
		Blit(src, srcX, srcY, dst, x, 0, hRem, h)
	}
	// (b) Repeat the first band down the full destination height.
	for y := h; y < dh; y += h {
		vRem := h
		if y+vRem > dh {
			vRem = dh - y
		}
		Blit(dst, 0, 0, dst, 0, y, dw, vRem)
	}
	return true
}

// FillBox fills a w×h rect at (x,y) with c, one row-fill per row. Clips
// silently; never fails.
func (b *Bitmap) FillBox(x, y, w, h int, c byte) {
	cx, cy, cw, ch, ok := clipToBounds(x, y, w, h, b.width, b.height)
	if !ok {
		return
	}
	for row := 0; row < ch; row++ {
		off := b.at(cx, cy+row)
		span := b.pixels[off : off+cw]
		for i := range span {
			span[i] = c
		}
	}
}

// FillMemory fills the entire pixel buffer with c.
func (b *Bitmap) FillMemory(c byte) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// DrawHLine draws a horizontal line as a one-row FillBox, per the
// source's fast-path convention.
func (b *Bitmap) DrawHLine(x, y, length int) {
	b.FillBox(x, y, length, 1, b.color)
}

// DrawVLine draws a vertical line one pixel per row; there is no fast
// path for the vertical case.
func (b *Bitmap) DrawVLine(x, y, length int) {
	for i := 0; i < length; i++ {
		b.SetPixel(x, y+i, b.color)
	}
}

// DrawLine draws a line from (x0,y0) to (x1,y1) with Bresenham's
// algorithm, using the sx/sy/dx/dy/err formulation.
func (b *Bitmap) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		b.SetPixel(x, y, b.color)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawBox draws a w×h rectangle at (x,y): its four edges, or a solid
// fill when filled is true.
func (b *Bitmap) DrawBox(x, y, w, h int, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		b.FillBox(x, y, w, h, b.color)
		return
	}
	b.DrawHLine(x, y, w)
	b.DrawHLine(x, y+h-1, w)
	b.DrawVLine(x, y, h)
	b.DrawVLine(x+w-1, y, h)
}

// DrawCircle draws a full circle of the given radius centered at (cx,cy)
// using the midpoint-circle quadrant primitive with all four quadrants
// enabled.
func (b *Bitmap) DrawCircle(cx, cy, radius int) {
	b.drawArcQuadrants(cx, cy, radius, true, true, true, true)
}

// drawArcQuadrants is the midpoint-circle algorithm shared by DrawCircle
// and DrawRoundBox's corner arcs, with per-quadrant enable flags (NE, SE,
// SW, NW) matching the source's PARAM_DRAW_NE/SE/SW/NW selectors.
func (b *Bitmap) drawArcQuadrants(cx, cy, radius int, ne, se, sw, nw bool) {
	x := radius
	y := 0
	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	b.plotQuadrants(cx, cy, x, y, ne, se, sw, nw)
	for x > y {
		y++
		if f >= 0 {
			x--
			ddFy += 2
			f += ddFy
		}
		ddFx += 2
		f += ddFx
		b.plotQuadrants(cx, cy, x, y, ne, se, sw, nw)
		b.plotQuadrants(cx, cy, y, x, ne, se, sw, nw)
	}
}

func (b *Bitmap) plotQuadrants(cx, cy, x, y int, ne, se, sw, nw bool) {
	if ne {
		b.SetPixel(cx+x, cy-y, b.color)
	}
	if se {
		b.SetPixel(cx+x, cy+y, b.color)
	}
	if sw {
		b.SetPixel(cx-x, cy+y, b.color)
	}
	if nw {
		b.SetPixel(cx-x, cy-y, b.color)
	}
}

// DrawRoundBox draws a w×h rounded rectangle at (x,y) with the given
// corner radius (3..20). Four arc quadrants meet four shortened straight
// edges; when filled, three interior FillBoxes cover the bulk of the
// rect and four seed-pixel flood fills finish the rounded corners.
func (b *Bitmap) DrawRoundBox(x, y, w, h, radius int, filled bool) bool {
	if radius < 3 || radius > 20 {
		return false
	}
	if w < 2*radius || h < 2*radius {
		return false
	}
	// Corner centers.
	neX, neY := x+w-1-radius, y+radius
	seX, seY := x+w-1-radius, y+h-1-radius
	swX, swY := x+radius, y+h-1-radius
	nwX, nwY := x+radius, y+radius

	b.drawArcQuadrants(neX, neY, radius, true, false, false, false)
	b.drawArcQuadrants(seX, seY, radius, false, true, false, false)
	b.drawArcQuadrants(swX, swY, radius, false, false, true, false)
	b.drawArcQuadrants(nwX, nwY, radius, false, false, false, true)

	// Shortened straight edges between the arc endpoints.
	b.DrawHLine(x+radius, y, w-2*radius)
	b.DrawHLine(x+radius, y+h-1, w-2*radius)
	b.DrawVLine(x, y+radius, h-2*radius)
	b.DrawVLine(x+w-1, y+radius, h-2*radius)

	if filled {
		b.FillBox(x+radius, y, w-2*radius, h, b.color)
		b.FillBox(x, y+radius, radius, h-2*radius, b.color)
		b.FillBox(x+w-radius, y+radius, radius, h-2*radius, b.color)
		// Seeds sit one pixel diagonally outward from each corner center,
		// outside the three boxes and inside the arc.
		b.floodFillSeed(neX+1, neY-1, b.color)
		b.floodFillSeed(seX+1, seY+1, b.color)
		b.floodFillSeed(swX-1, swY+1, b.color)
		b.floodFillSeed(nwX-1, nwY-1, b.color)
	}
	return true
}

// FloodFill fills the 4-connected region containing (x,y) with the pen
// color, stopping at any pixel already equal to the fill color or out of
// bounds. Implemented as an explicit work queue rather than recursion to
// avoid unbounded stack growth on large regions.
func (b *Bitmap) FloodFill(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.floodFillSeed(x, y, b.color)
}

func (b *Bitmap) floodFillSeed(x, y int, fill byte) bool {
	if !b.inBounds(x, y) {
		return false
	}
	target, _ := b.GetPixel(x, y)
	if target == fill {
		return true
	}
	type pt struct{ x, y int }
	queue := []pt{{x, y}}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if !b.inBounds(p.x, p.y) {
			continue
		}
		c, _ := b.GetPixel(p.x, p.y)
		if c != target {
			continue
		}
		b.pixels[b.at(p.x, p.y)] = fill
		queue = append(queue,
			pt{p.x + 1, p.y}, pt{p.x - 1, p.y},
			pt{p.x, p.y + 1}, pt{p.x, p.y - 1},
		)
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
