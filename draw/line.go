package draw

import (
	"image"
	"image/color"
)

// Line draws a line between two points, both inclusive.
//
// Axis aligned lines are dispatched to HorizontalLine and VerticalLine.
func Line(dst Image, a, b image.Point, c color.Color) {
	switch {
	case a.X == b.X:
		if a.Y > b.Y {
			a, b = b, a
		}
		VerticalLine(dst, a.X, a.Y, b.Y-a.Y+1, c)
	case a.Y == b.Y:
		if a.X > b.X {
			a, b = b, a
		}
		HorizontalLine(dst, a.X, a.Y, b.X-a.X+1, c)
	default:
		bresenham(dst, a.X, a.Y, b.X, b.Y, c)
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y). Nothing is drawn if w <= 0.
//
// TODO: write whole framebuffer bytes for the aligned middle part instead of
// going through the general rasterizer.
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w <= 0 {
		return
	}
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1). Nothing is drawn if h <= 0.
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h <= 0 {
		return
	}
	bresenham(dst, x, y, x, y+h-1, c)
}

// bresenham always iterates along the major axis in increasing order, so a line and
// its reverse cover the same pixels.
func bresenham(dst Image, x0, y0, x1, y1 int, c color.Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	var (
		dx    = x1 - x0
		dy    = abs(y1 - y0)
		e     = dx / 2
		ystep = -1
	)
	if y0 < y1 {
		ystep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			dst.Set(y0, x0, c)
		} else {
			dst.Set(x0, y0, c)
		}
		e -= dy
		if e < 0 {
			y0 += ystep
			e += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
