package draw

import (
	"image"
	"image/color"
)

// Rectangle draws the outline of rect; Max is exclusive, like everywhere in package image.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x, y, w, c)
	HorizontalLine(dst, x, y+h-1, w, c)
	VerticalLine(dst, x, y, h, c)
	VerticalLine(dst, x+w-1, y, h, c)
}

// Box draws a filled rectangle as one vertical line per column.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	h := rect.Dy()
	for x := rect.Min.X; x < rect.Max.X; x++ {
		VerticalLine(dst, x, rect.Min.Y, h, c)
	}
}

// Fill paints all of dst.
func Fill(dst Image, c color.Color) {
	Box(dst, dst.Bounds(), c)
}
