// Package draw rasterizes lines and rectangles onto any draw.Image.
//
// All routines clip through dst.Set: points outside the destination are expected to be
// dropped by the image itself.
package draw

import (
	"image"
	"image/draw"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Draw copies src onto dst: r.Min in dst is aligned with sp in src.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point) {
	draw.Draw(dst, r, src, sp, draw.Src)
}
