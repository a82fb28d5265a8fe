package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/memlcd/draw"
)

// Image is a draw.Image that can be wiped in one go.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// MonoImage is a 1-bit per pixel monochrome image laid out as a memory LCD expects it.
//
// Rows are stored top to bottom, Stride bytes each. Pixel x of a row lives in byte x/8, bit
// x%8, so byte i of the buffer covers pixels (i*8)..(i*8+7) counted over the whole image when
// the width is a multiple of 8. A bit value of 1 is White.
type MonoImage struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

// NewMonoImage returns a cleared (all White) image.
func NewMonoImage(w, h int) *MonoImage {
	stride := ((w + 7) & ^7) / 8 // round up to whole bytes
	p := &MonoImage{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
	p.Clear()
	return p
}

func (p *MonoImage) Bounds() image.Rectangle {
	return p.Rect
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding pixel (x, y).
func (p *MonoImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/8
}

func (p *MonoImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.MonoAt(x, y)
}

// MonoAt returns the pixel at (x, y), or Black outside the image.
func (p *MonoImage) MonoAt(x, y int) Mono {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Black
	}
	bit := byte(1) << uint((x-p.Rect.Min.X)&7)
	if p.Pix[p.PixOffset(x, y)]&bit != 0 {
		return White
	}
	return Black
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	p.SetMono(x, y, ToMono(c))
}

// SetMono sets the pixel at (x, y); points outside the image are ignored.
func (p *MonoImage) SetMono(x, y int, c Mono) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		i   = p.PixOffset(x, y)
		bit = byte(1) << uint((x-p.Rect.Min.X)&7)
	)
	if c != Black {
		p.Pix[i] |= bit
	} else {
		p.Pix[i] &^= bit
	}
}

// Row returns the bytes of row y, aliasing Pix.
func (p *MonoImage) Row(y int) []byte {
	off := (y - p.Rect.Min.Y) * p.Stride
	return p.Pix[off : off+p.Stride : off+p.Stride]
}

// Clear resets every pixel to White.
func (p *MonoImage) Clear() {
	p.Fill(White)
}

func (p *MonoImage) Fill(c color.Color) {
	var value byte
	if ToMono(c) != Black {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*MonoImage)(nil)
)
