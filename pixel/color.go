package pixel

import "image/color"

// MonoModel converts any color to Mono by thresholding its luminance.
var MonoModel color.Model = color.ModelFunc(monoModel)

// Mono represents a 1-bit memory LCD pixel, as stored in the framebuffer.
//
// A cleared (reflective) pixel reads as White, a set pixel as Black.
type Mono uint8

// Colors.
const (
	Black Mono = 0
	White Mono = 1
)

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c != Black {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func (c Mono) String() string {
	if c != Black {
		return "white"
	}
	return "black"
}

func monoModel(c color.Color) color.Color {
	if m, ok := c.(Mono); ok {
		if m != Black {
			return White
		}
		return Black
	}
	r, g, b, _ := c.RGBA()

	// These coefficients (the fractions 0.299, 0.587 and 0.114) are the same
	// as those given by the JFIF specification and used by func RGBToYCbCr in
	// ycbcr.go.
	//
	// Note that 19595 + 38470 + 7471 equals 65536.
	//
	// The 31 is 16 + 15. The 16 is the same as used in RGBToYCbCr. The 15 is
	// because the return value is 1 bit color, not 16 bit color.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono(y)
}

// ToMono converts c to a Mono.
func ToMono(c color.Color) Mono {
	return monoModel(c).(Mono)
}
