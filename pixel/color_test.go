package pixel

import (
	"image/color"
	"testing"
)

func TestMono(t *testing.T) {
	for y := 0; y < 2; y++ {
		t.Run("", func(it *testing.T) {
			c := Black
			if y > 0 {
				c = White
			}
			r, g, b, a := c.RGBA()
			y *= 0xF
			want := uint32(y | y<<4 | y<<8 | y<<12)
			if r != want {
				it.Errorf("expected red to be %#04x, got %#04x", want, r)
			}
			if g != want {
				it.Errorf("expected green to be %#04x, got %#04x", want, g)
			}
			if b != want {
				it.Errorf("expected blue to be %#04x, got %#04x", want, b)
			}
			if a != 0xffff {
				it.Errorf("expected opaque alpha, got %#04x", a)
			}
		})
	}
}

func TestMonoModel(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Mono
	}{
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"dark gray", color.Gray{Y: 0x40}, Black},
		{"light gray", color.Gray{Y: 0xc0}, White},
		{"red", color.RGBA{R: 0xff, A: 0xff}, Black},
		{"green", color.RGBA{G: 0xff, A: 0xff}, White},
		{"mono black", Black, Black},
		{"mono white", White, White},
		{"mono non-zero", Mono(7), White},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := MonoModel.Convert(test.in); v != test.want {
				it.Errorf("expected %s, got %v", test.want, v)
			}
		})
	}
}
