package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoImage(t *testing.T) {
	testCases := []image.Point{
		{},
		image.Pt(1, 1),
		image.Pt(8, 2),
		image.Pt(12, 3),
		image.Pt(400, 240),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewMonoImage(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != MonoModel {
				it.Errorf("expected color model %T, got %T", MonoModel, v)
			}

			it.Run("cleared", func(itt *testing.T) {
				for _, b := range i.Pix {
					if b != 0xff {
						itt.Fatalf("expected new image to be all white, got byte %#02x", b)
					}
				}
			})

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				pix := append([]byte(nil), i.Pix...)
				for y := -test.Y - 1; y < test.Y*2+1; y++ {
					for x := -test.X - 1; x < test.X*2+1; x++ {
						if (image.Point{X: x, Y: y}).In(i.Rect) {
							continue
						}
						i.Set(x, y, testRandomColor())
						if v := i.At(x, y); v != color.Transparent {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
						}
						if v := i.MonoAt(x, y); v != Black {
							itt.Fatalf("pixel (%d,%d) is %s, expected black", x, y, v)
						}
					}
				}
				for j := range pix {
					if pix[j] != i.Pix[j] {
						itt.Fatalf("out of bounds writes changed byte %d", j)
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(Black)
				for _, b := range i.Pix {
					if b != 0x00 {
						itt.Fatalf("expected black fill, got byte %#02x", b)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.MonoAt(x, y); v != White {
						itt.Fatalf("pixel (%d,%d) is not white", x, y)
					}
				}
			})
		})
	}
}

func TestMonoImageLayout(t *testing.T) {
	i := NewMonoImage(16, 2)
	i.SetMono(0, 0, Black)
	i.SetMono(9, 0, Black)
	i.SetMono(15, 1, Black)

	want := []byte{0xfe, 0xfd, 0xff, 0x7f}
	for j, b := range want {
		if i.Pix[j] != b {
			t.Errorf("expected byte %d to be %#02x, got %#02x", j, b, i.Pix[j])
		}
	}
	if v := i.PixOffset(9, 1); v != 3 {
		t.Errorf("expected offset 3, got %d", v)
	}
	if row := i.Row(1); len(row) != 2 || row[1] != 0x7f {
		t.Errorf("expected row 1 to be [0xff 0x7f], got %#02x", row)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
