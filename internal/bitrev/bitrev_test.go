package bitrev

import (
	"math/bits"
	"testing"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		in, want byte
	}{
		{0x00, 0x00},
		{0x01, 0x80},
		{0x02, 0x40},
		{0x04, 0x20},
		{0x06, 0x60},
		{0x0f, 0xf0},
		{0xa5, 0xa5},
		{0xff, 0xff},
	}
	for _, test := range tests {
		if v := Reverse(test.in); v != test.want {
			t.Errorf("expected Reverse(%#02x) to be %#02x, got %#02x", test.in, test.want, v)
		}
	}
}

func TestReverseInvolution(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if v := Reverse(Reverse(b)); v != b {
			t.Fatalf("expected Reverse(Reverse(%#02x)) to be %#02x, got %#02x", b, b, v)
		}
		if v := Reverse(b); v != bits.Reverse8(b) {
			t.Fatalf("table entry %#02x is %#02x, expected %#02x", b, v, bits.Reverse8(b))
		}
	}
}

func TestBytes(t *testing.T) {
	src := []byte{0x01, 0x02, 0x03}
	dst := make([]byte, 2)
	if n := Bytes(dst, src); n != 2 {
		t.Fatalf("expected 2 bytes written, got %d", n)
	}
	if dst[0] != 0x80 || dst[1] != 0x40 {
		t.Errorf("expected [0x80 0x40], got %#02x", dst)
	}

	in := []byte{0x12, 0x34}
	if n := Bytes(in, in); n != 2 || in[0] != 0x48 || in[1] != 0x2c {
		t.Errorf("in place reversal gave %#02x (%d bytes)", in, n)
	}
}
