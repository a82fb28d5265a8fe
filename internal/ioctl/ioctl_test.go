//go:build linux

package ioctl

import "testing"

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		dir  Dir
		size uint16
		nr   uintptr
		want Request
	}{
		// _IOR('k', 1, __u8) and _IOW('k', 4, __u32) from <linux/spi/spidev.h>
		{"read mode", Read, 1, 0x6b01, 0x80016b01},
		{"write max speed", Write, 4, 0x6b04, 0x40046b04},
		{"none", None, 0, 0x4600, 0x4600},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			got := Encode(test.dir, test.size, test.nr)
			if got != test.want {
				it.Errorf("expected %#08x, got %#08x", uintptr(test.want), uintptr(got))
			}
			if got.Dir() != test.dir {
				it.Errorf("expected direction %d, got %d", test.dir, got.Dir())
			}
			if got.Size() != int(test.size) {
				it.Errorf("expected size %d, got %d", test.size, got.Size())
			}
		})
	}
}

func TestFor(t *testing.T) {
	var (
		u8  uint8
		u32 uint32
	)
	if v := For(Write, &u8, 0x6b02); v != 0x40016b02 {
		t.Errorf("expected %#08x, got %#08x", 0x40016b02, uintptr(v))
	}
	if v := For(Read, &u32, 0x6b04); v != 0x80046b04 {
		t.Errorf("expected %#08x, got %#08x", 0x80046b04, uintptr(v))
	}
}

func TestRequestString(t *testing.T) {
	want := "ioctl write (4 bytes) 0x6b04"
	if v := Encode(Write, 4, 0x6b04).String(); v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}
