package memlcd_test

import (
	"bytes"
	"testing"

	"github.com/BeatGlow/memlcd"
	"github.com/BeatGlow/memlcd/emulator"
)

func TestEmulatedPanel(t *testing.T) {
	for _, order := range []memlcd.BitOrder{memlcd.ReverseBits, memlcd.LSBFirst} {
		t.Run(order.String(), func(it *testing.T) {
			panel, err := emulator.New(48, 24)
			if err != nil {
				it.Fatal(err)
			}
			d, err := memlcd.New(panel, &memlcd.Config{
				Width:    48,
				Height:   24,
				Rotation: memlcd.Rotate90,
				BitOrder: order,
			})
			if err != nil {
				it.Fatal(err)
			}

			d.DrawRect(0, 0, 24, 48, memlcd.Black)
			d.DrawLine(0, 0, 23, 47, memlcd.Black)
			d.FillRect(5, 30, 10, 4, memlcd.Black)
			if err = d.Refresh(); err != nil {
				it.Fatal(err)
			}
			if err = d.Hold(); err != nil {
				it.Fatal(err)
			}
			d.DrawFastHLine(0, 10, 24, memlcd.Black)
			if err = d.Refresh(); err != nil {
				it.Fatal(err)
			}

			img, err := panel.Image()
			if err != nil {
				it.Fatal(err)
			}
			if want := d.Snapshot(); !bytes.Equal(img.Pix, want.Pix) {
				it.Error("expected panel memory to match the framebuffer")
			}
			if err = panel.Err(); err != nil {
				it.Errorf("protocol violation: %v", err)
			}

			for kind, want := range map[emulator.Kind]int{
				emulator.Clear: 1,
				emulator.Write: 2,
				emulator.Hold:  1,
			} {
				if n := panel.Count(kind); n != want {
					it.Errorf("expected %d %s transactions, got %d", want, kind, n)
				}
			}

			txs := panel.Transactions()
			if last := txs[len(txs)-1]; len(last.Lines) != 24 || last.Lines[0] != 1 || last.Lines[23] != 24 {
				it.Errorf("expected a full frame write, got lines %v", last.Lines)
			}
		})
	}
}

func TestEmulatedPanelClear(t *testing.T) {
	panel, err := emulator.New(16, 4)
	if err != nil {
		t.Fatal(err)
	}
	d, err := memlcd.New(panel, &memlcd.Config{Width: 16, Height: 4})
	if err != nil {
		t.Fatal(err)
	}

	d.FillScreen(memlcd.Black)
	if err = d.Refresh(); err != nil {
		t.Fatal(err)
	}
	if err = d.Clear(); err != nil {
		t.Fatal(err)
	}

	img, err := panel.Image()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range img.Pix {
		if v != 0xff {
			t.Fatalf("expected panel byte %d to be cleared, got %#02x", i, v)
		}
	}
	if err = panel.Err(); err != nil {
		t.Errorf("protocol violation: %v", err)
	}
}
