package memlcd

import (
	"io"
	"log"

	"github.com/BeatGlow/memlcd/internal/bitrev"
)

// Command bits of the first byte of every transaction.
const (
	bitWriteCmd = 0x01
	bitVCOM     = 0x02
	bitClear    = 0x04
)

// toggleVCOM flips the polarity for the next transaction. The panel accumulates a DC
// bias (and eventually gets damaged) if it does not alternate.
func (d *Display) toggleVCOM() {
	if d.vcom != 0 {
		d.vcom = 0x00
	} else {
		d.vcom = bitVCOM
	}
}

// Clear blanks the framebuffer (all White) and sends the all clear command to the panel.
func (d *Display) Clear() error {
	if d.buf == nil {
		return ErrClosed
	}
	d.buf.Clear()

	cmd := d.vcom | bitClear
	d.toggleVCOM()
	if debug {
		log.Printf("memlcd: clear cmd=%#02x", cmd)
	}
	return d.transfer([]byte{cmd, 0x00})
}

// Hold sends the VCOM toggle without touching the panel memory. Call it at least once a
// second while the image does not change.
func (d *Display) Hold() error {
	if d.buf == nil {
		return ErrClosed
	}

	cmd := d.vcom
	d.toggleVCOM()
	if debug {
		log.Printf("memlcd: hold cmd=%#02x", cmd)
	}
	return d.transfer([]byte{cmd, 0x00})
}

// Refresh sends the entire framebuffer to the panel using a multiple line write: one command
// byte, then for every line its 1-based address, the line data and a 0x00 terminator,
// followed by one more 0x00.
func (d *Display) Refresh() error {
	if d.buf == nil {
		return ErrClosed
	}

	var (
		stride = d.buf.Stride
		size   = 1 + d.height*(stride+2) + 1
	)
	if cap(d.tx) < size {
		d.tx = make([]byte, size)
	}
	tx := d.tx[:size]

	tx[0] = d.vcom | bitWriteCmd
	d.toggleVCOM()

	i := 1
	for y := 0; y < d.height; y++ {
		tx[i] = byte(y + 1)
		i++
		i += copy(tx[i:], d.buf.Row(y))
		tx[i] = 0x00
		i++
	}
	tx[i] = 0x00

	if debug {
		log.Printf("memlcd: refresh cmd=%#02x, %d lines in %d bytes", tx[0], d.height, len(tx))
	}
	return d.transfer(tx)
}

// transfer sends p as one transaction with chip select asserted. p is modified in place
// when the bits have to be reversed in software.
func (d *Display) transfer(p []byte) (err error) {
	if d.order == ReverseBits {
		bitrev.Bytes(p, p)
	}

	if err = d.c.Select(true); err != nil {
		return
	}
	defer func() {
		if serr := d.c.Select(false); err == nil {
			err = serr
		}
	}()

	var n int
	if n, err = d.c.Write(p); err != nil {
		return
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
