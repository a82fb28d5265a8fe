// Package emulator provides an in-memory memory LCD panel.
//
// A Panel is a transport (it satisfies memlcd.Conn) that decodes the wire protocol instead of
// sending it anywhere: clear, multiple line write and hold commands update an image of the
// panel memory, and protocol violations are collected for inspection with Err.
package emulator

import (
	"errors"
	"fmt"

	"github.com/BeatGlow/memlcd/internal/bitrev"
	"github.com/BeatGlow/memlcd/pixel"
)

// Command bits, as seen after undoing the wire bit order.
const (
	bitWriteCmd = 0x01
	bitVCOM     = 0x02
	bitClear    = 0x04
)

// Errors
var (
	ErrClosed     = errors.New("emulator: panel is closed")
	ErrNotCleared = errors.New("emulator: panel memory is undefined before the first clear or write")
)

// Kind of a decoded transaction.
type Kind uint8

// Transaction kinds.
const (
	Hold Kind = iota
	Clear
	Write
)

func (k Kind) String() string {
	switch k {
	case Clear:
		return "clear"
	case Write:
		return "write"
	default:
		return "hold"
	}
}

// Transaction is one chip select cycle.
type Transaction struct {
	Kind Kind

	// VCOM is the polarity bit carried by the command byte.
	VCOM bool

	// Lines are the 1-based line addresses written, in order.
	Lines []int

	// Raw are the bytes as they appeared on the bus.
	Raw []byte
}

// Panel is an emulated memory LCD.
type Panel struct {
	width    int
	height   int
	lsbFirst bool
	selected bool
	closed   bool
	cur      []byte
	mem      *pixel.MonoImage
	known    bool
	vcom     bool
	log      []Transaction
	errs     []error
}

// New returns a width x height panel. The width must be a multiple of 8.
func New(width, height int) (*Panel, error) {
	if width <= 0 || width%8 != 0 || height <= 0 || height > 255 {
		return nil, fmt.Errorf("emulator: invalid panel size %dx%d", width, height)
	}
	return &Panel{
		width:  width,
		height: height,
		mem:    pixel.NewMonoImage(width, height),
	}, nil
}

func (p *Panel) String() string {
	return fmt.Sprintf("emulated panel %dx%d", p.width, p.height)
}

func (p *Panel) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	return nil
}

// SetLSBFirst makes the panel expect bytes that were not bit-reversed in software.
func (p *Panel) SetLSBFirst(v bool) error {
	if p.closed {
		return ErrClosed
	}
	p.lsbFirst = v
	return nil
}

// Select starts a transaction on a rising level and decodes it on the falling level.
func (p *Panel) Select(selected bool) error {
	if p.closed {
		return ErrClosed
	}
	if selected == p.selected {
		return nil
	}
	p.selected = selected
	if selected {
		p.cur = p.cur[:0]
		return nil
	}
	p.decode(append([]byte(nil), p.cur...))
	return nil
}

// Write clocks bytes into the panel. Bytes sent while deselected are recorded as an error.
func (p *Panel) Write(b []byte) (int, error) {
	if p.closed {
		return 0, ErrClosed
	}
	if !p.selected {
		p.errorf("write of %d bytes without chip select", len(b))
		return len(b), nil
	}
	p.cur = append(p.cur, b...)
	return len(b), nil
}

// Image returns a copy of the panel memory.
func (p *Panel) Image() (*pixel.MonoImage, error) {
	if !p.known {
		return nil, ErrNotCleared
	}
	dup := *p.mem
	dup.Pix = append([]byte(nil), p.mem.Pix...)
	return &dup, nil
}

// Transactions returns every decoded transaction, oldest first.
func (p *Panel) Transactions() []Transaction {
	return append([]Transaction(nil), p.log...)
}

// Count returns the number of transactions of kind k.
func (p *Panel) Count(k Kind) (n int) {
	for _, t := range p.log {
		if t.Kind == k {
			n++
		}
	}
	return
}

// Err returns all protocol violations seen so far, or nil.
func (p *Panel) Err() error {
	return errors.Join(p.errs...)
}

func (p *Panel) errorf(format string, args ...any) {
	p.errs = append(p.errs, fmt.Errorf("emulator: transaction %d: "+format, append([]any{len(p.log)}, args...)...))
}

func (p *Panel) decode(raw []byte) {
	b := append([]byte(nil), raw...)
	if !p.lsbFirst {
		bitrev.Bytes(b, b)
	}
	if len(b) == 0 {
		p.errorf("empty transaction")
		return
	}

	var (
		cmd = b[0]
		t   = Transaction{
			VCOM: cmd&bitVCOM != 0,
			Raw:  raw,
		}
	)
	if len(p.log) > 0 && t.VCOM == p.vcom {
		p.errorf("VCOM stayed %t", t.VCOM)
	}
	p.vcom = t.VCOM

	switch {
	case cmd&bitClear != 0:
		t.Kind = Clear
		p.expectTrailer(b, 1)
		p.mem.Clear()
		p.known = true
	case cmd&bitWriteCmd != 0:
		t.Kind = Write
		t.Lines = p.decodeLines(b)
	default:
		t.Kind = Hold
		p.expectTrailer(b, 1)
	}
	p.log = append(p.log, t)
}

// expectTrailer checks that b ends with a single 0x00 at offset i.
func (p *Panel) expectTrailer(b []byte, i int) {
	if len(b) != i+1 || b[i] != 0x00 {
		p.errorf("expected one 0x00 trailer byte at offset %d, got %#02x", i, b[i:])
	}
}

func (p *Panel) decodeLines(b []byte) (lines []int) {
	var (
		stride = p.width / 8
		i      = 1
	)
	for i < len(b)-1 {
		if i+stride+2 > len(b)-1 {
			p.errorf("truncated line at offset %d", i)
			return
		}
		addr := int(b[i])
		if addr < 1 || addr > p.height {
			p.errorf("line address %d out of range 1..%d", addr, p.height)
			return
		}
		if b[i+1+stride] != 0x00 {
			p.errorf("line %d not terminated by 0x00", addr)
		}
		copy(p.mem.Row(addr-1), b[i+1:i+1+stride])
		lines = append(lines, addr)
		i += stride + 2
	}

	if len(lines) > 0 && len(lines) == p.height {
		p.known = true
	}
	p.expectTrailer(b, i)
	return
}
