// Package memlcd drives Sharp style memory LCD panels.
//
// A Display keeps a 1-bit per pixel framebuffer in memory. Drawing happens in logical
// (rotated) coordinates and only touches that buffer; Refresh serializes the buffer to the
// panel, Clear blanks both. Every transaction alternates the panel's VCOM polarity, so an
// application showing a static image must still call Refresh or Hold periodically
// (the panels want at least 1 Hz).
package memlcd

import (
	"errors"
	"os"

	"github.com/BeatGlow/memlcd/pixel"
)

var debug bool

func init() {
	debug = os.Getenv("MEMLCD_DEBUG") != ""
}

// Errors
var (
	ErrSize     = errors.New("memlcd: width must be a positive multiple of 8 and height between 1 and 255")
	ErrRotation = errors.New("memlcd: invalid rotation")
	ErrClosed   = errors.New("memlcd: display is closed")
	ErrCSPin    = errors.New("memlcd: chip select (CS) GPIO pin is invalid")
	ErrBitOrder = errors.New("memlcd: transport can not change its bit order")
)

// Colors, re-exported for convenience.
const (
	Black = pixel.Black
	White = pixel.White
)

// Default panel geometry (LS027B7DH01).
const (
	DefaultWidth  = 400
	DefaultHeight = 240
)

// maxHeight is the highest line address that fits the one byte address field.
const maxHeight = 255

// BitOrder selects how the LSB first wire format is produced.
type BitOrder uint8

const (
	// ReverseBits mirrors every byte in software and sends it MSB first.
	ReverseBits BitOrder = iota

	// LSBFirst sends bytes unmodified and has the transport frame them LSB first.
	LSBFirst
)

func (o BitOrder) String() string {
	switch o {
	case ReverseBits:
		return "reverse bits"
	case LSBFirst:
		return "LSB first"
	default:
		return "invalid"
	}
}

// Config is the display configuration.
type Config struct {
	// Width of the panel in pixels, must be a multiple of 8.
	Width int

	// Height of the panel in pixels (number of lines).
	Height int

	// Rotation of the logical coordinate system.
	Rotation Rotation

	// BitOrder policy for the wire format.
	BitOrder BitOrder
}

// DefaultConfig is used when New receives a nil config.
var DefaultConfig = Config{
	Width:  DefaultWidth,
	Height: DefaultHeight,
}

func (config *Config) validate() error {
	if config.Width <= 0 || config.Width%8 != 0 || config.Height <= 0 || config.Height > maxHeight {
		return ErrSize
	}
	if config.Rotation > Rotate270 {
		return ErrRotation
	}
	if config.BitOrder > LSBFirst {
		return ErrBitOrder
	}
	return nil
}
