//go:build !linux

package conn

import "errors"

var ErrNotSupported = errors.New("conn: spidev not supported")

// SPIMode is the clock polarity and phase of the bus.
type SPIMode uint8

const (
	SPIMode0 SPIMode = 0
	SPIMode1 SPIMode = 1
	SPIMode2 SPIMode = 2
	SPIMode3 SPIMode = 3
)

// SPI is unavailable on this platform.
type SPI struct{}

func OpenSPI(_, _ int) (*SPI, error) {
	return nil, ErrNotSupported
}

func (*SPI) Close() error               { return ErrNotSupported }
func (*SPI) String() string             { return "SPI (unsupported)" }
func (*SPI) Mode() SPIMode              { return SPIMode0 }
func (*SPI) SetMode(SPIMode) error      { return ErrNotSupported }
func (*SPI) LSBFirst() bool             { return false }
func (*SPI) SetLSBFirst(bool) error     { return ErrNotSupported }
func (*SPI) BitsPerWord() uint8         { return 0 }
func (*SPI) SetBitsPerWord(uint8) error { return ErrNotSupported }
func (*SPI) MaxSpeed() int              { return 0 }
func (*SPI) SetMaxSpeed(int) error      { return ErrNotSupported }
func (*SPI) Write([]byte) (int, error)  { return 0, ErrNotSupported }
