//go:build linux

// Package conn implements raw hardware transports for memory LCD panels.
package conn

import (
	"fmt"
	"os"

	"github.com/BeatGlow/memlcd/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

// Definitions from <linux/spi/spidev.h>
const (
	spiCPHA = 0x01
	spiCPOL = 0x02
)

// SPIMode is the clock polarity and phase of the bus.
type SPIMode uint8

const (
	SPIMode0 SPIMode = (0 | 0)             //nolint:staticcheck
	SPIMode1 SPIMode = (0 | spiCPHA)       //nolint:staticcheck
	SPIMode2 SPIMode = (spiCPOL | 0)       //nolint:staticcheck
	SPIMode3 SPIMode = (spiCPOL | spiCPHA) //nolint:staticcheck
)

const (
	spiIOCMode        = 0x6b01
	spiIOCLSBFirst    = 0x6b02
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// SPI implements the spidev interface.
type SPI struct {
	f           *os.File
	fd          uintptr
	mode        SPIMode
	lsbFirst    uint8
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// OpenSPI opens the numbered spi bus with the numbered device. The device often corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:  f,
		fd: f.Fd(),
	}
	if err = c.get(&c.mode, spiIOCMode); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = c.get(&c.lsbFirst, spiIOCLSBFirst); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = c.get(&c.bitsPerWord, spiIOCBitsPerWord); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = c.get(&c.maxSpeedHz, spiIOCMaxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func (c *SPI) get(v any, nr uintptr) error {
	return ioctl.Do(c.fd, ioctl.For(ioctl.Read, v, nr), v)
}

func (c *SPI) set(v any, nr uintptr) error {
	return ioctl.Do(c.fd, ioctl.For(ioctl.Write, v, nr), v)
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI %s mode=%d lsb first=%t bits per word=%d max speed=%dHz",
		c.f.Name(), c.mode, c.lsbFirst != 0, c.bitsPerWord, c.maxSpeedHz)
}

func (c *SPI) Mode() SPIMode {
	return c.mode
}

func (c *SPI) SetMode(mode SPIMode) error {
	mode &= 0x0f

	if err := c.set(&mode, spiIOCMode); err != nil {
		return err
	}

	var test SPIMode
	if err := c.get(&test, spiIOCMode); err != nil {
		return err
	}

	if test != mode {
		return fmt.Errorf("conn: SPI attempted to set mode %#02x, but mode %#02x is in use", mode, test)
	}

	c.mode = mode
	return nil
}

// LSBFirst reports whether words are framed least significant bit first.
func (c *SPI) LSBFirst() bool {
	return c.lsbFirst != 0
}

// SetLSBFirst selects least significant bit first framing. Not every controller
// supports it; the kernel rejects the request in that case.
func (c *SPI) SetLSBFirst(v bool) error {
	var want uint8
	if v {
		want = 1
	}
	if c.lsbFirst == want {
		return nil
	}
	if err := c.set(&want, spiIOCLSBFirst); err != nil {
		return err
	}
	c.lsbFirst = want
	return nil
}

func (c *SPI) BitsPerWord() uint8 {
	return c.bitsPerWord
}

func (c *SPI) SetBitsPerWord(bits uint8) error {
	if bits < 8 || bits > 32 {
		return fmt.Errorf("conn: SPI bits per word need to be 8 or more and 32 or less, got %d", bits)
	}

	if c.bitsPerWord != bits {
		if err := c.set(&bits, spiIOCBitsPerWord); err != nil {
			return err
		}
		c.bitsPerWord = bits
	}

	return nil
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v < 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := c.set(&u, spiIOCMaxSpeedHz); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}

	return nil
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}
