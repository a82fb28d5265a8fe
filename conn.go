package memlcd

import (
	"fmt"
	"io"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/BeatGlow/memlcd/conn"
)

// Conn is the byte transport to the panel.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Select drives the chip select line. Memory LCDs select on a high level.
	Select(bool) error

	// Write sends raw bytes.
	Write([]byte) (int, error)
}

// LSBFirstSetter is implemented by transports that can frame bytes least significant bit first.
type LSBFirstSetter interface {
	SetLSBFirst(bool) error
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Bus and Device select /dev/spidev<Bus>.<Device> for OpenSPI.
	Bus    int
	Device int

	// SpeedHz is the clock rate; it must be one of ValidSPISpeeds.
	SpeedHz uint32

	// BatchSize limits the size of a single write.
	BatchSize uint

	// CS is the chip select pin, driven high during transactions.
	CS gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:       0,
	Device:    0,
	SpeedHz:   2_000_000,
	BatchSize: 4096,
}

// ValidSPISpeeds are the bus speeds memory LCDs are specified for.
var ValidSPISpeeds = []uint32{
	250_000,
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
}

func (config *SPIConfig) withDefaults() (*SPIConfig, error) {
	if config == nil {
		return nil, ErrCSPin
	}

	c := *config
	if c.CS == nil || c.CS == gpio.INVALID {
		return nil, ErrCSPin
	}
	if c.SpeedHz == 0 {
		c.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultSPIConfig.BatchSize
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == c.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("memlcd: invalid SPI speed %dHz", c.SpeedHz)
	}
	return &c, nil
}

// spiBus is the part of a SPI controller the panel needs.
type spiBus interface {
	String() string
	Close() error
	Write([]byte) (int, error)
}

type spiConn struct {
	bus       spiBus
	cs        gpio.PinOut
	batchSize uint
}

// OpenSPI opens a Linux spidev device.
func OpenSPI(config *SPIConfig) (Conn, error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	c, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}
	if err = c.SetMode(conn.SPIMode0); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetBitsPerWord(8); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.SetMaxSpeed(int(config.SpeedHz)); err != nil {
		_ = c.Close()
		return nil, err
	}

	return &spiConn{
		bus:       c,
		cs:        config.CS,
		batchSize: config.BatchSize,
	}, nil
}

// NewSPI uses a periph.io SPI port. The port is connected on the first write, in mode 0
// with the controller's own chip select disabled.
func NewSPI(port spi.Port, config *SPIConfig) (Conn, error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	return &spiConn{
		bus: &periphBus{
			port: port,
			freq: physic.Frequency(config.SpeedHz) * physic.Hertz,
		},
		cs:        config.CS,
		batchSize: config.BatchSize,
	}, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) Select(selected bool) error {
	return c.cs.Out(gpio.Level(selected))
}

func (c *spiConn) SetLSBFirst(v bool) error {
	s, ok := c.bus.(LSBFirstSetter)
	if !ok {
		if v {
			return ErrBitOrder
		}
		return nil
	}
	return s.SetLSBFirst(v)
}

func (c *spiConn) Write(data []byte) (n int, err error) {
	if len(data) <= int(c.batchSize) {
		return c.bus.Write(data)
	}

	if debug {
		log.Printf("memlcd: write %d bytes of data in %d chunks", len(data), (len(data)+int(c.batchSize)-1)/int(c.batchSize))
	}
	for len(data) > 0 {
		chunk := data
		if len(chunk) > int(c.batchSize) {
			chunk = chunk[:c.batchSize]
		}
		var m int
		m, err = c.bus.Write(chunk)
		n += m
		if err != nil {
			return
		}
		if m != len(chunk) {
			return n, io.ErrShortWrite
		}
		data = data[m:]
	}
	return
}

type periphBus struct {
	port     spi.Port
	freq     physic.Frequency
	lsbFirst bool
	c        spi.Conn
}

func (b *periphBus) String() string {
	return b.port.String()
}

func (b *periphBus) Close() error {
	if c, ok := b.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// SetLSBFirst must be called before the first write; the bit order is fixed once connected.
func (b *periphBus) SetLSBFirst(v bool) error {
	if b.c != nil {
		if v != b.lsbFirst {
			return ErrBitOrder
		}
		return nil
	}
	b.lsbFirst = v
	return nil
}

func (b *periphBus) connect() error {
	if b.c != nil {
		return nil
	}
	mode := spi.Mode0 | spi.NoCS
	if b.lsbFirst {
		mode |= spi.LSBFirst
	}
	c, err := b.port.Connect(b.freq, mode, 8)
	if err != nil {
		return err
	}
	b.c = c
	return nil
}

func (b *periphBus) Write(data []byte) (int, error) {
	if err := b.connect(); err != nil {
		return 0, err
	}
	if err := b.c.Tx(data, nil); err != nil {
		return 0, err
	}
	return len(data), nil
}

// Interface checks.
var (
	_ LSBFirstSetter = (*spiConn)(nil)
	_ LSBFirstSetter = (*periphBus)(nil)
	_ LSBFirstSetter = (*conn.SPI)(nil)
)
