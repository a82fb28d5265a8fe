package memlcd

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BeatGlow/memlcd/draw"
	"github.com/BeatGlow/memlcd/pixel"
)

// Display is a memory LCD panel together with its framebuffer.
//
// A Display is not safe for concurrent use. The Conn is shared, not owned: Close
// releases the framebuffer but leaves the transport (and the panel contents) alone.
type Display struct {
	c        Conn
	width    int
	height   int
	rotation Rotation
	order    BitOrder
	vcom     byte
	buf      *pixel.MonoImage
	tx       []byte
}

// New sets up the transport, allocates a framebuffer and clears both the buffer and the panel.
func New(c Conn, config *Config) (*Display, error) {
	if config == nil {
		config = &DefaultConfig
	}
	config = &Config{
		Width:    config.Width,
		Height:   config.Height,
		Rotation: config.Rotation,
		BitOrder: config.BitOrder,
	}
	if config.Width == 0 {
		config.Width = DefaultWidth
	}
	if config.Height == 0 {
		config.Height = DefaultHeight
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	if err := setBitOrder(c, config.BitOrder); err != nil {
		return nil, err
	}
	if err := c.Select(false); err != nil {
		return nil, fmt.Errorf("memlcd: deselect %s: %w", c, err)
	}

	d := &Display{
		c:        c,
		width:    config.Width,
		height:   config.Height,
		rotation: config.Rotation,
		order:    config.BitOrder,
		vcom:     bitVCOM,
		buf:      pixel.NewMonoImage(config.Width, config.Height),
	}
	if err := d.Clear(); err != nil {
		d.buf = nil
		return nil, fmt.Errorf("memlcd: initial clear: %w", err)
	}
	return d, nil
}

func setBitOrder(c Conn, order BitOrder) error {
	s, ok := c.(LSBFirstSetter)
	if !ok {
		if order == LSBFirst {
			return ErrBitOrder
		}
		return nil
	}
	if err := s.SetLSBFirst(order == LSBFirst); err != nil {
		return fmt.Errorf("memlcd: %s: %w", order, err)
	}
	return nil
}

// Close releases the framebuffer. Further drawing is ignored and transactions fail with ErrClosed.
func (d *Display) Close() error {
	if d.buf == nil {
		return ErrClosed
	}
	d.buf = nil
	d.tx = nil
	return nil
}

func (d *Display) String() string {
	return fmt.Sprintf("Sharp memory LCD %dx%d", d.width, d.height)
}

// Size returns the physical panel dimensions, independent of rotation.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Rotation returns the current rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// SetRotation changes the logical coordinate system; the framebuffer is left as is.
func (d *Display) SetRotation(rotation Rotation) error {
	if rotation > Rotate270 {
		return ErrRotation
	}
	d.rotation = rotation
	return nil
}

// Polarity returns the VCOM value the next transaction will carry (0 or the VCOM bit).
func (d *Display) Polarity() byte {
	return d.vcom
}

// Snapshot returns a copy of the framebuffer in panel (unrotated) coordinates.
func (d *Display) Snapshot() *pixel.MonoImage {
	if d.buf == nil {
		return nil
	}
	dup := *d.buf
	dup.Pix = append([]byte(nil), d.buf.Pix...)
	return &dup
}

// Bounds is the logical drawing area; width and height are swapped for 90° and 270°.
func (d *Display) Bounds() image.Rectangle {
	return d.rotation.bounds(d.width, d.height)
}

// ColorModel used by the display.
func (d *Display) ColorModel() color.Model {
	return pixel.MonoModel
}

// At returns the color of the pixel at (x, y).
func (d *Display) At(x, y int) color.Color {
	return d.Pixel(x, y)
}

// Set the pixel color at (x, y).
func (d *Display) Set(x, y int, c color.Color) {
	d.SetPixel(x, y, pixel.ToMono(c))
}

// SetPixel sets the pixel at logical (x, y). Points outside Bounds are dropped.
func (d *Display) SetPixel(x, y int, c pixel.Mono) {
	if d.buf == nil || !(image.Point{X: x, Y: y}).In(d.Bounds()) {
		return
	}
	x, y = transform(x, y, d.rotation, d.width, d.height)
	d.buf.SetMono(x, y, c)
}

// Pixel returns the pixel at logical (x, y), or Black outside Bounds.
func (d *Display) Pixel(x, y int) pixel.Mono {
	if d.buf == nil || !(image.Point{X: x, Y: y}).In(d.Bounds()) {
		return Black
	}
	x, y = transform(x, y, d.rotation, d.width, d.height)
	return d.buf.MonoAt(x, y)
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both inclusive.
func (d *Display) DrawLine(x0, y0, x1, y1 int, c pixel.Mono) {
	draw.Line(d, image.Pt(x0, y0), image.Pt(x1, y1), c)
}

// DrawFastVLine draws h pixels down from (x, y).
func (d *Display) DrawFastVLine(x, y, h int, c pixel.Mono) {
	draw.VerticalLine(d, x, y, h, c)
}

// DrawFastHLine draws w pixels right from (x, y).
func (d *Display) DrawFastHLine(x, y, w int, c pixel.Mono) {
	draw.HorizontalLine(d, x, y, w, c)
}

// DrawRect draws the outline of the w x h rectangle at (x, y).
func (d *Display) DrawRect(x, y, w, h int, c pixel.Mono) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Rectangle(d, image.Rect(x, y, x+w, y+h), c)
}

// FillRect fills the w x h rectangle at (x, y).
func (d *Display) FillRect(x, y, w, h int, c pixel.Mono) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Box(d, image.Rect(x, y, x+w, y+h), c)
}

// FillScreen paints the whole display.
func (d *Display) FillScreen(c pixel.Mono) {
	draw.Fill(d, c)
}

// DrawImage copies src onto the display, aligning r.Min with sp in src.
// Colors are reduced with MonoModel.
func (d *Display) DrawImage(r image.Rectangle, src image.Image, sp image.Point) {
	draw.Draw(d, r, src, sp)
}

// Interface checks.
var (
	_ draw.Image = (*Display)(nil)
)
