// Package st7789 controls a ST7789 TFT LCD display via SPI.
//
// The ST7789 is a 262K-color single-chip controller for 240x320 RGB panels,
// commonly wired as 240x240 or 240x135 modules.
//
// See the examples for how to use this package.
package st7789

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/oleksolv/st7789u-rpi/rgb565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Rotation is the software rotation of the displayed image, in degrees
// counter-clockwise. Rotation is applied by the pixel encoder before the
// frame is streamed; the panel's memory scan order is never changed.
type Rotation int

// Valid rotations.
const (
	Rotation0   Rotation = 0
	Rotation90  Rotation = 90
	Rotation180 Rotation = 180
	Rotation270 Rotation = 270
)

// Opts is the configuration for the ST7789 display.
type Opts struct {
	// Panel dimensions in pixels, before rotation
	W int // Width (default: 240)
	H int // Height (default: 240)

	// Rotation in degrees: 0, 90, 180 or 270. Quarter turns are only
	// valid on square panels.
	Rotation Rotation

	// Invert enables display color inversion. Most ST7789 modules are
	// wired so that inversion on gives correct colors.
	Invert bool

	// RAM offsets for panels smaller than the controller's addressable
	// 240x320 memory, added to every window coordinate.
	OffsetLeft int
	OffsetTop  int

	// Speed is the SPI clock (default: 4MHz).
	Speed physic.Frequency

	// Mode is the SPI mode. Mode0 (the zero value) suits modules with a
	// wired chip-select; use spi.Mode3 for no-CS wiring variants.
	Mode spi.Mode

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)

	// Optional backlight pin
	Backlight gpio.PinIO // Backlight pin (optional, nil if not used)
}

// DefaultOpts is the configuration of a common 240x240 module such as the
// Pirate Audio boards: rotated a quarter turn, colors inverted, 4MHz clock.
var DefaultOpts = Opts{
	W:        240,
	H:        240,
	Rotation: Rotation90,
	Invert:   true,
	Speed:    4 * physic.MegaHertz,
}

// Dev is the device handle for the ST7789 display.
//
// Dev is not safe for concurrent use: the SPI bus and the D/C line are one
// shared channel, so callers driving the panel from multiple goroutines must
// serialize access themselves.
type Dev struct {
	// Communication
	c         conn.Conn   // SPI connection
	dc        gpio.PinOut // Data/Command pin
	rst       gpio.PinIO  // Reset pin (optional)
	backlight gpio.PinIO  // Backlight pin (optional)

	// Display geometry
	w, h       int // Native panel size, before rotation
	rotation   Rotation
	offsetLeft int
	offsetTop  int

	// Transfer limit per Tx, resolved from the connection
	maxTxSize int

	// Compose buffer for Draw, allocated on first use
	frame *rgb565.Image

	// State
	halted bool
}

// NewSPI creates a new ST7789 device connected via SPI.
//
// The SPI port carries the chip-select: open "SPI0.0" for CE0, "SPI0.1" for
// CE1. The dc (Data/Command) GPIO pin must be provided and configured as an
// output.
//
// opts can be nil to use DefaultOpts (240x240, rotated 90, inverted).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &DefaultOpts
	}

	w, h := opts.W, opts.H
	if w == 0 {
		w = 240
	}
	if h == 0 {
		h = 240
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("st7789: invalid resolution %dx%d", w, h)
	}

	switch opts.Rotation {
	case Rotation0, Rotation90, Rotation180, Rotation270:
	default:
		return nil, fmt.Errorf("st7789: invalid rotation %d", int(opts.Rotation))
	}
	// A non-square panel cannot be quarter-turned without a dimension
	// mismatch between the frame and the panel RAM.
	if w != h && (opts.Rotation == Rotation90 || opts.Rotation == Rotation270) {
		return nil, fmt.Errorf("st7789: invalid rotation %d for %dx%d resolution", int(opts.Rotation), w, h)
	}

	speed := opts.Speed
	if speed == 0 {
		speed = 4 * physic.MegaHertz
	}

	// Establish SPI connection
	c, err := p.Connect(speed, opts.Mode, 8)
	if err != nil {
		return nil, err
	}

	// Get the per-transfer size limit from the connection if it implements
	// conn.Limits, otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Conservative default, matches the Linux spidev buffer.
	}

	// Create device
	d := &Dev{
		c:          c,
		dc:         dc,
		rst:        opts.RST,
		backlight:  opts.Backlight,
		w:          w,
		h:          h,
		rotation:   opts.Rotation,
		offsetLeft: opts.OffsetLeft,
		offsetTop:  opts.OffsetTop,
		maxTxSize:  maxTxSize,
	}

	// Toggle the backlight off and on to avoid a startup flicker showing
	// whatever was left in panel RAM.
	if d.backlight != nil {
		if err := d.backlight.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("st7789: failed to pull backlight low: %w", err)
		}
		time.Sleep(100 * time.Millisecond)
		if err := d.backlight.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("st7789: failed to pull backlight high: %w", err)
		}
	}

	// Hardware reset (if RST pin is provided), then the init sequence
	if err := d.Reset(); err != nil {
		return nil, err
	}
	if err := d.init(opts.Invert); err != nil {
		return nil, err
	}

	return d, nil
}

// init plays the power-on command script to the panel.
func (d *Dev) init(invert bool) error {
	for _, c := range initSequence(invert) {
		if err := d.sendCommand(c.cmd); err != nil {
			return err
		}
		if len(c.data) > 0 {
			if err := d.sendData(c.data); err != nil {
				return err
			}
		}
		if c.delay > 0 {
			time.Sleep(c.delay)
		}
	}
	return nil
}

// Reset pulses the hardware reset line high, low, high, holding each level
// for 500ms. It is a no-op if no reset pin was configured. Reset is safe to
// call at any time; the panel returns to its power-on state, so the init
// sequence must be replayed (via NewSPI) before further drawing.
func (d *Dev) Reset() error {
	if d.rst == nil {
		return nil
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7789: failed to pull RST high: %w", err)
	}
	time.Sleep(500 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("st7789: failed to pull RST low: %w", err)
	}
	time.Sleep(500 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("st7789: failed to pull RST high: %w", err)
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}

// sendCommand sends a single command byte with the D/C line low.
func (d *Dev) sendCommand(cmd byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx([]byte{cmd}, nil)
}

// sendData sends data bytes with the D/C line high. The line is set once;
// the transfer is sliced into chunks no larger than the connection's limit,
// in order, since SPI is a strict byte-ordered channel.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) != 0 {
		var chunk []byte
		if len(data) > d.maxTxSize {
			chunk, data = data[:d.maxTxSize], data[d.maxTxSize:]
		} else {
			chunk, data = data, nil
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return err
		}
	}
	return nil
}

// SetWindow sets the panel's write window to the inclusive rectangle
// (x0,y0)-(x1,y1) in native panel coordinates and opens a RAMWR burst.
// The configured left/top RAM offsets are added to both coordinates of both
// axes. Data sent afterwards fills the window row-major.
//
// A transfer that fails partway leaves the panel's write cursor in an
// indeterminate position; set the window again before retrying.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) error {
	if d.halted {
		return errors.New("st7789: halted")
	}

	x0 += d.offsetLeft
	x1 += d.offsetLeft
	y0 += d.offsetTop
	y1 += d.offsetTop

	if err := d.sendCommand(CASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{byte(x0 >> 8), byte(x0), byte(x1 >> 8), byte(x1)}); err != nil {
		return err
	}
	if err := d.sendCommand(RASET); err != nil {
		return err
	}
	if err := d.sendData([]byte{byte(y0 >> 8), byte(y0), byte(y1 >> 8), byte(y1)}); err != nil {
		return err
	}
	return d.sendCommand(RAMWR)
}

// Display performs a full-frame update: the image is rotated and packed to
// the panel's RGB565 wire format, then streamed into a full-panel window.
// The image bounds must match Bounds() exactly; there is no partial update
// path.
func (d *Dev) Display(img image.Image) error {
	if d.halted {
		return errors.New("st7789: halted")
	}

	b := img.Bounds()
	if bounds := d.Bounds(); b.Dx() != bounds.Dx() || b.Dy() != bounds.Dy() {
		return fmt.Errorf("st7789: image size %dx%d does not match display %dx%d",
			b.Dx(), b.Dy(), bounds.Dx(), bounds.Dy())
	}

	var pix []byte
	// Fast path: a native-format frame at rotation 0 is already the wire format.
	if src, ok := img.(*rgb565.Image); ok && d.rotation == Rotation0 &&
		src.Stride == d.w*2 && len(src.Pix) == d.w*d.h*2 {
		pix = src.Pix
	} else {
		pix = rgb565.Encode(img, int(d.rotation)/90)
	}

	if err := d.SetWindow(0, 0, d.w-1, d.h-1); err != nil {
		return err
	}
	return d.sendData(pix)
}

// Draw draws src onto the display. It implements display.Drawer by
// composing into an internal frame and flushing the whole panel; the
// ST7789's write cursor makes no promise about a previously set window, so
// every Draw is a full-frame update.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7789: halted")
	}

	// Clip to display bounds
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}

	// Lazy-initialize the compose buffer
	if d.frame == nil {
		d.frame = rgb565.NewImage(d.Bounds())
	}
	draw.Draw(d.frame, dst, src, sp, draw.Src)

	return d.Display(d.frame)
}

// Write writes raw pixel data to the display in big-endian RGB565 panel
// scan order. The data must be exactly W*H*2 bytes for the native panel
// size; rotation is not applied.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("st7789: halted")
	}
	if len(pixels) != d.w*d.h*2 {
		return 0, errors.New("st7789: invalid buffer size")
	}
	if err := d.SetWindow(0, 0, d.w-1, d.h-1); err != nil {
		return 0, err
	}
	if err := d.sendData(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// SetBacklight turns the backlight on or off. It is a no-op if no backlight
// pin was configured.
func (d *Dev) SetBacklight(on bool) error {
	if d.backlight == nil {
		return nil
	}
	level := gpio.Low
	if on {
		level = gpio.High
	}
	if err := d.backlight.Out(level); err != nil {
		return fmt.Errorf("st7789: failed to set backlight: %w", err)
	}
	return nil
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	cmd := byte(INVOFF)
	if invert {
		cmd = INVON
	}
	return d.sendCommand(cmd)
}

// Sleep puts the panel in or out of sleep mode. Panel RAM is retained while
// sleeping. The datasheet requires 5ms after sleep-in and 120ms between
// sleep-out and the next sleep-in.
func (d *Dev) Sleep(enter bool) error {
	if d.halted {
		return errors.New("st7789: halted")
	}
	if enter {
		if err := d.sendCommand(SLPIN); err != nil {
			return err
		}
		time.Sleep(5 * time.Millisecond)
		return nil
	}
	if err := d.sendCommand(SLPOUT); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.RGB565Model
}

// Bounds returns the drawable area of the display using the rotated
// dimensions: at rotation 90 or 270 the configured width and height are
// swapped, so callers can size their frame without tracking rotation.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.Size()
	return image.Rect(0, 0, w, h)
}

// Size returns the effective width and height after rotation.
func (d *Dev) Size() (w, h int) {
	if d.rotation == Rotation90 || d.rotation == Rotation270 {
		return d.h, d.w
	}
	return d.w, d.h
}

// Halt blanks the display and turns the backlight off.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if d.backlight != nil {
		if err := d.backlight.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7789: failed to set backlight: %w", err)
		}
	}
	return d.sendCommand(DISPOFF)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7789.Dev{%dx%d}", d.w, d.h)
}

var _ display.Drawer = &Dev{}
