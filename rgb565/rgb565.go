// Package rgb565 provides the 16-bit RGB565 pixel format used by the ST7789 display.
//
// The ST7789 consumes pixels as 16-bit values with 5 bits red, 6 bits green
// and 5 bits blue, transmitted high byte first. This package provides the
// RGB565 color type, an image.Image implementation storing pixels in the
// panel's wire format, and the Encode transform that rotates and packs an
// arbitrary image into that format.
package rgb565

import (
	"encoding/binary"
	"image"
	"image/color"
)

// RGB565 represents a packed 16-bit color: red in bits 15-11, green in bits
// 10-5, blue in bits 4-0.
type RGB565 uint16

// Pack packs 8-bit RGB channels into an RGB565 value, keeping the top 5, 6
// and 5 bits of each channel respectively.
func Pack(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b&0xF8)>>3)
}

// RGBA converts the RGB565 color to standard RGBA.
// Channels are expanded by bit replication, so full-scale values map to
// full-scale RGBA (0x1F red becomes 0xFFFF, not 0xF800).
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c >> 11 & 0x1F)
	g6 := uint32(c >> 5 & 0x3F)
	b5 := uint32(c & 0x1F)
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 image. Pix holds the pixels as big-endian
// byte pairs in row-major order, which is exactly the byte stream the
// panel's RAMWR command expects.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, big-endian)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new RGB565 image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	i := p.PixOffset(x, y)
	return RGB565(binary.BigEndian.Uint16(p.Pix[i:]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	binary.BigEndian.PutUint16(p.Pix[i:], uint16(RGB565Model.Convert(c).(RGB565)))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	binary.BigEndian.PutUint16(p.Pix[i:], uint16(c))
}

// PixOffset returns the index into Pix of the first byte of the pixel at
// (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}

// Encode converts img to the panel's wire format: the image is rotated
// counter-clockwise by turns quarter turns, then each pixel is packed to
// RGB565 and serialized as big-endian byte pairs, row-major. For odd turn
// counts the output dimensions are the source's swapped.
func Encode(img image.Image, turns int) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	turns = ((turns % 4) + 4) % 4
	ow, oh := w, h
	if turns%2 == 1 {
		ow, oh = h, w
	}

	// Direct pixel access for the common source type. Pixels are assumed
	// opaque, so premultiplication does not matter.
	rgba, _ := img.(*image.RGBA)

	out := make([]byte, ow*oh*2)
	i := 0
	for y := 0; y < oh; y++ {
		for x := 0; x < ow; x++ {
			// Source coordinates of the output pixel under a
			// counter-clockwise rotation.
			var sx, sy int
			switch turns {
			case 0:
				sx, sy = x, y
			case 1:
				sx, sy = w-1-y, x
			case 2:
				sx, sy = w-1-x, h-1-y
			case 3:
				sx, sy = y, h-1-x
			}

			var c RGB565
			if rgba != nil {
				o := rgba.PixOffset(bounds.Min.X+sx, bounds.Min.Y+sy)
				c = Pack(rgba.Pix[o], rgba.Pix[o+1], rgba.Pix[o+2])
			} else {
				r, g, b, _ := img.At(bounds.Min.X+sx, bounds.Min.Y+sy).RGBA()
				c = Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			}
			binary.BigEndian.PutUint16(out[i:], uint16(c))
			i += 2
		}
	}
	return out
}
