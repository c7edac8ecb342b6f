// Package rgb565 provides the 16-bit RGB565 pixel format for the ST7789 display controller.
//
// The ST7789 expects each pixel as a 16-bit value with 5 bits of red, 6 bits
// of green and 5 bits of blue, transmitted high byte first over SPI.
//
// Bit layout of one pixel:
//
//	Bits:   15 14 13 12 11 | 10  9  8  7  6  5 |  4  3  2  1  0
//	        R  R  R  R  R  |  G  G  G  G  G  G |  B  B  B  B  B
//
// Wire layout of the pixel 0xF800 (pure red):
//
//	Bytes:  0xF8 0x00   (high byte first)
//
// This package provides:
//
// - RGB565: A packed 16-bit color type
// - RGB565Model: A color model for converting standard Go colors to RGB565
// - Image: An image.Image implementation storing pixels in the panel's wire format
// - Encode: The rotate-and-pack transform producing a RAMWR byte stream
//
// Example usage:
//
//	// Create a 240x240 image
//	img := rgb565.NewImage(image.Rect(0, 0, 240, 240))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, rgb565.Pack(0xFF, 0x00, 0x00))
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//	println(uint16(c)) // Output: 63488 (0xF800)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Pack(0, 0, 0xFF)), image.Point{}, draw.Src)
//
//	// Pack for the panel, rotated a quarter turn counter-clockwise
//	stream := rgb565.Encode(img, 1)
package rgb565
