// Package st7789 controls a ST7789 TFT LCD display via SPI.
//
// The ST7789 is a single-chip TFT controller for panels up to 240×320 pixels
// in 16-bit RGB565 color. This driver implements the display.Drawer interface
// from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color (65536 colors)
// - 240×320 addressable RAM, commonly wired as 240×240, 240×135 or 320×240 panels
// - Software rotation in quarter turns (0, 90, 180, 270 degrees)
// - Color inversion (most IPS modules expect inversion on)
// - Sleep mode with RAM retention
// - Optional backlight and hardware reset control
//
// # Hardware Connection
//
// Connect the ST7789 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (CE0 or CE1)
//	BL          → Optional: GPIO for backlight control
//	RES         → Optional: GPIO for hardware reset
//
// Some modules have no CS pin and latch data on the falling clock edge; use
// spi.Mode3 for those.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/oleksolv/st7789u-rpi"
//		"github.com/oleksolv/st7789u-rpi/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus; "SPI0.1" selects CE1
//		spiBus, _ := spireg.Open("")
//
//		// Get Data/Command GPIO pin
//		dcPin := gpioreg.ByName("GPIO9")
//
//		// Create device
//		dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//			W:        240,
//			H:        240,
//			Rotation: st7789.Rotation90,
//			Invert:   true,
//		})
//		defer dev.Halt()
//
//		// Create an image in the panel's native pixel format
//		img := rgb565.NewImage(dev.Bounds())
//
//		// Draw a gradient (from red to blue)
//		for y := 0; y < 240; y++ {
//			for x := 0; x < 240; x++ {
//				img.SetRGB565(x, y, rgb565.Pack(uint8(x), 0, uint8(255-x)))
//			}
//		}
//
//		// Display the image
//		dev.Display(img)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RES) pin connected to a GPIO, you can provide
// it in the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO27")
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		W:   240,
//		H:   240,
//		RST: rstPin, // Optional reset pin
//	})
//
// The driver performs a hardware reset sequence (pull RST high, low, then
// high again, holding each level for 500ms) before sending the init commands.
// If RST is nil or not provided, the driver skips the hardware reset and
// relies on the software reset command alone.
//
// # Backlight Control (Optional)
//
// Most modules route the backlight to a transistor that can be driven from a
// GPIO. Provide the pin in Opts and the driver will switch the backlight off
// and on during initialization, hiding the random RAM contents a panel shows
// at power-up:
//
//	blPin := gpioreg.ByName("GPIO13")
//
//	dev, _ := st7789.NewSPI(spiBus, dcPin, &st7789.Opts{
//		Backlight: blPin,
//	})
//
//	// Turn the backlight off and back on
//	dev.SetBacklight(false)
//	dev.SetBacklight(true)
//
// Halt turns the backlight off. If no backlight pin is provided, SetBacklight
// is a no-op.
//
// # Drawing Modes
//
// The driver offers three paths to the panel:
//
// ## Display
//
// Display takes any image.Image whose size matches Bounds, rotates and packs
// it to the wire format, and streams the whole frame:
//
//	dev.Display(myImage)
//
// Every update transfers the full frame. The ST7789's write cursor is not
// relied upon between updates, so updates are self-contained.
//
// ## Draw
//
// Draw implements display.Drawer by composing the source over an internal
// frame and flushing the whole panel. Use it with code written against
// periph.io display interfaces:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// ## Direct Write
//
// Write accepts raw big-endian RGB565 pixel data in native panel scan order.
// Use this for maximum performance when the caller already has the wire
// format; no rotation or conversion is applied:
//
//	pixels := make([]byte, 240*240*2) // 115200 bytes for 240×240
//	// ... fill pixels ...
//	dev.Write(pixels)
//
// # RGB565 Colors
//
// Pixels are packed 5-6-5: red in bits 15-11, green in bits 10-5, blue in
// bits 4-0. Use the rgb565 package to build colors and frames:
//
//	red := rgb565.Pack(255, 0, 0)   // 0xF800
//	green := rgb565.Pack(0, 255, 0) // 0x07E0
//	blue := rgb565.Pack(0, 0, 255)  // 0x001F
//
// Standard Go colors are automatically converted when drawing onto an
// rgb565.Image or through Draw.
//
// # Rotation
//
// Rotation is performed in software while packing the frame; the panel's
// memory scan order is never reconfigured. Quarter turns (90 and 270) are
// only valid on square panels, since the rotated frame must still match the
// panel RAM dimensions. Bounds and Size report the rotated dimensions, so at
// Rotation90 a 240×135 configuration is rejected while a square panel simply
// swaps its axes.
//
// # Panel RAM Offsets
//
// Panels smaller than the controller's 240×320 RAM are wired to a window of
// it. Configure the window position with OffsetLeft and OffsetTop; the
// offsets are added to every window coordinate. For example a common 1.14"
// 240×135 module:
//
//	Opts{W: 240, H: 135, OffsetLeft: 40, OffsetTop: 53}
//
// Consult your module's documentation for its offsets; they differ between
// manufacturers and sometimes between rotations of the same module.
//
// # Performance
//
// A full frame on a 240×240 panel is 115200 bytes. Transfer time is bounded
// by the SPI clock:
//
// - 4MHz (default): ~230ms per frame
// - 16MHz: ~58ms per frame
// - 62.5MHz: ~15ms per frame
//
// Most modules tolerate clocks well above the default; raise Opts.Speed as
// far as your wiring allows. Transfers are sliced into chunks no larger than
// the SPI driver's limit (4096 bytes on Linux spidev by default).
//
// # Concurrency
//
// The driver is synchronous and performs blocking I/O; it does not lock
// internally. A Dev instance owns its SPI connection and GPIO lines
// exclusively, and callers driving the panel from multiple goroutines must
// serialize access externally (for example with a single writer mutex).
//
// # Display Resolution
//
// This driver supports configurable resolutions. Common options:
//
//	Opts{W: 240, H: 240} // 1.3" and 1.54" square modules
//	Opts{W: 240, H: 135} // 1.14" wide modules
//	Opts{W: 320, H: 240} // 2.0" and 2.4" landscape modules
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.newhavendisplay.com/appnotes/datasheets/LCDs/ST7789V.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package st7789
