package st7789

import "time"

// ST7789 command opcodes. Only the subset needed to drive the panel is
// listed; names follow the Sitronix ST7789VW datasheet.
const (
	SWRESET = 0x01 // Software Reset
	SLPIN   = 0x10 // Sleep In
	SLPOUT  = 0x11 // Sleep Out
	INVOFF  = 0x20 // Display Inversion Off
	INVON   = 0x21 // Display Inversion On
	DISPOFF = 0x28 // Display Off
	DISPON  = 0x29 // Display On
	CASET   = 0x2A // Column Address Set
	RASET   = 0x2B // Row Address Set
	RAMWR   = 0x2C // Memory Write

	MADCTL = 0x36 // Memory Data Access Control
	COLMOD = 0x3A // Interface Pixel Format

	PORCTRL  = 0xB2 // Porch Setting
	GCTRL    = 0xB7 // Gate Control
	VCOMS    = 0xBB // VCOM Setting
	LCMCTRL  = 0xC0 // LCM Control
	VDVVRHEN = 0xC2 // VDV and VRH Command Enable
	VRHS     = 0xC3 // VRH Set
	VDVS     = 0xC4 // VDV Set
	FRCTRL2  = 0xC6 // Frame Rate Control in Normal Mode
	PWCTRL1  = 0xD0 // Power Control 1

	PVGAMCTRL = 0xE0 // Positive Voltage Gamma Control
	NVGAMCTRL = 0xE1 // Negative Voltage Gamma Control
)

// MADCTL bit fields.
const (
	MADCTL_MY  = 0x80 // Page address order (bottom to top)
	MADCTL_MX  = 0x40 // Column address order (right to left)
	MADCTL_MV  = 0x20 // Page/column order (swapped)
	MADCTL_ML  = 0x10 // Line address order (bottom to top)
	MADCTL_BGR = 0x08 // BGR subpixel order
	MADCTL_MH  = 0x04 // Display data latch order (right to left)
)

// initCmd is one step of the power-on sequence: a command byte, its
// parameter bytes, and the settle time the panel needs afterwards.
type initCmd struct {
	cmd   byte
	data  []byte
	delay time.Duration
}

// initSequence returns the vendor-calibrated power-on script. The values
// are panel calibration data and must be reproduced byte for byte; the
// inversion flag selects the only variable step. The orientation byte is
// fixed (MX|MV|ML): rotation is applied in software by the pixel encoder,
// not through MADCTL.
func initSequence(invert bool) []initCmd {
	seq := []initCmd{
		{SWRESET, nil, 150 * time.Millisecond},
		{MADCTL, []byte{MADCTL_MX | MADCTL_MV | MADCTL_ML}, 0},
		{PORCTRL, []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}, 0},
		{COLMOD, []byte{0x05}, 0}, // 16 bits per pixel
		{GCTRL, []byte{0x14}, 0},
		{VCOMS, []byte{0x37}, 0},
		{LCMCTRL, []byte{0x2C}, 0},
		{VDVVRHEN, []byte{0x01}, 0},
		{VRHS, []byte{0x12}, 0},
		{VDVS, []byte{0x20}, 0},
		{PWCTRL1, []byte{0xA4, 0xA1}, 0},
		{FRCTRL2, []byte{0x0F}, 0}, // 60Hz
		{PVGAMCTRL, []byte{0xD0, 0x04, 0x0D, 0x11, 0x13, 0x2B, 0x3F, 0x54, 0x4C, 0x18, 0x0D, 0x0B, 0x1F, 0x23}, 0},
		{NVGAMCTRL, []byte{0xD0, 0x04, 0x0C, 0x11, 0x13, 0x2C, 0x3F, 0x44, 0x51, 0x2F, 0x1F, 0x1F, 0x20, 0x23}, 0},
	}

	inversion := byte(INVOFF)
	if invert {
		inversion = INVON
	}

	return append(seq,
		initCmd{inversion, nil, 0},
		initCmd{SLPOUT, nil, 0},
		initCmd{DISPON, nil, 100 * time.Millisecond},
	)
}
