package screen

// Pixel packing for the RGB565 framebuffer. The round trip loses the low
// bits of each channel; full and empty channels survive exactly, which the
// renderer relies on for pure black and white.

// rgb565 packs 8-bit channels into the 5-6-5 layout, red in the high bits.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// rgb888From565 expands a packed pixel back to 8-bit channels, scaling so a
// full channel maps to 0xFF rather than a plain shift's 0xF8.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11) * 255 / 31)
	g = uint8((p >> 5 & 0x3F) * 255 / 63)
	b = uint8((p & 0x1F) * 255 / 31)
	return r, g, b
}
