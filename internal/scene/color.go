package scene

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// ColorFromFloats converts components in [0, 1] to a Color.
// Out of range components are clamped.
func ColorFromFloats(c [4]float32) Color {
	f := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		}
		return uint8(v * 255)
	}
	return Color{R: f(c[0]), G: f(c[1]), B: f(c[2]), A: f(c[3])}
}

// Packed returns the color as 0xAARRGGBB.
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Transparency is the part transparency matching the color's alpha.
func (c Color) Transparency() float32 {
	return 1 - float32(c.A)/255
}
