package math2d

// Color is a straight-alpha RGBA color with components in [0, 1].
// Grounded on original_source/crates/engine_render/src/day_night.rs, extended
// with alpha for sprite tinting.
type Color struct {
	R, G, B, A float64
}

var White = Color{1, 1, 1, 1}

// ColorFromHex builds an opaque color from a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64((hex>>16)&0xFF) / 255,
		G: float64((hex>>8)&0xFF) / 255,
		B: float64(hex&0xFF) / 255,
		A: 1,
	}
}

// Lerp linearly interpolates two colors; t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = Clamp(t, 0, 1)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Bytes packs the color into non-premultiplied RGBA8 order.
func (c Color) Bytes() [4]byte {
	clamp8 := func(v float64) byte {
		v = Clamp(v, 0, 1)
		return byte(v*255 + 0.5)
	}
	return [4]byte{clamp8(c.R), clamp8(c.G), clamp8(c.B), clamp8(c.A)}
}
