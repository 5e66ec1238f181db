package colors

import "github.com/chewxy/math32"

// Color is a normalized RGBA color; channels live in [0, 1].
type Color [4]float32

var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// RGBA8 is the 8-bit-per-channel form of Color, laid out the way vertex
// buffers expect it (4 unsigned bytes).
type RGBA8 struct {
	R, G, B, A uint8
}

var (
	Transparent8 = RGBA8{0, 0, 0, 0}
	White8       = RGBA8{0xff, 0xff, 0xff, 0xff}
	Black8       = RGBA8{0, 0, 0, 0xff}
	Red8         = RGBA8{0xff, 0, 0, 0xff}
	Green8       = RGBA8{0, 0xff, 0, 0xff}
	Blue8        = RGBA8{0, 0, 0xff, 0xff}
)

// RGBA8 packs c into 8-bit channels, rounding each channel of c*255 to the
// nearest integer. Channels outside [0, 1] are not clamped; the float-to-uint8
// conversion then follows Go's rules for out-of-range values, so feed
// normalized channels if you care about the result.
func (c Color) RGBA8() RGBA8 {
	return RGBA8{
		R: uint8(math32.Round(c[0] * 255)),
		G: uint8(math32.Round(c[1] * 255)),
		B: uint8(math32.Round(c[2] * 255)),
		A: uint8(math32.Round(c[3] * 255)),
	}
}
