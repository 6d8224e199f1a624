package gcalc

import (
	"encoding/hex"
	"fmt"
	"image/color"
)

// RGB returns a color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 0xff}
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00. Alpha is not supported.
func Hex(s string) color.RGBA {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range s {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		}
	}
	if len(s) == 3 {
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}
	} else if len(s) == 6 {
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}
	}
	return Black
}

// ToCSSColor formats a color as #rrggbb, or rgba() when it is translucent.
func ToCSSColor(c color.RGBA) string {
	if c.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{c.R, c.G, c.B})
		return string(buf)
	} else if c.A == 0 {
		return "rgba(0,0,0,0)"
	}
	// color.RGBA is alpha premultiplied
	a := float64(c.A) / 255.0
	r := uint8(float64(c.R)/a + 0.5)
	g := uint8(float64(c.G)/a + 0.5)
	b := uint8(float64(c.B)/a + 0.5)
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", r, g, b, num(Round(a, 5)))
}

var Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00} // rgba(0, 0, 0, 0)

var (
	Black    = color.RGBA{0x00, 0x00, 0x00, 0xff} // rgb(0, 0, 0)
	Blue     = color.RGBA{0x00, 0x00, 0xff, 0xff} // rgb(0, 0, 255)
	Charcoal = color.RGBA{0x30, 0x30, 0x30, 0xff} // rgb(48, 48, 48)
	Magenta  = color.RGBA{0xff, 0x00, 0xff, 0xff} // rgb(255, 0, 255)
	Red      = color.RGBA{0xff, 0x00, 0x00, 0xff} // rgb(255, 0, 0)
	White    = color.RGBA{0xff, 0xff, 0xff, 0xff} // rgb(255, 255, 255)
)
