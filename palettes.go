package gcalc

import "image/color"

// Palette is an ordered list of colors that is indexed cyclically.
type Palette []color.RGBA

// DefaultPalette holds the curve colors: alizarin, turquoise, sunflower, pumpkin, nephritis, belize hole and fuchsia.
var DefaultPalette = Palette{
	RGB(231, 76, 60),
	RGB(26, 188, 156),
	RGB(241, 196, 15),
	RGB(211, 84, 0),
	RGB(39, 174, 96),
	RGB(41, 128, 185),
	RGB(255, 0, 255),
}

// At returns the color for index i, wrapping around the palette. Negative indices wrap as well. An empty palette returns Black.
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}
