// Package palette maps escape counts onto colors.
package palette

import "image/color"

// Color is an opaque 8-bit RGB color.
type Color = color.RGBA

// Named colors used by the Banded palette.
var (
	DarkGray  = color.RGBA{R: 169, G: 169, B: 169, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGray = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	LightBlue = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	Blue      = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Navy      = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	Orange    = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Brown     = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

type band struct {
	// fraction of the limit a count must be under to take this band's color.
	fraction float64
	color    color.RGBA
}

// bands are checked in order and the last one satisfied wins.
var bands = []band{
	{fraction: 0.8, color: Gray},
	{fraction: 0.6, color: LightGray},
	{fraction: 0.4, color: LightBlue},
	{fraction: 0.2, color: Blue},
	{fraction: 0.1, color: Navy},
	{fraction: 0.06, color: Orange},
	{fraction: 0.04, color: Brown},
	{fraction: 0.02, color: Red},
}

// ColorFor returns the color of a pixel whose point escaped after tries
// iterations out of limit.
func ColorFor(tries, limit uint, choice Choice, seeds Seeds) color.RGBA {
	switch choice {
	case Banded:
		return banded(tries, limit)
	case BlackWhite:
		return blackWhite(tries, limit)
	case Christmas:
		return rgb(int(tries%32)*8, int(tries%10)*28, 0)
	case Aquamarine:
		return rgb(0, int(tries%18)*15, int(tries%32)*8)
	case Random:
		seeds = seeds.nonZero()
		return rgb(cycle(tries, seeds.R), cycle(tries, seeds.G), cycle(tries, seeds.B))
	}
	return Black
}

func banded(tries, limit uint) color.RGBA {
	result := DarkGray
	for _, b := range bands {
		if b.fraction*float64(limit) > float64(tries) {
			result = b.color
		}
	}
	return result
}

func blackWhite(tries, limit uint) color.RGBA {
	if tries == limit || tries%2 == 1 {
		return Black
	}
	return White
}

// cycle spreads tries mod n over the channel range.
func cycle(tries uint, n int) int {
	return int(tries%uint(n)) * (256 / n)
}

func rgb(r, g, b int) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// channel clamps v into [0, 255].
func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
