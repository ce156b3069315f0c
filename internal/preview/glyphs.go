package preview

import (
	"image"
	"image/color"
)

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = glyphWidth + 1
)

// glyphs is a 3x5 pixel font covering what a ratio label needs.
var glyphs = map[rune][glyphHeight]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'.': {"000", "000", "000", "000", "010"},
	':': {"000", "010", "000", "010", "000"},
}

// renderText draws text on a transparent image one pixel per glyph dot.
// Characters without a glyph leave a blank cell.
func renderText(text string, fg color.NRGBA) *image.NRGBA {
	runes := []rune(text)
	width := len(runes)*glyphAdvance - 1
	if width < 1 {
		width = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, glyphHeight))

	cx := 0
	for _, ch := range runes {
		glyph, ok := glyphs[ch]
		if ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						img.SetNRGBA(cx+col, row, fg)
					}
				}
			}
		}
		cx += glyphAdvance
	}
	return img
}
