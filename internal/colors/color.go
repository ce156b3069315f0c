package colors

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is the space the accessible color search works in: hue and saturation
// carry the design intent of a color, lightness is the one dimension adjusted.
type HSLColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// Black and White are the extremes of the contrast scale.
var (
	Black = RGBColor{R: 0, G: 0, B: 0}
	White = RGBColor{R: 255, G: 255, B: 255}
)

// String returns the color in hex notation.
func (c RGBColor) String() string {
	return ToHex(c)
}

// ToHex formats a color as "#rrggbb" with lowercase, zero-padded digits.
func ToHex(c RGBColor) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Components are rounded to one decimal place. A hue that rounds up to 360
// wraps to 0.
func RGBToHSL(c RGBColor) HSLColor {
	rf := float64(c.R) / 255.0
	gf := float64(c.G) / 255.0
	bf := float64(c.B) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	if max == min {
		return HSLColor{H: 0, S: 0, L: round1(l * 100)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/d
	default:
		h = 4.0 + (rf-gf)/d
	}
	h /= 6

	hue := round1(h * 360)
	if hue >= 360 {
		hue -= 360
	}

	return HSLColor{
		H: hue,
		S: round1(s * 100),
		L: round1(l * 100),
	}
}

// HSLToRGB converts an HSL color back to 8-bit RGB.
func HSLToRGB(c HSLColor) RGBColor {
	return hslToRGB(c.H, c.S, c.L)
}

// WithLightness returns the RGB color sharing hue and saturation with c at the
// given lightness (0-100). Fractional lightness is honored.
func WithLightness(c HSLColor, lightness float64) RGBColor {
	return hslToRGB(c.H, c.S, lightness)
}

// hslToRGB takes h in degrees and s, l in percent.
func hslToRGB(h, s, l float64) RGBColor {
	h /= 360
	s /= 100
	l /= 100

	if s == 0 {
		v := toChannel(l)
		return RGBColor{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGBColor{
		R: toChannel(hueToChannel(p, q, h+1.0/3)),
		G: toChannel(hueToChannel(p, q, h)),
		B: toChannel(hueToChannel(p, q, h-1.0/3)),
	}
}

// hueToChannel evaluates one channel of the HSL color wheel at phase t.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) uint8 {
	v = math.Round(v * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Distance returns the CIEDE2000 color difference between two colors.
//
// The result uses the conventional ΔE00 scale: 0 means identical, black to
// white is 100 and values below roughly 2.3 are a just-noticeable difference.
// go-colorful works on L*a*b* scaled to [0,1], so its distance is scaled up.
// Suggestions carry it so callers can judge how far a fix strays from the
// original design.
func Distance(a, b RGBColor) float64 {
	d := toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
	return math.Round(d*100) / 100
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
