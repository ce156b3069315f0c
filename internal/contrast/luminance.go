package contrast

import (
	"math"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
)

// WCAG 2.1 relative luminance coefficients.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722

	// Channels at or below this value are on the linear segment of the sRGB curve.
	linearThreshold = 0.03928
)

// MaxRatio is the contrast between black and white, the largest achievable.
const MaxRatio = 21.0

// RelativeLuminance returns the WCAG 2.1 relative luminance of c, in [0, 1].
func RelativeLuminance(c colors.RGBColor) float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return redWeight*r + greenWeight*g + blueWeight*b
}

func linearize(v float64) float64 {
	if v <= linearThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors.
//
// The result ranges from 1 (identical luminance) to 21 (black on white) and
// does not depend on argument order.
func ContrastRatio(a, b colors.RGBColor) float64 {
	return ratioFromLuminance(RelativeLuminance(a), RelativeLuminance(b))
}

func ratioFromLuminance(l1, l2 float64) float64 {
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// roundRatio rounds a ratio to two decimal places for display.
func roundRatio(r float64) float64 {
	return math.Round(r*100) / 100
}
