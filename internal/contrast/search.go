package contrast

import (
	"math"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
)

const (
	// maxSearchIterations bounds the lightness search regardless of input.
	maxSearchIterations = 20
	// minSearchInterval stops the search once the lightness window is this narrow.
	minSearchInterval = 1.0
)

// lightnessWindow is the [low, high] lightness interval still under search.
type lightnessWindow struct {
	low, high float64
}

// lightnessSearch holds the fixed inputs of one FindAccessibleColor call.
type lightnessSearch struct {
	subject       colors.HSLColor
	fixed         colors.RGBColor
	fixedLum      float64
	target        float64
	origLightness float64
}

// FindAccessibleColor adjusts one color of a pair until it reaches targetRatio
// against the other.
//
// When adjustForeground is true the foreground is adjusted and the background
// stays fixed; otherwise the roles swap. Only lightness changes: the adjusted
// color keeps the hue and saturation of the original. Among the candidates
// found the one closest in lightness to the original is returned.
//
// The search is a bounded binary search over lightness 0-100 and stops after
// 20 iterations or when the window narrows to one unit, so it may miss the
// exact closest lightness near the threshold. The second return value is
// false when no lightness reaches the target, which is the expected outcome
// for targets above 21 or colors whose hue cannot get light or dark enough.
func FindAccessibleColor(fg, bg colors.RGBColor, targetRatio float64, adjustForeground bool) (colors.RGBColor, bool) {
	subject, fixed := bg, fg
	if adjustForeground {
		subject, fixed = fg, bg
	}

	hsl := colors.RGBToHSL(subject)
	s := &lightnessSearch{
		subject:       hsl,
		fixed:         fixed,
		fixedLum:      RelativeLuminance(fixed),
		target:        targetRatio,
		origLightness: hsl.L,
	}

	w := lightnessWindow{low: 0, high: 100}
	for i := 0; i < maxSearchIterations && w.high-w.low > minSearchInterval; i++ {
		mid := (w.low + w.high) / 2
		candidate := colors.WithLightness(s.subject, mid)

		if ContrastRatio(candidate, s.fixed) >= s.target {
			w = s.converge(w, mid)
		} else {
			w = s.escape(w, mid, candidate)
		}
	}

	return s.pick(w)
}

// converge narrows the window toward the original lightness after mid met the
// target, so the result stays as close to the original color as possible.
func (s *lightnessSearch) converge(w lightnessWindow, mid float64) lightnessWindow {
	if mid > s.origLightness {
		w.high = mid
	} else {
		w.low = mid
	}
	return w
}

// escape moves the window away from the fixed color's luminance after mid
// missed the target: lighter when the candidate is already the lighter color,
// darker otherwise.
func (s *lightnessSearch) escape(w lightnessWindow, mid float64, candidate colors.RGBColor) lightnessWindow {
	if RelativeLuminance(candidate) > s.fixedLum {
		w.low = mid
	} else {
		w.high = mid
	}
	return w
}

// pick evaluates both window boundaries and returns the passing one closest to
// the original lightness.
func (s *lightnessSearch) pick(w lightnessWindow) (colors.RGBColor, bool) {
	low := colors.WithLightness(s.subject, w.low)
	high := colors.WithLightness(s.subject, w.high)
	lowOK := ContrastRatio(low, s.fixed) >= s.target
	highOK := ContrastRatio(high, s.fixed) >= s.target

	switch {
	case lowOK && highOK:
		if math.Abs(w.low-s.origLightness) <= math.Abs(w.high-s.origLightness) {
			return low, true
		}
		return high, true
	case lowOK:
		return low, true
	case highOK:
		return high, true
	default:
		return colors.RGBColor{}, false
	}
}
