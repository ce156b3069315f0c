package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
)

func TestFindAccessibleColor(t *testing.T) {
	tests := []struct {
		name             string
		fg, bg           string
		target           float64
		adjustForeground bool
		want             colors.RGBColor
	}{
		{"periwinkle text darkened on white", "#7c8aff", "#ffffff", 4.5, true, colors.RGBColor{R: 80, G: 98, B: 255}},
		{"white background darkened behind periwinkle", "#7c8aff", "#ffffff", 4.5, false, colors.RGBColor{R: 44, G: 44, B: 44}},
		{"gray text darkened on white", "#949494", "#ffffff", 4.5, true, colors.RGBColor{R: 118, G: 118, B: 118}},
		{"red text darkened on white", "#ff0000", "#ffffff", 4.5, true, colors.RGBColor{R: 235}},
		{"yellow text darkened on white", "#ffcc00", "#ffffff", 4.5, true, colors.RGBColor{R: 143, G: 115}},
		{"gray text lightened on dark gray", "#555555", "#222222", 4.5, true, colors.RGBColor{R: 137, G: 137, B: 137}},
		{"periwinkle text for AAA", "#7c8aff", "#ffffff", 7, true, colors.RGBColor{R: 28, G: 52, B: 255}},
		{"already passing stays close", "#777777", "#ffffff", 3, true, colors.RGBColor{R: 120, G: 120, B: 120}},
		{"black on white at maximum", "#000000", "#ffffff", 21, true, colors.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fg := colors.MustParseColor(tt.fg)
			bg := colors.MustParseColor(tt.bg)

			got, ok := FindAccessibleColor(fg, bg, tt.target, tt.adjustForeground)
			require.True(t, ok, "expected an accessible color")
			assert.Equal(t, tt.want, got)

			fixed := bg
			if !tt.adjustForeground {
				fixed = fg
			}
			assert.GreaterOrEqual(t, ContrastRatio(got, fixed), tt.target)
		})
	}
}

func TestFindAccessibleColor_PreservesHueAndSaturation(t *testing.T) {
	fg := colors.MustParseColor("#7c8aff")
	orig := colors.RGBToHSL(fg)

	got, ok := FindAccessibleColor(fg, colors.White, 4.5, true)
	require.True(t, ok)

	adjusted := colors.RGBToHSL(got)
	assert.InDelta(t, orig.H, adjusted.H, 1.0)
	assert.InDelta(t, orig.S, adjusted.S, 1.0)
	assert.Less(t, adjusted.L, orig.L)
}

func TestFindAccessibleColor_NotFound(t *testing.T) {
	tests := []struct {
		name             string
		fg, bg           colors.RGBColor
		target           float64
		adjustForeground bool
	}{
		{"target above maximum", colors.Black, colors.White, 22, true},
		{"target above maximum adjusting background", colors.Black, colors.White, 22, false},
		{"mid gray cannot reach 21", colors.RGBColor{R: 128, G: 128, B: 128}, colors.RGBColor{R: 128, G: 128, B: 128}, 21, true},
		{"periwinkle background cannot reach AAA", colors.MustParseColor("#7c8aff"), colors.White, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindAccessibleColor(tt.fg, tt.bg, tt.target, tt.adjustForeground)
			assert.False(t, ok)
			assert.Equal(t, colors.RGBColor{}, got)
		})
	}
}

func TestLightnessSearch_Phases(t *testing.T) {
	s := &lightnessSearch{
		subject:       colors.HSLColor{H: 0, S: 0, L: 60},
		fixed:         colors.White,
		fixedLum:      1,
		target:        4.5,
		origLightness: 60,
	}

	t.Run("converge below original raises low", func(t *testing.T) {
		w := s.converge(lightnessWindow{low: 0, high: 100}, 50)
		assert.Equal(t, lightnessWindow{low: 50, high: 100}, w)
	})

	t.Run("converge above original lowers high", func(t *testing.T) {
		w := s.converge(lightnessWindow{low: 50, high: 100}, 75)
		assert.Equal(t, lightnessWindow{low: 50, high: 75}, w)
	})

	t.Run("escape darker than fixed lowers high", func(t *testing.T) {
		w := s.escape(lightnessWindow{low: 0, high: 100}, 50, colors.RGBColor{R: 128, G: 128, B: 128})
		assert.Equal(t, lightnessWindow{low: 0, high: 50}, w)
	})

	t.Run("escape lighter than fixed raises low", func(t *testing.T) {
		dark := &lightnessSearch{subject: s.subject, fixed: colors.Black, fixedLum: 0, target: 4.5, origLightness: 60}
		w := dark.escape(lightnessWindow{low: 0, high: 100}, 50, colors.RGBColor{R: 128, G: 128, B: 128})
		assert.Equal(t, lightnessWindow{low: 50, high: 100}, w)
	})

	t.Run("pick prefers boundary closest to original", func(t *testing.T) {
		loose := &lightnessSearch{subject: s.subject, fixed: colors.White, fixedLum: 1, target: 1, origLightness: 60}
		got, ok := loose.pick(lightnessWindow{low: 10, high: 70})
		require.True(t, ok)
		assert.Equal(t, colors.WithLightness(s.subject, 70), got)
	})

	t.Run("pick rejects when neither boundary passes", func(t *testing.T) {
		_, ok := s.pick(lightnessWindow{low: 80, high: 90})
		assert.False(t, ok)
	})
}
