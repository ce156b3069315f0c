package contrast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
)

func TestRequirements(t *testing.T) {
	want := map[ContentType]Thresholds{
		NormalText:  {AA: 4.5, AAA: 7.0},
		LargeText:   {AA: 3.0, AAA: 4.5},
		UIComponent: {AA: 3.0, AAA: 3.0},
	}
	assert.Equal(t, want, Requirements())

	// Callers get a copy.
	got := Requirements()
	got[NormalText] = Thresholds{}
	assert.Equal(t, want, Requirements())
}

func TestAllRequirements(t *testing.T) {
	all := AllRequirements()
	require.Len(t, all, 6)
	assert.Equal(t, Requirement{LevelAA, NormalText, 4.5, "WCAG 2.1 SC 1.4.3 Contrast (Minimum)"}, all[0])
	assert.Equal(t, UIComponent, all[5].ContentType)
	assert.Equal(t, LevelAAA, all[5].Level)
	assert.Contains(t, all[5].Guideline, "1.4.11")
}

func TestLookupRequirement(t *testing.T) {
	req, err := LookupRequirement(LargeText, LevelAAA)
	require.NoError(t, err)
	assert.Equal(t, 4.5, req.MinRatio)

	_, err = LookupRequirement(ContentType("headline"), LevelAA)
	assert.Error(t, err)
}

func TestParseEnums(t *testing.T) {
	ct, err := ParseContentType("")
	require.NoError(t, err)
	assert.Equal(t, NormalText, ct)

	ct, err = ParseContentType(" UI-Component ")
	require.NoError(t, err)
	assert.Equal(t, UIComponent, ct)

	_, err = ParseContentType("body")
	assert.Error(t, err)

	lvl, err := ParseLevel("aaa")
	require.NoError(t, err)
	assert.Equal(t, LevelAAA, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelAA, lvl)

	_, err = ParseLevel("A")
	assert.Error(t, err)

	p, err := ParsePreserve("")
	require.NoError(t, err)
	assert.Equal(t, PreserveBoth, p)

	p, err = ParsePreserve("Background")
	require.NoError(t, err)
	assert.Equal(t, PreserveBackground, p)

	_, err = ParsePreserve("neither")
	assert.Error(t, err)
}

func TestCalculateContrastRatio(t *testing.T) {
	got, err := CalculateContrastRatio("#fff", "rgb(0,0,0)")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, got.Ratio, 1e-9)

	got, err = CalculateContrastRatio("#767676", "#ffffff")
	require.NoError(t, err)
	assert.Equal(t, 4.54, got.Ratio)

	_, err = CalculateContrastRatio("notacolor", "#fff")
	var perr *colors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "notacolor", perr.Input)
	assert.Contains(t, err.Error(), "foreground")
}

func TestAnalyzeColorPair(t *testing.T) {
	tests := []struct {
		name        string
		fg, bg      string
		contentType ContentType
		level       Level
		wantRatio   float64
		wantPasses  Passes
		wantMeets   bool
		wantMin     float64
	}{
		{
			name:       "boundary gray passes normal text AA",
			fg:         "#767676",
			bg:         "#ffffff",
			wantRatio:  4.54,
			wantPasses: Passes{NormalText: true, LargeText: true, UIComponent: true},
			wantMeets:  true,
			wantMin:    4.5,
		},
		{
			name:        "boundary gray fails normal text AAA",
			fg:          "#767676",
			bg:          "#ffffff",
			contentType: NormalText,
			level:       LevelAAA,
			wantRatio:   4.54,
			wantPasses:  Passes{NormalText: true, LargeText: true, UIComponent: true},
			wantMeets:   false,
			wantMin:     7.0,
		},
		{
			name:       "light gray passes only large text and ui",
			fg:         "#949494",
			bg:         "#ffffff",
			wantRatio:  3.03,
			wantPasses: Passes{NormalText: false, LargeText: true, UIComponent: true},
			wantMeets:  false,
			wantMin:    4.5,
		},
		{
			name:        "lighter gray fails everything",
			fg:          "#a0a0a0",
			bg:          "#ffffff",
			contentType: UIComponent,
			level:       LevelAA,
			wantRatio:   2.61,
			wantPasses:  Passes{},
			wantMeets:   false,
			wantMin:     3.0,
		},
		{
			name:        "ui component AAA uses the AA minimum",
			fg:          "#949494",
			bg:          "#ffffff",
			contentType: UIComponent,
			level:       LevelAAA,
			wantRatio:   3.03,
			wantPasses:  Passes{NormalText: false, LargeText: true, UIComponent: true},
			wantMeets:   true,
			wantMin:     3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AnalyzeColorPair(tt.fg, tt.bg, tt.contentType, tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRatio, got.Ratio)
			assert.Equal(t, tt.wantPasses, got.PassesAA)
			assert.Equal(t, tt.wantMeets, got.MeetsRequirement)
			assert.Equal(t, tt.wantMin, got.Requirement.MinRatio)
		})
	}
}

func TestAnalyzeColorPair_ResolvesHex(t *testing.T) {
	got, err := AnalyzeColorPair("rgb(255, 0, 0)", "#FFF", "", "")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", got.Foreground)
	assert.Equal(t, "#ffffff", got.Background)
	assert.Equal(t, NormalText, got.Requirement.ContentType)
	assert.Equal(t, LevelAA, got.Requirement.Level)
}

func TestAnalyzeColorPair_UsesUnroundedRatio(t *testing.T) {
	// 4.496 displays as 4.5 but is below the minimum.
	fg := colors.RGBColor{R: 0x76, G: 0x77, B: 0x76}
	ratio := ContrastRatio(fg, colors.White)
	require.Less(t, ratio, 4.5)
	require.GreaterOrEqual(t, roundRatio(ratio), 4.5)

	got, err := AnalyzeColorPair(colors.ToHex(fg), "#ffffff", NormalText, LevelAA)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Ratio)
	assert.False(t, got.MeetsRequirement)
	assert.False(t, got.PassesAA.NormalText)
}

func TestAnalyzeColorPair_Errors(t *testing.T) {
	_, err := AnalyzeColorPair("#fff", "#12", NormalText, LevelAA)
	var perr *colors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "background")
	assert.Contains(t, err.Error(), "#12")

	_, err = AnalyzeColorPair("#fff", "#000", ContentType("poster"), LevelAA)
	assert.Error(t, err)
}

func TestSuggestAccessibleColors(t *testing.T) {
	t.Run("preserve background adjusts foreground", func(t *testing.T) {
		got, err := SuggestAccessibleColors("#7c8aff", "#ffffff", 4.5, PreserveBackground)
		require.NoError(t, err)
		require.Len(t, got, 1)

		s := got[0]
		assert.Equal(t, AdjustedForeground, s.Adjusted)
		assert.Equal(t, "#5062ff", s.Color)
		assert.GreaterOrEqual(t, s.Ratio, 4.5)
		assert.InDelta(t, colors.RGBToHSL(colors.MustParseColor("#7c8aff")).H, s.HSL.H, 1.0)
		assert.Greater(t, s.DeltaE, 10.0)
		assert.Less(t, s.DeltaE, 20.0)
	})

	t.Run("preserve foreground adjusts background", func(t *testing.T) {
		got, err := SuggestAccessibleColors("#7c8aff", "#ffffff", 4.5, PreserveForeground)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, AdjustedBackground, got[0].Adjusted)
		assert.Equal(t, "#2c2c2c", got[0].Color)
	})

	t.Run("both sorted by closeness to target", func(t *testing.T) {
		got, err := SuggestAccessibleColors("#7c8aff", "#ffffff", 4.5, PreserveBoth)
		require.NoError(t, err)
		require.Len(t, got, 2)
		// Background fix lands at 4.61, foreground fix at 4.63.
		assert.Equal(t, AdjustedBackground, got[0].Adjusted)
		assert.Equal(t, AdjustedForeground, got[1].Adjusted)
		assert.Equal(t, 4.61, got[0].Ratio)
		assert.Equal(t, 4.63, got[1].Ratio)
	})

	t.Run("failed searches are omitted", func(t *testing.T) {
		got, err := SuggestAccessibleColors("#7c8aff", "#ffffff", 7, PreserveBoth)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, AdjustedForeground, got[0].Adjusted)
		assert.Equal(t, 7.04, got[0].Ratio)
	})

	t.Run("impossible target yields no suggestions", func(t *testing.T) {
		got, err := SuggestAccessibleColors("#000000", "#ffffff", 22, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := SuggestAccessibleColors("notacolor", "#ffffff", 4.5, PreserveBoth)
		assert.Error(t, err)

		_, err = SuggestAccessibleColors("#000", "#fff", 0.5, PreserveBoth)
		assert.Error(t, err)

		_, err = SuggestAccessibleColors("#000", "#fff", 4.5, Preserve("hue"))
		assert.Error(t, err)
	})
}
