package contrast

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
)

// Passes reports which AA content-type thresholds a ratio meets.
type Passes struct {
	NormalText  bool `json:"normal_text"`
	LargeText   bool `json:"large_text"`
	UIComponent bool `json:"ui_component"`
}

// Analysis is the conformance report for one color pair.
type Analysis struct {
	Foreground       string      `json:"foreground"`        // Resolved foreground "#rrggbb"
	Background       string      `json:"background"`        // Resolved background "#rrggbb"
	Ratio            float64     `json:"ratio"`             // Contrast ratio rounded to 2 decimals
	PassesAA         Passes      `json:"passes_aa"`         // Pass flags per content type at AA
	Requirement      Requirement `json:"requirement"`       // The requirement evaluated
	MeetsRequirement bool        `json:"meets_requirement"` // Ratio >= Requirement.MinRatio (unrounded)
}

// Adjusted names the side of a pair a suggestion changed.
type Adjusted string

const (
	AdjustedForeground Adjusted = "foreground"
	AdjustedBackground Adjusted = "background"
)

// Suggestion is a candidate replacement color that reaches the target ratio.
type Suggestion struct {
	Color    string          `json:"color"`    // Suggested color "#rrggbb"
	RGB      colors.RGBColor `json:"rgb"`      // Suggested color components
	HSL      colors.HSLColor `json:"hsl"`      // Suggested color in HSL
	Ratio    float64         `json:"ratio"`    // Ratio against the unchanged color, 2 decimals
	Adjusted Adjusted        `json:"adjusted"` // Which side of the pair was changed
	DeltaE   float64         `json:"delta_e"`  // CIEDE2000 distance from the original color

	exactRatio float64
}

// Preserve selects which side of a pair must stay unchanged.
type Preserve string

const (
	PreserveForeground Preserve = "foreground"
	PreserveBackground Preserve = "background"
	PreserveBoth       Preserve = "both"
)

// ParsePreserve validates a preserve option. An empty string selects
// PreserveBoth, which tries adjusting each side in turn.
func ParsePreserve(s string) (Preserve, error) {
	switch Preserve(strings.ToLower(strings.TrimSpace(s))) {
	case "", PreserveBoth:
		return PreserveBoth, nil
	case PreserveForeground:
		return PreserveForeground, nil
	case PreserveBackground:
		return PreserveBackground, nil
	default:
		return "", fmt.Errorf("unknown preserve option: %s (expected foreground, background or both)", s)
	}
}

// RatioResult is the response of CalculateContrastRatio.
type RatioResult struct {
	Ratio float64 `json:"ratio"`
}

// CalculateContrastRatio parses two colors and returns their contrast ratio
// rounded to two decimals.
func CalculateContrastRatio(fg, bg string) (*RatioResult, error) {
	fgRGB, bgRGB, err := parsePair(fg, bg)
	if err != nil {
		return nil, err
	}
	return &RatioResult{Ratio: roundRatio(ContrastRatio(fgRGB, bgRGB))}, nil
}

// AnalyzeColorPair checks a color pair against the requirement for the given
// content type and level.
//
// The AA pass flags for all three content types are always filled in, so a
// caller asking about normal text still learns whether the pair would do for
// large text. MeetsRequirement compares the unrounded ratio, so a pair at
// 4.496 does not pass 4.5 even though Ratio displays 4.5.
//
// Returns an error wrapping *colors.ParseError when either color is invalid.
func AnalyzeColorPair(fg, bg string, contentType ContentType, level Level) (*Analysis, error) {
	if contentType == "" {
		contentType = NormalText
	}
	if level == "" {
		level = LevelAA
	}
	req, err := LookupRequirement(contentType, level)
	if err != nil {
		return nil, err
	}

	fgRGB, bgRGB, err := parsePair(fg, bg)
	if err != nil {
		return nil, err
	}

	ratio := ContrastRatio(fgRGB, bgRGB)

	return &Analysis{
		Foreground: colors.ToHex(fgRGB),
		Background: colors.ToHex(bgRGB),
		Ratio:      roundRatio(ratio),
		PassesAA: Passes{
			NormalText:  ratio >= requirements[requirementKey{NormalText, LevelAA}].MinRatio,
			LargeText:   ratio >= requirements[requirementKey{LargeText, LevelAA}].MinRatio,
			UIComponent: ratio >= requirements[requirementKey{UIComponent, LevelAA}].MinRatio,
		},
		Requirement:      req,
		MeetsRequirement: ratio >= req.MinRatio,
	}, nil
}

// SuggestAccessibleColors proposes lightness-only adjustments that bring a
// pair to targetRatio.
//
// preserve controls which side may change: PreserveBackground adjusts the
// foreground, PreserveForeground adjusts the background and PreserveBoth
// tries each. Sides for which no accessible lightness exists are left out, so
// the result may be empty. Suggestions are ordered by how closely their ratio
// matches the target.
func SuggestAccessibleColors(fg, bg string, targetRatio float64, preserve Preserve) ([]Suggestion, error) {
	if math.IsNaN(targetRatio) || targetRatio < 1 {
		return nil, fmt.Errorf("target ratio must be at least 1, got %v", targetRatio)
	}
	if preserve == "" {
		preserve = PreserveBoth
	}
	if preserve != PreserveBoth && preserve != PreserveForeground && preserve != PreserveBackground {
		return nil, fmt.Errorf("unknown preserve option: %s", preserve)
	}

	fgRGB, bgRGB, err := parsePair(fg, bg)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, 2)

	if preserve != PreserveForeground {
		if c, ok := FindAccessibleColor(fgRGB, bgRGB, targetRatio, true); ok {
			suggestions = append(suggestions, newSuggestion(c, fgRGB, bgRGB, AdjustedForeground))
		}
	}
	if preserve != PreserveBackground {
		if c, ok := FindAccessibleColor(fgRGB, bgRGB, targetRatio, false); ok {
			suggestions = append(suggestions, newSuggestion(c, bgRGB, fgRGB, AdjustedBackground))
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return math.Abs(suggestions[i].exactRatio-targetRatio) < math.Abs(suggestions[j].exactRatio-targetRatio)
	})

	return suggestions, nil
}

func newSuggestion(c, original, fixed colors.RGBColor, side Adjusted) Suggestion {
	ratio := ContrastRatio(c, fixed)
	return Suggestion{
		Color:      colors.ToHex(c),
		RGB:        c,
		HSL:        colors.RGBToHSL(c),
		Ratio:      roundRatio(ratio),
		Adjusted:   side,
		DeltaE:     colors.Distance(original, c),
		exactRatio: ratio,
	}
}

func parsePair(fg, bg string) (colors.RGBColor, colors.RGBColor, error) {
	fgRGB, err := colors.ParseColor(fg)
	if err != nil {
		return colors.RGBColor{}, colors.RGBColor{}, fmt.Errorf("invalid foreground color: %w", err)
	}
	bgRGB, err := colors.ParseColor(bg)
	if err != nil {
		return colors.RGBColor{}, colors.RGBColor{}, fmt.Errorf("invalid background color: %w", err)
	}
	return fgRGB, bgRGB, nil
}
