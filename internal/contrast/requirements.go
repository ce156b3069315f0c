package contrast

import (
	"fmt"
	"strings"
)

// ContentType classifies what a color pair is used for.
type ContentType string

const (
	NormalText  ContentType = "normal-text"
	LargeText   ContentType = "large-text"
	UIComponent ContentType = "ui-component"
)

// ContentTypes lists every content type in display order.
var ContentTypes = []ContentType{NormalText, LargeText, UIComponent}

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Levels lists every conformance level in display order.
var Levels = []Level{LevelAA, LevelAAA}

// ParseContentType validates a content type name. An empty string selects
// NormalText.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(s))) {
	case "", NormalText:
		return NormalText, nil
	case LargeText:
		return LargeText, nil
	case UIComponent:
		return UIComponent, nil
	default:
		return "", fmt.Errorf("unknown content type: %s (expected normal-text, large-text or ui-component)", s)
	}
}

// ParseLevel validates a conformance level name. An empty string selects
// LevelAA.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case "", LevelAA:
		return LevelAA, nil
	case LevelAAA:
		return LevelAAA, nil
	default:
		return "", fmt.Errorf("unknown conformance level: %s (expected AA or AAA)", s)
	}
}

// Thresholds holds the minimum ratios for one content type.
type Thresholds struct {
	AA  float64 `json:"AA"`
	AAA float64 `json:"AAA"`
}

// Requirement is a single minimum contrast rule.
type Requirement struct {
	Level       Level       `json:"level"`
	ContentType ContentType `json:"content_type"`
	MinRatio    float64     `json:"min_ratio"`
	Guideline   string      `json:"guideline"`
}

// requirementKey indexes the requirement table.
type requirementKey struct {
	contentType ContentType
	level       Level
}

// requirements is built once and never modified. UI components have no
// enhanced threshold in WCAG 2.1, so AAA repeats the AA minimum.
var requirements = map[requirementKey]Requirement{
	{NormalText, LevelAA}:   {LevelAA, NormalText, 4.5, "WCAG 2.1 SC 1.4.3 Contrast (Minimum)"},
	{NormalText, LevelAAA}:  {LevelAAA, NormalText, 7.0, "WCAG 2.1 SC 1.4.6 Contrast (Enhanced)"},
	{LargeText, LevelAA}:    {LevelAA, LargeText, 3.0, "WCAG 2.1 SC 1.4.3 Contrast (Minimum)"},
	{LargeText, LevelAAA}:   {LevelAAA, LargeText, 4.5, "WCAG 2.1 SC 1.4.6 Contrast (Enhanced)"},
	{UIComponent, LevelAA}:  {LevelAA, UIComponent, 3.0, "WCAG 2.1 SC 1.4.11 Non-text Contrast"},
	{UIComponent, LevelAAA}: {LevelAAA, UIComponent, 3.0, "WCAG 2.1 SC 1.4.11 Non-text Contrast"},
}

// Requirements returns the minimum ratios per content type. The map is a
// fresh copy on every call.
func Requirements() map[ContentType]Thresholds {
	out := make(map[ContentType]Thresholds, len(ContentTypes))
	for _, ct := range ContentTypes {
		out[ct] = Thresholds{
			AA:  requirements[requirementKey{ct, LevelAA}].MinRatio,
			AAA: requirements[requirementKey{ct, LevelAAA}].MinRatio,
		}
	}
	return out
}

// AllRequirements returns every requirement ordered by content type, then level.
func AllRequirements() []Requirement {
	out := make([]Requirement, 0, len(requirements))
	for _, ct := range ContentTypes {
		for _, lvl := range Levels {
			out = append(out, requirements[requirementKey{ct, lvl}])
		}
	}
	return out
}

// LookupRequirement returns the requirement for a content type and level.
func LookupRequirement(contentType ContentType, level Level) (Requirement, error) {
	req, ok := requirements[requirementKey{contentType, level}]
	if !ok {
		return Requirement{}, fmt.Errorf("no contrast requirement for %s at level %s", contentType, level)
	}
	return req, nil
}
