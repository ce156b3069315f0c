// Package contrast implements WCAG 2.1 contrast analysis.
//
// The package computes relative luminance and contrast ratios, classifies a
// color pair against the WCAG minimums, and searches for the smallest
// lightness change that makes a pair accessible.
//
// # Requirements
//
//	content type   AA    AAA
//	normal-text    4.5   7.0
//	large-text     3.0   4.5
//	ui-component   3.0   3.0
//
// WCAG 2.1 defines no enhanced threshold for non-text contrast, so
// ui-component uses 3.0 at both levels.
//
// # Accessible Color Search
//
// FindAccessibleColor keeps the hue and saturation of the color being
// adjusted and binary-searches its HSL lightness. Each step either converges
// toward the original lightness (the midpoint already meets the target) or
// escapes away from the fixed color's luminance (it does not). The search is
// capped at 20 iterations, so it always terminates; "no color found" is an
// ordinary result, not an error.
//
// Everything here is a pure function of its arguments and safe for
// concurrent use.
package contrast
