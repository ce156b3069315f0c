// Package colors parses CSS-style color text and converts between the color
// representations used by the contrast engine.
//
// # Supported Input
//
// ParseColor accepts, after trimming whitespace and lowering case:
//   - #RGB: shorthand hex, each digit duplicated ("#f00" is 255,0,0)
//   - #RRGGBB: full hex
//   - rgb(r, g, b) and rgba(r, g, b, a): decimal channels 0-255; the alpha
//     value is validated and then discarded, since contrast is only defined
//     for opaque colors
//
// Anything else fails with a *ParseError naming the offending input.
//
// # Color Representation
//
//   - RGB: 8-bit components (0-255)
//   - Hex: lowercase "#rrggbb"
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100), rounded to one
//     decimal place so that RGB -> HSL -> RGB stays within one unit per channel
//
// All functions are pure and safe for concurrent use.
package colors
