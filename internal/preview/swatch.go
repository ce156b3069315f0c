// Package preview renders a color pair as a small PNG swatch so a client can
// show what a contrast ratio looks like.
package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/contrast-tools-mcp/internal/colors"
	"github.com/ironsheep/contrast-tools-mcp/internal/contrast"
)

// Size limits for a swatch, in pixels.
const (
	MinWidth  = 32
	MinHeight = 16
	MaxSize   = 2048
)

// Result contains the rendered swatch.
type Result struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Foreground  string  `json:"foreground"`
	Background  string  `json:"background"`
	Ratio       float64 `json:"ratio"`
	ImageBase64 string  `json:"image_base64"`
	MimeType    string  `json:"mime_type"`
}

// Render draws the contrast ratio as "N.NN:1" in the foreground color on a
// background-filled canvas, with a foreground bar underneath for a solid
// sample of the color.
func Render(fg, bg colors.RGBColor, width, height int) (*Result, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("preview size %dx%d below minimum %dx%d", width, height, MinWidth, MinHeight)
	}
	if width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("preview size %dx%d exceeds maximum %dx%d", width, height, MaxSize, MaxSize)
	}

	ratio := math.Round(contrast.ContrastRatio(fg, bg)*100) / 100
	fgColor := toNRGBA(fg)

	canvas := imaging.New(width, height, toNRGBA(bg))

	text := renderText(fmt.Sprintf("%.2f:1", ratio), fgColor)
	scale := textScale(text.Bounds().Dx(), text.Bounds().Dy(), width, height)
	if scale > 1 {
		text = imaging.Resize(text, text.Bounds().Dx()*scale, text.Bounds().Dy()*scale, imaging.NearestNeighbor)
	}
	tx := (width - text.Bounds().Dx()) / 2
	ty := height*2/5 - text.Bounds().Dy()/2
	if ty < 0 {
		ty = 0
	}
	canvas = imaging.Overlay(canvas, text, image.Pt(tx, ty), 1.0)

	barTop, barHeight := barGeometry(height)
	bar := imaging.New(width/2, barHeight, fgColor)
	canvas = imaging.Paste(canvas, bar, image.Pt(width/4, barTop))

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &Result{
		Width:       width,
		Height:      height,
		Foreground:  colors.ToHex(fg),
		Background:  colors.ToHex(bg),
		Ratio:       ratio,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// barGeometry returns the top row and height of the foreground sample bar.
func barGeometry(height int) (top, h int) {
	h = height / 12
	if h < 2 {
		h = 2
	}
	return height - height/6, h
}

// textScale picks the largest integer scale that keeps the label within 80%
// of the width and half the height. Never below 1.
func textScale(textW, textH, width, height int) int {
	scale := (width * 8 / 10) / textW
	if s := (height / 2) / textH; s < scale {
		scale = s
	}
	if scale < 1 {
		scale = 1
	}
	return scale
}

func toNRGBA(c colors.RGBColor) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
