package compose

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Foreground colours picked by the contrast rule. One light, one dark;
// the background's relative luminance decides which.
const (
	lightText = "#f8fafc"
	darkText  = "#0f172a"
)

// relativeLuminance computes perceptual luminance from linearized RGB.
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// TextColourFor picks a light or dark foreground for the given background
// hex colour. The same rule serves category labels, task-bar labels and
// highlight labels so they never disagree.
func TextColourFor(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return lightText
	}
	if relativeLuminance(c) > 0.5 {
		return darkText
	}
	return lightText
}

// Darken blends a hex colour toward black by t in [0, 1].
func Darken(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLab(black, clamp01(t)).Clamped().Hex()
}

// Lighten blends a hex colour toward white by t in [0, 1].
func Lighten(hex string, t float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, clamp01(t)).Clamped().Hex()
}

// MixOver composites fg over bg at the given opacity and returns the
// resulting hex colour, used to evaluate contrast over tinted areas.
func MixOver(bg, fg string, opacity float64) string {
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	f, err := colorful.Hex(fg)
	if err != nil {
		return bg
	}
	return b.BlendRgb(f, clamp01(opacity)).Clamped().Hex()
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
