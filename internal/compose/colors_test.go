package compose

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestTextColourForContrast(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"#ffffff", darkText},
		{"#f8fafc", darkText},
		{"#facc15", darkText}, // bright yellow reads dark text
		{"#000000", lightText},
		{"#0f172a", lightText},
		{"#1d4ed8", lightText}, // saturated blue reads light text
	}
	for _, tc := range tests {
		if got := TextColourFor(tc.bg); got != tc.want {
			t.Fatalf("TextColourFor(%q) = %q, want %q", tc.bg, got, tc.want)
		}
	}
}

func TestTextColourForBadHex(t *testing.T) {
	if got := TextColourFor("not-a-colour"); got != lightText {
		t.Fatalf("bad hex fell back to %q", got)
	}
}

func TestDarkenLightenMoveLuminance(t *testing.T) {
	base := "#3b82f6"
	c, _ := colorful.Hex(base)
	d, _ := colorful.Hex(Darken(base, 0.3))
	l, _ := colorful.Hex(Lighten(base, 0.3))

	if relativeLuminance(d) >= relativeLuminance(c) {
		t.Fatalf("Darken did not reduce luminance")
	}
	if relativeLuminance(l) <= relativeLuminance(c) {
		t.Fatalf("Lighten did not raise luminance")
	}
}

func TestDarkenClampsFactor(t *testing.T) {
	if got := Darken("#808080", 2); got != "#000000" {
		t.Fatalf("Darken with t>1 = %q, want black", got)
	}
	if got := Lighten("#808080", -1); got != "#808080" {
		t.Fatalf("Lighten with t<0 = %q, want unchanged", got)
	}
}

func TestDarkenBadHexPassthrough(t *testing.T) {
	if got := Darken("nope", 0.5); got != "nope" {
		t.Fatalf("bad hex mutated: %q", got)
	}
}

func TestMixOver(t *testing.T) {
	// Zero opacity keeps the background, full opacity yields the overlay.
	if got := MixOver("#000000", "#ffffff", 0); got != "#000000" {
		t.Fatalf("MixOver at 0 = %q", got)
	}
	if got := MixOver("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Fatalf("MixOver at 1 = %q", got)
	}
	mid, _ := colorful.Hex(MixOver("#000000", "#ffffff", 0.5))
	lum := relativeLuminance(mid)
	if lum <= 0.05 || lum >= 0.95 {
		t.Fatalf("MixOver at 0.5 is not intermediate: %v", lum)
	}
}
