package theme

import "testing"

func TestHexToHSLKnownColors(t *testing.T) {
	cases := []struct {
		hex  string
		want HSL
	}{
		{"#0ea5e9", HSL{199, 89, 48}},
		{"0ea5e9", HSL{199, 89, 48}},
		{"#0EA5E9", HSL{199, 89, 48}},
		{"#ff0000", HSL{0, 100, 50}},
		{"#00ff00", HSL{120, 100, 50}},
		{"#0000ff", HSL{240, 100, 50}},
		{"#ffffff", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
	}
	for _, tc := range cases {
		if got := HexToHSL(tc.hex); got != tc.want {
			t.Errorf("HexToHSL(%q) = %+v, want %+v", tc.hex, got, tc.want)
		}
	}
}

func TestHexToHSLMalformedFallsBack(t *testing.T) {
	for _, hex := range []string{"", "#", "#fff", "#1234567", "not-a-color", "#zzzzzz", "0ea5e", "##0ea5e9"} {
		if got := HexToHSL(hex); got != Fallback {
			t.Errorf("HexToHSL(%q) = %+v, want fallback %+v", hex, got, Fallback)
		}
	}
}

func TestHexToHSLRanges(t *testing.T) {
	// Sweep a coarse grid of the color cube; every output stays in range.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				hex := "#" + hexByte(r) + hexByte(g) + hexByte(b)
				hsl := HexToHSL(hex)
				if hsl.H < 0 || hsl.H >= 360 {
					t.Fatalf("hue out of range for %s: %d", hex, hsl.H)
				}
				if hsl.S < 0 || hsl.S > 100 {
					t.Fatalf("saturation out of range for %s: %d", hex, hsl.S)
				}
				if hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("lightness out of range for %s: %d", hex, hsl.L)
				}
			}
		}
	}
}

func TestHexToHSLHueWrapsAtRed(t *testing.T) {
	// A near-red color whose hue rounds to 360 must wrap into [0,360).
	if got := HexToHSL("#ff0001"); got.H != 0 {
		t.Errorf("HexToHSL(#ff0001).H = %d, want 0", got.H)
	}
}

func TestCSSValue(t *testing.T) {
	if got := (HSL{199, 89, 48}).CSSValue(); got != "199 89% 48%" {
		t.Errorf("CSSValue() = %q", got)
	}
}

func hexByte(v int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0xf]})
}
