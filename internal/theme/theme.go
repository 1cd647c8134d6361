// Package theme derives the primary UI color from an operator-supplied hex
// string. Derivation must never fail: theming drives live pages, so malformed
// input degrades to a fixed sky-blue fallback instead of an error.
package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// HSL is an integer hue/saturation/lightness triple. Hue is in degrees
// [0,360), saturation and lightness are percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Fallback is returned for any input that is not a 6-digit hex color. It
// matches the HSL of the default primary color #0ea5e9.
var Fallback = HSL{H: 199, S: 89, L: 48}

// CSSValue renders the triple as the value of the --primary custom property.
func (c HSL) CSSValue() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// HexToHSL converts a 6-digit hex color (leading # optional, case
// insensitive) to HSL. Malformed input yields Fallback.
func HexToHSL(hex string) HSL {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Fallback
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Fallback
	}

	r := float64(n>>16&0xff) / 255
	g := float64(n>>8&0xff) / 255
	b := float64(n&0xff) / 255

	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}

	l := (max + min) / 2
	var h, sat float64

	if max != min {
		d := max - min
		if l > 0.5 {
			sat = d / (2 - max - min)
		} else {
			sat = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	// Rounding can push a near-red hue to exactly 360; wrap it back.
	return HSL{
		H: int(h*360+0.5) % 360,
		S: int(sat*100 + 0.5),
		L: int(l*100 + 0.5),
	}
}
