package a2svg

import (
	"strconv"
	"strings"

	mtransform "github.com/rustyoz/Mtransform"
)

// shapeTemplates holds the built-in 100x100-unit path templates a box can
// substitute for its ordinary polygon via the a2s:type option. Both
// templates are expressed entirely in absolute commands, so the dormant
// relative-command scaling anomaly spec.md's Open Questions section
// describes in the original renderer never triggers here.
var shapeTemplates = map[string]string{
	"storage":  "M 0 100 A 50 25 0 0 0 100 100 V 20 A 50 25 0 0 0 0 20 A 50 25 0 0 0 100 20 A 50 25 0 0 0 0 20 Z",
	"document": "M 0 100 C 25 115 75 85 100 100 V 0 H 0 Z",
}

// pathCommand is one letter-prefixed command parsed out of a template,
// e.g. "A 50 25 0 0 0 100 100".
type pathCommand struct {
	letter string
	args   []float64
}

func parseTemplate(tmpl string) []pathCommand {
	fields := strings.Fields(tmpl)
	var cmds []pathCommand
	var cur *pathCommand
	for _, f := range fields {
		if len(f) == 1 && (f[0] < '0' || f[0] > '9') && f[0] != '-' && f[0] != '.' {
			cmds = append(cmds, pathCommand{letter: f})
			cur = &cmds[len(cmds)-1]
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || cur == nil {
			continue
		}
		cur.args = append(cur.args, v)
	}
	return cmds
}

// customShapePath renders the named template scaled to fit [minX, minY,
// maxX, maxY] (in SVG user units) and returns the "d" attribute value, or
// "" if name isn't a known shape.
//
// Per spec.md §4.9, absolute commands (M, A, V, H, C, Z — the only ones
// these templates use) translate and scale their endpoints; the template's
// 100x100 unit square maps onto the box's bounding rectangle via a single
// scale-then-translate affine transform, built with
// github.com/rustyoz/Mtransform rather than hand-rolled matrix arithmetic.
func customShapePath(name string, minX, minY, maxX, maxY float64) string {
	tmpl, ok := shapeTemplates[name]
	if !ok {
		return ""
	}
	sx := (maxX - minX) / 100
	sy := (maxY - minY) / 100

	m := mtransform.NewTransform()
	m.Translate(minX, minY)
	m.Scale(sx, sy)

	var b strings.Builder
	for _, cmd := range parseTemplate(tmpl) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(cmd.letter)
		switch cmd.letter {
		case "M", "L":
			x, y := m.Apply(cmd.args[0], cmd.args[1])
			b.WriteString(" " + formatCoord(x) + " " + formatCoord(y))
		case "H":
			x, _ := m.Apply(cmd.args[0], 0)
			b.WriteString(" " + formatCoord(x))
		case "V":
			_, y := m.Apply(0, cmd.args[0])
			b.WriteString(" " + formatCoord(y))
		case "C":
			x1, y1 := m.Apply(cmd.args[0], cmd.args[1])
			x2, y2 := m.Apply(cmd.args[2], cmd.args[3])
			x, y := m.Apply(cmd.args[4], cmd.args[5])
			b.WriteString(" " + formatCoord(x1) + " " + formatCoord(y1) + " " + formatCoord(x2) + " " + formatCoord(y2) + " " + formatCoord(x) + " " + formatCoord(y))
		case "Q":
			x1, y1 := m.Apply(cmd.args[0], cmd.args[1])
			x, y := m.Apply(cmd.args[2], cmd.args[3])
			b.WriteString(" " + formatCoord(x1) + " " + formatCoord(y1) + " " + formatCoord(x) + " " + formatCoord(y))
		case "A":
			rx := cmd.args[0] * sx
			ry := cmd.args[1] * sy
			x, y := m.Apply(cmd.args[5], cmd.args[6])
			b.WriteString(" " + formatCoord(rx) + " " + formatCoord(ry) + " " + formatCoord(cmd.args[2]) + " " +
				strconv.Itoa(int(cmd.args[3])) + " " + strconv.Itoa(int(cmd.args[4])) + " " + formatCoord(x) + " " + formatCoord(y))
		case "Z":
			// no arguments
		}
	}
	return b.String()
}
