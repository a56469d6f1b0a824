package a2svg

import (
	"strconv"
	"strings"
)

// bezierRadius is the fixed SVG-unit offset used to round a CONTROL
// vertex into a quadratic Bezier curve: the incoming line is shortened by
// this much, and the outgoing one starts this much past the corner.
const bezierRadius = 10

// Render emits the <path> element for this Path, including the custom
// shape substitution and Bezier-curved corners described by spec.md §4.9.
// It satisfies the Groups object interface.
func (p *Path) Render() string {
	if len(p.points) == 0 {
		return ""
	}

	if shape := p.options["a2s:type"]; shape != "" {
		if d := p.customShapeD(shape); d != "" {
			return p.renderPath(d)
		}
	}

	return p.renderPath(p.ordinaryPathD())
}

// customShapeD returns the "d" attribute for substituting shape for this
// path's ordinary polygon, scaled and translated to its bounding box, or
// "" if shape isn't recognized (in which case the ordinary polygon is
// rendered instead).
func (p *Path) customShapeD(shape string) string {
	minX, minY, maxX, maxY := boundingBox(p.points)
	return customShapePath(shape, minX, minY, maxX, maxY)
}

// ordinaryPathD walks the path's points in order, emitting a moveto, a
// lineto per ordinary vertex, and a quadratic Bezier per CONTROL vertex.
// This construction only produces a visually correct curve when the
// polygon is traversed clockwise, which WallFollower guarantees.
func (p *Path) ordinaryPathD() string {
	points := p.points
	start := points[0]

	var b strings.Builder
	if start.Flags&FlagControl != 0 {
		// Open with a small quadratic arc centered on the corner instead of
		// a sharp moveto, so the curve begins cleanly rather than with a
		// visible kink.
		b.WriteString("M " + formatCoord(start.X) + " " + formatCoord(start.Y+bezierRadius) +
			" Q " + formatCoord(start.X) + " " + formatCoord(start.Y) +
			" " + formatCoord(start.X+bezierRadius) + " " + formatCoord(start.Y))
	} else {
		b.WriteString("M " + formatCoord(start.X) + " " + formatCoord(start.Y))
	}

	prev := start
	n := len(points)
	for i := 1; i < n; i++ {
		cur := points[i]
		if cur.Flags&FlagControl != 0 {
			var next Point
			if i == n-1 && p.IsClosed() {
				next = start
			} else if i < n-1 {
				next = points[i+1]
			} else {
				next = cur
			}
			b.WriteString(" " + curveSegment(prev, cur, next))
		} else {
			b.WriteString(" L " + formatCoord(cur.X) + " " + formatCoord(cur.Y))
		}
		prev = cur
	}

	if p.IsClosed() {
		b.WriteString(" Z")
	}
	return b.String()
}

// curveSegment renders the incoming-line-truncated-to-Bezier-control-point
// transition through a rounded corner at cur, given the previous and next
// vertices (next wraps to the path's first point when cur is the path's
// last vertex and the path is closed). Axis and sign come from whichever
// of prev/cur or cur/next share a coordinate.
func curveSegment(prev, cur, next Point) string {
	var sX, sY, eX, eY float64
	switch {
	case prev.X == cur.X:
		sX = cur.X
		if prev.Y < cur.Y {
			sY = cur.Y - bezierRadius
		} else {
			sY = cur.Y + bezierRadius
		}
		eY = cur.Y
		if next.X < cur.X {
			eX = cur.X - bezierRadius
		} else {
			eX = cur.X + bezierRadius
		}
	case prev.Y == cur.Y:
		sY = cur.Y
		if prev.X < cur.X {
			sX = cur.X - bezierRadius
		} else {
			sX = cur.X + bezierRadius
		}
		eX = cur.X
		if next.Y <= cur.Y {
			eY = cur.Y - bezierRadius
		} else {
			eY = cur.Y + bezierRadius
		}
	default:
		sX, sY, eX, eY = cur.X, cur.Y, cur.X, cur.Y
	}
	return "L " + formatCoord(sX) + " " + formatCoord(sY) +
		" Q " + formatCoord(cur.X) + " " + formatCoord(cur.Y) +
		" " + formatCoord(eX) + " " + formatCoord(eY)
}

// renderPath assembles the final <path> (plus any attached text and tick
// decorations) given its "d" attribute value.
func (p *Path) renderPath(d string) string {
	opts := map[string]string{}
	for k, v := range p.options {
		opts[k] = v
	}
	if p.IsClosed() && opts["fill"] == "" {
		opts["fill"] = "#fff"
	}

	start, end := p.points[0], p.points[len(p.points)-1]
	if start.Flags&FlagStartMarker != 0 {
		opts["marker-start"] = "url(#iPointer)"
	}
	if end.Flags&FlagEndMarker != 0 {
		opts["marker-end"] = "url(#Pointer)"
	}

	var b strings.Builder
	b.WriteString("<path id=\"path")
	b.WriteString(p.id)
	b.WriteString("\" ")
	for _, kv := range sortedOptions(opts) {
		b.WriteString(kv[0])
		b.WriteString("=\"")
		b.WriteString(kv[1])
		b.WriteString("\" ")
	}
	b.WriteString("d=\"")
	b.WriteString(d)
	b.WriteString("\" />\n")

	for _, t := range p.text {
		b.WriteString(t.Render())
	}

	for _, tick := range p.ticks {
		b.WriteString(renderTick(tick))
	}

	return b.String()
}

// renderTick draws a supplemented decoration for a mid-edge 'o' (filled
// circle) or 'X' (crossing tick) character: a cheap, purely cosmetic
// extra not described by spec.md but harmless to any consumer that never
// emits the characters that trigger it.
func renderTick(t Point) string {
	if t.Flags&FlagDot != 0 {
		return "<circle cx=\"" + formatCoord(t.X) + "\" cy=\"" + formatCoord(t.Y) + "\" r=\"3\" fill=\"black\" />\n"
	}
	x1, y1 := t.X-4, t.Y-4
	x2, y2 := t.X+4, t.Y+4
	out := "<line x1=\"" + formatCoord(x1) + "\" y1=\"" + formatCoord(y1) + "\" x2=\"" + formatCoord(x2) + "\" y2=\"" + formatCoord(y2) + "\" stroke=\"black\" stroke-width=\"1\" />\n"
	x1, y1 = t.X+4, t.Y-4
	x2, y2 = t.X-4, t.Y+4
	out += "<line x1=\"" + formatCoord(x1) + "\" y1=\"" + formatCoord(y1) + "\" x2=\"" + formatCoord(x2) + "\" y2=\"" + formatCoord(y2) + "\" stroke=\"black\" stroke-width=\"1\" />\n"
	return out
}

const svgHeader = "<?xml version=\"1.0\" standalone=\"no\"?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"

const defsTemplate = `  <defs>
    <filter id="dsFilter" width="150%" height="150%">
      <feOffset result="offOut" in="SourceGraphic" dx="3" dy="3"/>
      <feColorMatrix result="matrixOut" in="offOut" type="matrix" values="0.2 0 0 0 0 0 0.2 0 0 0 0 0 0.2 0 0 0 0 0 1 0"/>
      <feGaussianBlur result="blurOut" in="matrixOut" stdDeviation="3"/>
      <feBlend in="SourceGraphic" in2="blurOut" mode="normal"/>
    </filter>
    <filter id="dsFilterNoBlur" width="150%" height="150%">
      <feOffset result="offOut" in="SourceGraphic" dx="3" dy="3"/>
      <feColorMatrix result="matrixOut" in="offOut" type="matrix" values="0.2 0 0 0 0 0 0.2 0 0 0 0 0 0.2 0 0 0 0 0 1 0"/>
      <feBlend in="SourceGraphic" in2="matrixOut" mode="normal"/>
    </filter>
    <marker id="iPointer"
      viewBox="0 0 10 10" refX="5" refY="5"
      markerUnits="strokeWidth"
      markerWidth="8" markerHeight="7"
      orient="auto">
      <path d="M 10 0 L 10 10 L 0 5 z" />
    </marker>
    <marker id="Pointer"
      viewBox="0 0 10 10" refX="5" refY="5"
      markerUnits="strokeWidth"
      markerWidth="8" markerHeight="7"
      orient="auto">
      <path d="M 0 0 L 10 5 L 0 10 z" />
    </marker>
  </defs>
`

// Render serializes the full SVG document: header, a <defs> block holding
// the drop-shadow filters and arrow markers, and the boxes/lines/text
// groups in that insertion order (spec.md §6).
func (c Canvas) Render() []byte {
	width := int(float64(c.cols)*c.cfg.Scale.X) + 30
	height := int(float64(c.rows)*c.cfg.Scale.Y) + 30

	var b strings.Builder
	b.WriteString(svgHeader)
	b.WriteString("<svg width=\"" + strconv.Itoa(width) + "px\" height=\"" + strconv.Itoa(height) +
		"px\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\">\n")
	b.WriteString(defsTemplate)
	b.WriteString(c.groups.Render())
	b.WriteString("</svg>\n")
	return []byte(b.String())
}
