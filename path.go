package a2svg

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// pathFlags records shape-level state for a Path.
type pathFlags int

const pathClosed pathFlags = 0x1

var nextPathID atomic.Int64

func newPathID() string {
	return strconv.FormatInt(nextPathID.Add(1)-1, 10)
}

// Path is a polyline or closed polygon extracted from the grid: a box, or
// a line. Its points carry both grid and pixel coordinates; closing a
// path happens the moment AddPoint revisits its own first point.
type Path struct {
	flags   pathFlags
	points  []Point
	ticks   []Point
	text    []*Text
	options map[string]string
	id      string
}

func newPath() *Path {
	return &Path{
		options: map[string]string{},
		id:      newPathID(),
	}
}

// AddPoint appends (x, y) to the path under scale, folding flags onto the
// stored Point. It returns true if the point was not appended: either it
// revisits the starting point, which marks the path closed, or it
// re-touches another point already on the path, which leaves the path
// open (self-intersections collapse rather than duplicate).
func (p *Path) AddPoint(scale Scale, x, y float64, flags PointFlags) bool {
	np := newPoint(scale, x, y)

	if len(p.points) > 0 {
		if p.points[0].X == np.X && p.points[0].Y == np.Y {
			p.flags |= pathClosed
			return true
		}
		for _, existing := range p.points {
			if existing.X == np.X && existing.Y == np.Y {
				return true
			}
		}
	}

	np.Flags |= flags
	p.points = append(p.points, np)
	return false
}

// PopPoint discards the most recently added point. Used by the recursive
// wall follower and line walker to backtrack out of a dead end.
func (p *Path) PopPoint() {
	if len(p.points) > 0 {
		p.points = p.points[:len(p.points)-1]
	}
}

// AddMarker appends a marker endpoint (arrowhead) to the path.
func (p *Path) AddMarker(scale Scale, x, y float64, flag PointFlags) {
	np := newPoint(scale, x, y)
	np.Flags |= flag
	p.points = append(p.points, np)
}

// AddTick records a tick or dot decoration at (x, y). Ticks render as a
// small crossing-stroke or filled circle and are not part of the path
// geometry itself.
func (p *Path) AddTick(scale Scale, x, y float64, flag PointFlags) {
	np := newPoint(scale, x, y)
	np.Flags |= flag
	p.ticks = append(p.ticks, np)
}

// Points returns the path's vertices in traversal order.
func (p *Path) Points() []Point { return p.points }

// Ticks returns the path's tick/dot decorations.
func (p *Path) Ticks() []Point { return p.ticks }

// IsClosed reports whether the path forms a closed polygon.
func (p *Path) IsClosed() bool { return p.flags&pathClosed != 0 }

// AddText attaches a text label to render inside this path (used for box
// interiors).
func (p *Path) AddText(t *Text) { p.text = append(p.text, t) }

// Text returns the labels attached to this path.
func (p *Path) Text() []*Text { return p.text }

// SetID renames the path's SVG element id, replacing characters that
// would be illegal inside an XML attribute value.
func (p *Path) SetID(id string) {
	p.id = strings.ReplaceAll(strings.ReplaceAll(id, `"`, "_"), " ", "_")
}

func (p *Path) ID() string { return p.id }

// SetOptions merges opt into the path's rendering options.
func (p *Path) SetOptions(opt map[string]string) {
	for k, v := range opt {
		p.options[k] = v
	}
}

func (p *Path) SetOption(opt, val string) { p.options[opt] = val }
func (p *Path) Option(opt string) string  { return p.options[opt] }
func (p *Path) Options() map[string]string { return p.options }

// OrderPoints rotates the point slice so that traversal starts at the
// topmost, then leftmost, vertex. Box rendering depends on starting at
// the top-left corner so that Bezier curve direction comes out right.
func (p *Path) OrderPoints() {
	if len(p.points) == 0 {
		return
	}
	minIdx := 0
	minY := p.points[0].Y
	minX := p.points[0].X
	for i := 1; i < len(p.points); i++ {
		switch {
		case p.points[i].Y < minY:
			minY = p.points[i].Y
			minX = p.points[i].X
			minIdx = i
		case p.points[i].Y == minY && p.points[i].X < minX:
			minX = p.points[i].X
			minIdx = i
		}
	}
	if minIdx != 0 {
		p.points = append(p.points[minIdx:], p.points[:minIdx]...)
	}
}

// HasPoint reports whether the grid point (gx, gy) lies within this
// closed path. Open paths never contain a point.
func (p *Path) HasPoint(gx, gy int) bool {
	if !p.IsClosed() {
		return false
	}
	return pointInPolygon(p.points, float64(gx), float64(gy))
}
