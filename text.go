package a2svg

import (
	"html"
	"strconv"
	"strings"
	"sync/atomic"
)

var nextTextID atomic.Int64

func newTextID() string {
	return strconv.FormatInt(nextTextID.Add(1)-1, 10)
}

// Text is a run of non-space characters lifted from the grid, anchored at
// the point where it was found. The -0.6/+0.3 grid offset in newText
// nudges the anchor so that monospace glyphs sit visually centered on the
// cell they were read from rather than hugging its top-left corner.
type Text struct {
	point   Point
	str     string
	options map[string]string
	id      string
}

func newText(scale Scale, gx, gy float64) *Text {
	return &Text{
		point:   newPoint(scale, gx-0.6, gy+0.3),
		options: map[string]string{},
		id:      newTextID(),
	}
}

func (t *Text) Point() Point { return t.point }

func (t *Text) SetString(s string) { t.str = s }

func (t *Text) SetOption(opt, val string) { t.options[opt] = val }

func (t *Text) SetOptions(opt map[string]string) {
	for k, v := range opt {
		t.options[k] = v
	}
}

func (t *Text) SetID(id string) {
	t.id = strings.ReplaceAll(strings.ReplaceAll(id, `"`, "_"), " ", "_")
}

// Render emits the <text> element for this label.
func (t *Text) Render() string {
	var b strings.Builder
	b.WriteString("<text x=\"")
	b.WriteString(formatCoord(t.point.X))
	b.WriteString("\" y=\"")
	b.WriteString(formatCoord(t.point.Y))
	b.WriteString("\" id=\"text")
	b.WriteString(t.id)
	b.WriteString("\" ")
	for _, kv := range sortedOptions(t.options) {
		b.WriteString(kv[0])
		b.WriteString("=\"")
		b.WriteString(kv[1])
		b.WriteString("\" ")
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(t.str))
	b.WriteString("</text>\n")
	return b.String()
}
