package a2svg

import "strings"

// object is anything a Groups can render as one of its members: a Path or
// a Text.
type object interface {
	Render() string
}

// Groups collects the parsed boxes, lines, and text runs into named SVG
// <g> groups, preserving insertion order of both the groups themselves
// and the objects within each — unlike a bare map, so rendered output is
// deterministic across runs of the same input.
type Groups struct {
	order   []string
	members map[string][]object
	options map[string]map[string]string
	stack   []string
	current string
}

func newGroups() *Groups {
	return &Groups{
		members: map[string][]object{},
		options: map[string]map[string]string{},
	}
}

// PushGroup makes name the active group, creating it if it doesn't exist.
func (g *Groups) PushGroup(name string) {
	if _, ok := g.members[name]; !ok {
		g.members[name] = []object{}
		g.options[name] = map[string]string{}
		g.order = append(g.order, name)
	}
	g.stack = append(g.stack, name)
	g.current = name
}

// PopGroup restores the previously active group.
func (g *Groups) PopGroup() {
	if len(g.stack) < 2 {
		g.stack = g.stack[:0]
		g.current = ""
		return
	}
	g.current = g.stack[len(g.stack)-2]
	g.stack = g.stack[:len(g.stack)-1]
}

// AddObject appends o to the currently active group.
func (g *Groups) AddObject(o object) {
	g.members[g.current] = append(g.members[g.current], o)
}

// Group returns the objects belonging to name, in insertion order.
func (g *Groups) Group(name string) []object {
	return g.members[name]
}

// SetOption sets a rendering option shared by every object in the active
// group (e.g. the default stroke/fill for the "boxes" group).
func (g *Groups) SetOption(opt, val string) {
	g.options[g.current][opt] = val
}

// Render emits one <g> element per group, in the order groups were first
// pushed.
func (g *Groups) Render() string {
	var b strings.Builder
	for _, name := range g.order {
		b.WriteString("<g id=\"")
		b.WriteString(name)
		b.WriteString("\" ")
		for _, kv := range sortedOptions(g.options[name]) {
			b.WriteString(kv[0])
			b.WriteString("=\"")
			b.WriteString(kv[1])
			b.WriteString("\" ")
		}
		b.WriteString(">\n")
		for _, obj := range g.members[name] {
			b.WriteString(obj.Render())
		}
		b.WriteString("</g>\n")
	}
	return b.String()
}
