package a2svg

import (
	"sort"
	"strconv"
	"strings"
)

// formatCoord renders a pixel coordinate the way the original PHP-derived
// output did: an integer whenever the value has no fractional part, a
// trimmed decimal otherwise.
func formatCoord(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strings.TrimRight(strconv.FormatFloat(v, 'f', 3, 64), "0")
}

// sortedOptions returns opt's entries sorted by key, skipping any
// "a2s:"-prefixed pseudo-attribute, which exists only to drive the parser
// and must never reach the rendered SVG.
func sortedOptions(opt map[string]string) [][2]string {
	keys := make([]string, 0, len(opt))
	for k := range opt {
		if strings.HasPrefix(k, "a2s:") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, opt[k]})
	}
	return out
}
