package a2svg

import (
	"encoding/json"
	"regexp"
	"strconv"
)

// commandPattern matches a trailing reference line of the form
// "[identifier]: {json-blob}" — the option table a diagram can attach
// itself via "[N]" bracket references. The JSON blob may not contain
// nested objects as values, or the regex breaks.
var commandPattern = regexp.MustCompile(`(?ms)^\[([^\]]+)\]:?\s+({[^}]+?})`)

// commandStripPattern removes every reference line (including ones whose
// JSON failed to parse) from the grid once commands have been collected,
// so the table never shows up as stray diagram text.
var commandStripPattern = regexp.MustCompile(`(?ms)^\[([^\]]+)\](:?)\s+.*`)

// findCommands looks for a "[ref]" bracket immediately after box's
// top-left corner and, if present, applies the referenced command-table
// entry's options to box, returning the reference name. The whole "[ref]"
// is blanked out of the grid so it never shows up as ordinary text; if
// the entry supplies a2s:label, that label is written over those cells
// instead and is then picked up as the box's text.
func (e *engine) findCommands(box *Path) string {
	pts := box.Points()
	startX := pts[0].GridX + 1
	startY := pts[0].GridY + 1

	if e.char(startY, startX) != '[' {
		return ""
	}

	x := startX + 1
	ref := ""
	ch := e.char(startY, x)
	x++
	for ch != ']' && ch != ' ' {
		ref += string(rune(ch))
		ch = e.char(startY, x)
		x++
	}
	if ch != ']' {
		return ""
	}

	// An unknown reference is left untouched in the grid as ordinary text
	// (spec.md §7: malformed option references degrade gracefully).
	opts, ok := e.commands[ref]
	if !ok {
		return ""
	}

	if opts["a2s:delref"] == "" && opts["a2s:label"] == "" {
		for i := 0; i < len(ref)+2; i++ {
			e.grid.Blank(startY, startX+i)
		}
	} else {
		label := opts["a2s:label"]
		length := len(ref) + 2
		runes := []rune(label)
		for i := 0; i < length; i++ {
			if i < len(runes) {
				e.grid.Set(startY, startX+i, runes[i])
			} else {
				e.grid.Blank(startY, startX+i)
			}
		}
	}

	box.SetOptions(opts)
	return ref
}

func pointKey(gridY, gridX int) string {
	return strconv.Itoa(gridY) + "," + strconv.Itoa(gridX)
}

// parseCommands extracts the "[id]: {...}" reference table from data and
// returns the table, keyed by id, along with the data with those lines
// removed.
func parseCommands(data []byte) (map[string]map[string]string, []byte) {
	commands := map[string]map[string]string{}
	for _, match := range commandPattern.FindAllSubmatch(data, -1) {
		opts := map[string]string{}
		// Malformed JSON yields an empty option set rather than failing the
		// whole parse; the reference id is still consumed.
		_ = json.Unmarshal(match[2], &opts)
		commands[string(match[1])] = opts
	}
	cleaned := commandStripPattern.ReplaceAll(data, nil)
	return commands, cleaned
}
