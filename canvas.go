package a2svg

// Config bundles everything a single conversion needs. A Config (and the
// Scale inside it) is a plain value: the only package-level state a
// conversion touches is the pair of atomic counters that number path and
// text element ids, so independent Parse calls can run concurrently.
type Config struct {
	// Scale controls the pixel size of one grid cell. The zero value
	// selects DefaultScale.
	Scale Scale
	// FontFamily is the CSS font-family list used for rendered text. The
	// zero value selects a monospace stack matching the reference
	// renderer's choice.
	FontFamily string
	// DisableBlurDropShadow selects the non-blurred drop-shadow filter,
	// which renders faster in some viewers at the cost of a harder edge.
	DisableBlurDropShadow bool
	// TabWidth is the number of columns a tab character expands to before
	// the grid is built. The zero value selects 8.
	TabWidth int
}

func (c Config) withDefaults() Config {
	c.Scale = c.Scale.orDefault()
	if c.FontFamily == "" {
		c.FontFamily = "Consolas,Monaco,Anonymous Pro,Anonymous,Bitstream Sans Mono,monospace"
	}
	if c.TabWidth == 0 {
		c.TabWidth = 8
	}
	return c
}

// Canvas is the parsed, geometrically resolved form of a diagram: every
// box, line, and text run has already been extracted from the grid and is
// ready to render. A Canvas holds no reference to package-level state, so
// it and the Config it was built from can be reused or discarded freely.
type Canvas struct {
	cfg    Config
	groups *Groups
	cols   int
	rows   int
}

// engine carries the mutable working state shared by the pipeline stages
// (BoxParser, LineParser, Clearer, TextParser) while a single diagram is
// being parsed. It never outlives a single call to Parse.
type engine struct {
	cfg          Config
	grid         *Grid
	groups       *Groups
	commands     map[string]map[string]string
	clearCorners [][2]int
}

// Parse extracts every box, line, and text run from data and returns a
// Canvas ready to Render. Parse never fails: malformed command-table JSON
// is dropped rather than propagated, and a ragged or empty grid degrades
// to an empty drawing rather than panicking.
func Parse(data []byte, cfg Config) Canvas {
	cfg = cfg.withDefaults()

	commands, cleaned := parseCommands(data)

	e := &engine{
		cfg:      cfg,
		grid:     newGrid(cleaned, cfg.TabWidth),
		groups:   newGroups(),
		commands: commands,
	}

	e.parseBoxes()
	e.parseLines()

	for _, corner := range e.clearCorners {
		e.grid.Blank(corner[0], corner[1])
	}

	e.parseText()

	return Canvas{
		cfg:    cfg,
		groups: e.groups,
		cols:   e.grid.Cols(),
		rows:   e.grid.Rows(),
	}
}

func (e *engine) char(row, col int) char {
	return char(e.grid.At(row, col))
}
