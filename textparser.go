package a2svg

// TextParser lifts every run of non-space characters out of the grid and
// anchors it as a Text object. A run that falls inside one or more boxes
// is attached to the most deeply nested box (the one with the greatest
// top-left coordinate) and colored for contrast against that box's fill;
// text outside any box defaults to black.
func (e *engine) parseText() {
	fontSize := 0.95 * e.cfg.Scale.Y
	e.groups.PushGroup("text")
	e.groups.SetOption("fill", "black")
	style := "font-family:" + e.cfg.FontFamily + ";font-size:" + formatCoord(fontSize) + "px"
	e.groups.SetOption("style", style)

	boxes := e.groups.Group("boxes")

	rows := e.grid.Rows()
	for row := 0; row < rows; row++ {
		cols := len(e.grid.rows[row])
		for i := 0; i < cols; i++ {
			if e.char(row, i) == ' ' {
				continue
			}

			t := newText(e.cfg.Scale, float64(i), float64(row))
			container := e.innermostBox(boxes, i, row)

			if container != nil {
				t.SetOption("fill", e.contrastFillFor(container, boxes, Point{GridX: i, GridY: row}))
			} else {
				t.SetOption("fill", "#000")
			}

			str, next := e.readTextRun(row, i, cols)
			i = next
			if str == "" {
				continue
			}
			t.SetString(str)

			if container != nil {
				t.SetOption("stroke", "none")
				t.SetOption("style", style)
				container.AddText(t)
			} else {
				e.groups.AddObject(t)
			}
		}
	}
}

// innermostBox finds the box queue entry with the greatest top-left
// coordinate among every box containing (gx, gy) — i.e. the most
// specifically nested one — and returns it, or nil if none contains the
// point.
func (e *engine) innermostBox(boxes []object, gx, gy int) *Path {
	var best *Path
	var bestTL Point
	haveBest := false

	for _, obj := range boxes {
		box := obj.(*Path)
		if !box.HasPoint(gx, gy) {
			continue
		}
		tl := box.Points()[0]
		if !haveBest || (tl.Y > bestTL.Y && tl.X > bestTL.X) {
			best = box
			bestTL = tl
			haveBest = true
		}
	}
	return best
}

// contrastFillFor walks outward from the innermost containing box to the
// least specific, picking the first one with a usable fill color and
// returning the text color that contrasts with it. If no containing box
// specifies a fill, text defaults to black.
func (e *engine) contrastFillFor(innermost *Path, boxes []object, p Point) string {
	// Re-derive the nesting chain: every box containing p, ordered from
	// most to least specific, matching the order the reference renderer's
	// boxQueue accumulates them in.
	type candidate struct {
		box *Path
		tl  Point
	}
	var chain []candidate
	for _, obj := range boxes {
		box := obj.(*Path)
		if box.HasPoint(p.GridX, p.GridY) {
			chain = append(chain, candidate{box, box.Points()[0]})
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		fill := resolveFill(chain[i].box.Option("fill"))
		if fill == "" {
			continue
		}
		color, err := accessibleTextColor(fill)
		if err != nil {
			continue
		}
		return color
	}
	return "#000"
}

// readTextRun consumes the stringy run starting at (row, start), allowing
// up to one embedded space before a run of non-space characters resumes,
// and returns the text and the index just past what it consumed.
func (e *engine) readTextRun(row, start, cols int) (string, int) {
	str := string(e.char(row, start))
	i := start + 1
	for i < cols && e.char(row, i) != ' ' {
		str += string(e.char(row, i))
		i++
		if i+1 < cols && e.char(row, i) == ' ' && e.char(row, i+1) != ' ' {
			str += " "
			i++
		}
	}
	return str, i
}
