package a2svg

// LineParser finds open polylines. Unlike boxes, lines have no
// intrinsically marked starting point (markers are optional), so the grid
// is scanned column-major — vertically first, then across — to make sure
// a line is always picked up from its correct starting edge rather than
// from somewhere in its middle.
func (e *engine) parseLines() {
	e.groups.PushGroup("lines")
	e.groups.SetOption("stroke", "black")
	e.groups.SetOption("stroke-width", "2")
	e.groups.SetOption("fill", "none")

	maxCols := e.grid.Cols()
	rows := e.grid.Rows()

	for c := 0; c < maxCols; c++ {
		for r := 0; r < rows; r++ {
			if c >= len(e.grid.rows[r]) {
				continue
			}

			dir := e.lineStartDirection(r, c)
			if dir == DirUndefined {
				continue
			}

			line := newPath()
			ch := e.char(r, c)
			if ch == ':' || ch == '=' {
				line.SetOption("stroke-dasharray", "5 5")
			}
			if ch.isMarker() {
				// The line starts at an arrowhead facing back into the
				// diagram, so this end renders with the inverted marker.
				line.AddMarker(e.cfg.Scale, float64(c), float64(r), FlagStartMarker)
			} else {
				line.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagPoint)
			}

			dRow, dCol := dir.delta()
			e.walk(line, r+dRow, c+dCol, dir, 0)

			// Leaves corners intact so later lines/boxes can still share them.
			e.clearObject(line)
			e.groups.AddObject(line)

			if ch.isCorner() {
				// A corner may be the start of more than one line; retry this
				// row once more before moving on.
				r--
			}
		}
	}

	e.groups.PopGroup()
}

// lineStartDirection inspects (r, c) and its neighbors to decide whether
// this cell is the start of a line and, if so, which direction the line
// heads in. It records no marker or dash-array option, since parseLines
// hasn't created the line yet; it returns only the direction, and
// parseLines re-derives the marker/dash decision by re-reading the same
// cell when it actually builds the Path.
func (e *engine) lineStartDirection(r, c int) Direction {
	switch e.char(r, c) {
	case '<':
		if east := e.char(r, c+1); east.isEdge(DirRight) || east.isCorner() {
			return DirRight
		}
	case '^':
		if south := e.char(r+1, c); south.isEdge(DirDown) || south.isCorner() {
			return DirDown
		}
	case '>':
		if west := e.char(r, c-1); west.isEdge(DirLeft) || west.isCorner() {
			return DirLeft
		}
	case 'v':
		if north := e.char(r-1, c); north.isEdge(DirUp) || north.isCorner() {
			return DirUp
		}
	case ':', '|':
		n, s := e.char(r-1, c), e.char(r+1, c)
		if (s == '|' || s == ':' || s.isCorner()) && n != '|' && n != ':' && !n.isCorner() && n != '^' {
			return DirDown
		}
		if (n == '|' || n == ':' || n.isCorner()) && s != '|' && s != ':' && !s.isCorner() && s != 'v' {
			return DirUp
		}
	case '=', '-':
		w, ea := e.char(r, c-1), e.char(r, c+1)
		if (w == '-' || w == '=' || w.isCorner()) && ea != '=' && ea != '-' && !ea.isCorner() && ea != '>' {
			return DirLeft
		}
		if (ea == '-' || ea == '=' || ea.isCorner()) && w != '=' && w != '-' && !w.isCorner() && w != '<' {
			return DirRight
		}
	case '.', '\'', '+':
		ch := e.char(r, c)
		n, w, s, ea := e.char(r-1, c), e.char(r, c-1), e.char(r+1, c), e.char(r, c+1)
		switch {
		case (w == '=' || w == '-') && n != '|' && n != ':' && w != '-' && ea != '=' && ea != '|' && s != ':':
			return DirLeft
		case (ea == '=' || ea == '-') && n != '|' && n != ':' && w != '-' && w != '=' && s != '|' && s != ':':
			return DirRight
		case (s == '|' || s == ':') && n != '|' && n != ':' && w != '-' && w != '=' && ea != '-' && ea != '=' && !sameRoundedCorner(ch, s):
			return DirDown
		case (n == '|' || n == ':') && s != '|' && s != ':' && w != '-' && w != '=' && ea != '-' && ea != '=' && !sameRoundedCorner(ch, n):
			return DirUp
		}
	}
	return DirUndefined
}

// walk is the recursive LineWalker: it follows a straight run of edge
// glyphs in dir, and on hitting a corner prefers to continue straight on
// before bending — in priority order UP/DOWN/RIGHT/LEFT as applicable —
// never doubling back the way it came. It terminates the line at a
// marker (recorded as an end marker) or at the first cell that is
// neither an edge nor a corner (recorded as a plain endpoint).
func (e *engine) walk(path *Path, row, col int, dir Direction, d int) {
	d++
	dRow, dCol := dir.delta()
	r, c := row, col

	cur := e.char(r, c)
	for cur.isEdge(dir) {
		if cur == ':' || cur == '=' {
			path.SetOption("stroke-dasharray", "5 5")
		}
		if cur.isTick() {
			if cur.isDot() {
				path.AddTick(e.cfg.Scale, float64(c), float64(r), FlagDot)
			} else {
				path.AddTick(e.cfg.Scale, float64(c), float64(r), FlagTick)
			}
			path.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagPoint)
		}
		c += dCol
		r += dRow
		cur = e.char(r, c)
	}

	switch {
	case cur.isCorner():
		e.walkCorner(path, r, c, dir, d, cur)
	case cur.isMarker():
		path.AddMarker(e.cfg.Scale, float64(c), float64(r), FlagEndMarker)
	default:
		path.AddPoint(e.cfg.Scale, float64(c-dCol), float64(r-dRow), FlagPoint)
	}
}

func (e *engine) walkCorner(path *Path, r, c int, dir Direction, d int, cur char) {
	if cur == '.' || cur == '\'' {
		path.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagControl)
	} else {
		path.AddPoint(e.cfg.Scale, float64(c), float64(r), FlagPoint)
	}
	if path.IsClosed() {
		path.PopPoint()
		return
	}

	dRow, dCol := dir.delta()
	n, s, ea, w := e.char(r-1, c), e.char(r+1, c), e.char(r, c+1), e.char(r, c-1)
	next := e.char(r+dRow, c+dCol)

	switch {
	case next.isCorner() || next.isEdge(dir):
		e.walk(path, r+dRow, c+dCol, dir, d)
	case dir != DirDown && (n.isCorner() || n.isEdge(DirUp)) && !sameRoundedCorner(cur, n):
		e.walk(path, r-1, c, DirUp, d)
	case dir != DirUp && (s.isCorner() || s.isEdge(DirDown)) && !sameRoundedCorner(cur, s):
		e.walk(path, r+1, c, DirDown, d)
	case dir != DirLeft && (ea.isCorner() || ea.isEdge(DirRight)):
		e.walk(path, r, c+1, DirRight, d)
	case dir != DirRight && (w.isCorner() || w.isEdge(DirLeft)):
		e.walk(path, r, c-1, DirLeft, d)
	}
}
