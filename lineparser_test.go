// Copyright 2012 - 2015 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestLineStartDirectionMarkers(t *testing.T) {
	t.Parallel()
	e := &engine{grid: newGrid([]byte("<---"), 8)}
	ut.AssertEqual(t, DirRight, e.lineStartDirection(0, 0))

	// An end-marker '>' still reports a direction in isolation (it points
	// back at its neighboring edge); parseLines never asks it to start a
	// second line because the column-major scan already consumed it while
	// walking the line from its true start.
	e = &engine{grid: newGrid([]byte("--->"), 8)}
	ut.AssertEqual(t, DirLeft, e.lineStartDirection(0, 3))
}

func TestLineStartDirectionPlainEdgeNeedsNeighbor(t *testing.T) {
	t.Parallel()
	// A lone '-' with nothing on either side starts no line.
	e := &engine{grid: newGrid([]byte("  -  "), 8)}
	ut.AssertEqual(t, DirUndefined, e.lineStartDirection(0, 2))
}

func TestParseDashedLine(t *testing.T) {
	t.Parallel()
	// ':' is the vertical dashed-edge glyph and '=' the horizontal one.
	c := parseLines(t, "<===>")
	lines := c.groups.Group("lines")
	ut.AssertEqual(t, 1, len(lines))
	rendered := lines[0].Render()
	ut.AssertEqual(t, true, strings.Contains(rendered, `stroke-dasharray="5 5"`))
}

func TestParseLineWithTickDecoration(t *testing.T) {
	t.Parallel()
	c := parseLines(t, "--o--")
	lines := c.groups.Group("lines")
	ut.AssertEqual(t, 1, len(lines))
	line := lines[0].(*Path)
	ut.AssertEqual(t, 1, len(line.Ticks()))
	ut.AssertEqual(t, true, line.Ticks()[0].Flags&FlagDot != 0)
}
