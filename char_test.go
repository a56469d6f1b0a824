// Copyright 2012 - 2015 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"testing"

	"github.com/maruel/ut"
)

func TestCharIsEdgeDirected(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, true, char('-').isEdge(DirLeft))
	ut.AssertEqual(t, true, char('-').isEdge(DirRight))
	ut.AssertEqual(t, false, char('-').isEdge(DirUp))
	ut.AssertEqual(t, true, char('|').isEdge(DirUp))
	ut.AssertEqual(t, true, char('|').isEdge(DirDown))
	ut.AssertEqual(t, false, char('|').isEdge(DirLeft))

	// ':' is a vertical dashed edge, per the resolved bareword-glyph
	// question: it counts for DirUp/DirDown and for DirUndefined "is this
	// an edge of any orientation" queries, but never as a horizontal edge.
	ut.AssertEqual(t, true, char(':').isEdge(DirUndefined))
	ut.AssertEqual(t, true, char(':').isEdge(DirUp))
	ut.AssertEqual(t, true, char(':').isEdge(DirDown))

	// 'o'/'X' ticks count as an edge regardless of direction, so the line
	// walker passes straight through them.
	ut.AssertEqual(t, true, char('o').isEdge(DirUp))
	ut.AssertEqual(t, true, char('X').isEdge(DirLeft))
}

func TestCharIsBoxEdgeExcludesPlus(t *testing.T) {
	t.Parallel()
	// '+' is always a corner, never an edge: a wall follower must stop and
	// turn on it rather than walk through it.
	ut.AssertEqual(t, false, char('+').isBoxEdge(DirUndefined))
	ut.AssertEqual(t, false, char('+').isBoxEdge(DirUp))
	ut.AssertEqual(t, false, char('+').isBoxEdge(DirLeft))
}

func TestCharIsCornerVsIsBoxCorner(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, true, char('+').isCorner())
	ut.AssertEqual(t, true, char('+').isBoxCorner())
	ut.AssertEqual(t, true, char('.').isCorner())
	ut.AssertEqual(t, true, char('.').isBoxCorner())
	ut.AssertEqual(t, true, char('\'').isBoxCorner())
}

func TestCharIsRoundedCorner(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, true, char('.').isRoundedCorner())
	ut.AssertEqual(t, true, char('\'').isRoundedCorner())
	ut.AssertEqual(t, false, char('+').isRoundedCorner())
}

func TestCharMarkerAndTick(t *testing.T) {
	t.Parallel()
	for _, r := range []rune{'v', '^', '<', '>'} {
		ut.AssertEqual(t, true, char(r).isMarker())
	}
	ut.AssertEqual(t, false, char('+').isMarker())

	ut.AssertEqual(t, true, char('o').isTick())
	ut.AssertEqual(t, true, char('o').isDot())
	ut.AssertEqual(t, true, char('X').isTick())
	ut.AssertEqual(t, false, char('X').isDot())
}

func TestDirectionDelta(t *testing.T) {
	t.Parallel()
	cases := []struct {
		dir          Direction
		dRow, dCol   int
	}{
		{DirUp, -1, 0},
		{DirDown, 1, 0},
		{DirLeft, 0, -1},
		{DirRight, 0, 1},
		{DirNE, -1, 1},
		{DirSE, 1, 1},
		{DirUndefined, 0, 0},
	}
	for _, c := range cases {
		dRow, dCol := c.dir.delta()
		ut.AssertEqual(t, c.dRow, dRow)
		ut.AssertEqual(t, c.dCol, dCol)
	}
}
