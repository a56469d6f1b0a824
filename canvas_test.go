// Copyright 2012 - 2015 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func parseLines(t *testing.T, lines ...string) Canvas {
	t.Helper()
	return Parse([]byte(strings.Join(lines, "\n")), Config{})
}

// Scenario A: simple rectangle.
func TestParseSimpleRectangle(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		"+---+",
		"|   |",
		"+---+",
	)

	boxes := c.groups.Group("boxes")
	ut.AssertEqual(t, 1, len(boxes))

	box := boxes[0].(*Path)
	ut.AssertEqual(t, true, box.IsClosed())
	pts := box.Points()
	ut.AssertEqual(t, 4, len(pts))
	for _, p := range pts {
		ut.AssertEqual(t, true, p.Flags&FlagPoint != 0)
	}

	rendered := box.Render()
	ut.AssertEqual(t, true, strings.Contains(rendered, `fill="#fff"`))
}

// Scenario B: rectangle with rounded corners.
func TestParseRoundedRectangle(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		".---.",
		"|   |",
		"'---'",
	)

	boxes := c.groups.Group("boxes")
	ut.AssertEqual(t, 1, len(boxes))

	box := boxes[0].(*Path)
	ut.AssertEqual(t, 4, len(box.Points()))
	for _, p := range box.Points() {
		ut.AssertEqual(t, true, p.Flags&FlagControl != 0)
	}

	d := box.ordinaryPathD()
	ut.AssertEqual(t, 4, strings.Count(d, "Q"))
}

// Scenario C: two boxes sharing an edge must not be double-counted.
func TestParseTouchingBoxes(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		"+---+---+",
		"|   |   |",
		"+---+---+",
	)

	boxes := c.groups.Group("boxes")
	ut.AssertEqual(t, 2, len(boxes))
	for _, obj := range boxes {
		ut.AssertEqual(t, 4, len(obj.(*Path).Points()))
	}
}

// Scenario D: horizontal arrow with an end marker.
func TestParseHorizontalArrow(t *testing.T) {
	t.Parallel()
	c := parseLines(t, "--->")

	lines := c.groups.Group("lines")
	ut.AssertEqual(t, 1, len(lines))

	line := lines[0].(*Path)
	pts := line.Points()
	ut.AssertEqual(t, 2, len(pts))
	ut.AssertEqual(t, 0, pts[0].GridX)
	ut.AssertEqual(t, 0, pts[0].GridY)
	ut.AssertEqual(t, 3, pts[1].GridX)
	ut.AssertEqual(t, true, pts[1].Flags&FlagEndMarker != 0)

	rendered := line.Render()
	ut.AssertEqual(t, true, strings.Contains(rendered, `marker-end="url(#Pointer)"`))
}

// Scenario E: line with a curved bend.
func TestParseLineWithBend(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		"---.",
		"   |",
		"   v",
	)

	lines := c.groups.Group("lines")
	ut.AssertEqual(t, 1, len(lines))

	line := lines[0].(*Path)
	d := line.ordinaryPathD()
	ut.AssertEqual(t, true, strings.Contains(d, "Q"))

	rendered := line.Render()
	ut.AssertEqual(t, true, strings.Contains(rendered, `marker-end="url(#Pointer)"`))
}

// Scenario F: a box with a dark fill gets white text.
func TestParseTextContrastOnDarkBox(t *testing.T) {
	t.Parallel()
	c := Parse([]byte(strings.Join([]string{
		"+-----+",
		"|[1]  |",
		"| foo |",
		"+-----+",
		`[1]: {"fill":"#000"}`,
	}, "\n")), Config{})

	boxes := c.groups.Group("boxes")
	ut.AssertEqual(t, 1, len(boxes))
	box := boxes[0].(*Path)
	ut.AssertEqual(t, "#000", box.Option("fill"))

	ut.AssertEqual(t, 1, len(box.Text()))
	ut.AssertEqual(t, "foo", box.Text()[0].str)
	ut.AssertEqual(t, "#fff", box.Text()[0].options["fill"])
}

func TestParseTextInDarkBox(t *testing.T) {
	t.Parallel()
	c := Parse([]byte(strings.Join([]string{
		"+---+",
		"|foo|",
		"+---+",
		`[1]: {"fill":"#000"}`,
	}, "\n")), Config{})

	boxes := c.groups.Group("boxes")
	box := boxes[0].(*Path)
	box.SetOption("fill", "#000")

	ut.AssertEqual(t, 1, len(box.Text()))
	text := box.Text()[0]
	ut.AssertEqual(t, "foo", text.str)
}

// Boundary: rows of unequal length don't block detection above/below.
func TestRaggedRows(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		"+---+",
		"|",
		"+---+",
	)
	boxes := c.groups.Group("boxes")
	ut.AssertEqual(t, 1, len(boxes))
}

// Boundary: a corner on the outer edge of the grid must not read out of
// bounds.
func TestCornerAtGridEdge(t *testing.T) {
	t.Parallel()
	c := parseLines(t, "+")
	ut.AssertEqual(t, 0, len(c.groups.Group("boxes")))
}

func TestRenderIncludesDefsAndGroups(t *testing.T) {
	t.Parallel()
	c := parseLines(t,
		"+---+",
		"|hi |",
		"+---+",
	)
	svg := string(c.Render())
	ut.AssertEqual(t, true, strings.Contains(svg, `id="dsFilter"`))
	ut.AssertEqual(t, true, strings.Contains(svg, `id="Pointer"`))
	ut.AssertEqual(t, true, strings.Contains(svg, `id="boxes"`))
	ut.AssertEqual(t, true, strings.Contains(svg, `id="lines"`))
	ut.AssertEqual(t, true, strings.Contains(svg, `id="text"`))
}

func TestCustomShapeSubstitution(t *testing.T) {
	t.Parallel()
	c := Parse([]byte(strings.Join([]string{
		"+----+",
		"|[1] |",
		"+----+",
		`[1]: {"a2s:type":"storage"}`,
	}, "\n")), Config{})

	boxes := c.groups.Group("boxes")
	box := boxes[0].(*Path)
	rendered := box.Render()
	ut.AssertEqual(t, true, strings.Contains(rendered, "A "))
}
