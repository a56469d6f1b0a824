// Copyright 2012 - 2015 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

func TestCustomShapePathUnknownShape(t *testing.T) {
	t.Parallel()
	ut.AssertEqual(t, "", customShapePath("nonexistent", 0, 0, 100, 100))
}

func TestCustomShapePathStorageIdentityScale(t *testing.T) {
	t.Parallel()
	d := customShapePath("storage", 0, 0, 100, 100)
	ut.AssertEqual(t, true, strings.HasPrefix(d, "M 0 100"))
	ut.AssertEqual(t, true, strings.Contains(d, "Z"))
}

func TestCustomShapePathDocumentScalesAndTranslates(t *testing.T) {
	t.Parallel()
	d := customShapePath("document", 10, 20, 110, 120)
	// Translating by (10, 20) moves the template's origin (0, 0) there.
	ut.AssertEqual(t, true, strings.HasPrefix(d, "M 10 120"))
}

func TestParseTemplateTokenizesCommands(t *testing.T) {
	t.Parallel()
	cmds := parseTemplate("M 0 100 L 5 5 Z")
	ut.AssertEqual(t, 3, len(cmds))
	ut.AssertEqual(t, "M", cmds[0].letter)
	ut.AssertEqual(t, 2, len(cmds[0].args))
	ut.AssertEqual(t, "Z", cmds[2].letter)
	ut.AssertEqual(t, 0, len(cmds[2].args))
}
