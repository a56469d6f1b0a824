// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package a2svg converts ASCII-art diagrams into SVG. It supports diagrams
// containing UTF-8 content, custom styling of polygons, line segments, and
// text.
//
// The main interface to the library is Parse, which extracts every box,
// line, and text run from a diagram into a Canvas ready to Render.
//
// Example usage:
//
//	import (
//	    "fmt"
//	    "os"
//
//	    a2svg "github.com/asciigrid/a2svg"
//	)
//
//	canvas := a2svg.Parse(diagram, a2svg.Config{})
//	if _, err := os.Stdout.Write(canvas.Render()); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
package a2svg
