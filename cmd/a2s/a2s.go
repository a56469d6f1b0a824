// Copyright 2012 - 2015 The ASCIIToSVG Contributors
// All rights reserved.

// Command a2s converts an ASCII-art diagram into an SVG document. It is an
// external collaborator of the a2svg core: all file I/O, flag parsing, and
// logging live here rather than in the parser itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/asciigrid/a2svg"
)

const logo = `.-------------------------.
|                         |
| .---.-. .-----. .-----. |
| | .-. | +-->  | |  <--| |
| | '-' | |  <--| +-->  | |
| '---'-' '-----' '-----' |
|  ascii     2      svg   |
|                         |
'-------------------------'
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "a2s: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", logo)
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	in := flag.String("i", "-", `Path to input text file. If set to "-" (hyphen), stdin is used.`)
	out := flag.String("o", "-", `Path to output SVG file. If set to "-" (hyphen), stdout is used.`)
	noBlur := flag.Bool("b", false, "Disable drop-shadow blur.")
	font := flag.String("f", "", "Font family to use. Defaults to a monospace stack.")
	scale := flag.String("s", "9,16", "Grid scale in pixels, as \"x,y\".")
	verbose := flag.Bool("v", false, "Log structural decisions to stderr.")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scaleX, scaleY, err := parseScale(*scale)
	if err != nil {
		return fmt.Errorf("a2s: %w", err)
	}

	input, err := readInput(*in)
	if err != nil {
		logger.Error("reading input", "error", err)
		return fmt.Errorf("a2s: reading input: %w", err)
	}
	logger.Debug("read input", "bytes", len(input), "source", *in)

	cfg := a2svg.Config{
		Scale:                 a2svg.Scale{X: scaleX, Y: scaleY},
		FontFamily:            *font,
		DisableBlurDropShadow: *noBlur,
	}
	canvas := a2svg.Parse(input, cfg)
	svg := canvas.Render()
	logger.Debug("rendered svg", "bytes", len(svg), "blur", !*noBlur)

	if err := writeOutput(*out, svg); err != nil {
		logger.Error("writing output", "error", err)
		return fmt.Errorf("a2s: writing output: %w", err)
	}
	return nil
}

func parseScale(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid scaling factor %q", s)
	}
	xi, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	yi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return float64(xi), float64(yi), nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0666)
}
