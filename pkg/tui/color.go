// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Styles used by help and error output.
var (
	StyleError = []color.Attribute{color.Bold, color.FgRed}
	StyleName  = []color.Attribute{color.Bold}
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer for w. Colour stays off unless enabled is
// set, NO_COLOR is unset, TERM is not dumb and w is a terminal.
func NewColorizer(enabled bool, w io.Writer) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return Colorizer{}
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap styles text with attrs when colour is enabled.
func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	style := color.New(attrs...)
	style.EnableColor()
	return style.Sprint(text)
}
