// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usage renders help text and error messages for a cliparser.Registry.
package usage

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/yeetrun/cliparser/pkg/cliparser"
	"github.com/yeetrun/cliparser/pkg/tui"
)

// Source is the read-only view of a registry that help rendering needs.
type Source interface {
	Name() string
	Description() string
	Version() string
	ExecutablePath() string
	Options() []cliparser.OptionInfo
}

// Options selects the optional parts of the help text.
type Options struct {
	Full           bool // app description and per-option table
	ExecutablePath bool // "installed at" line, when a path is known
	Version        bool
	Color          tui.Colorizer
}

// Render returns the help text for src.
//
// The first line is the usage line: the application name followed by every
// option, optional ones in brackets.
func Render(src Source, opts Options) string {
	var b strings.Builder
	infos := src.Options()

	b.WriteString(src.Name())
	for _, info := range infos {
		if info.Optional() {
			fmt.Fprintf(&b, " [%s]", info.Name)
		} else {
			fmt.Fprintf(&b, " %s", info.Name)
		}
	}
	b.WriteString("\n")

	if opts.Version {
		fmt.Fprintf(&b, "\nversion: %s\n", src.Version())
	}
	if path := src.ExecutablePath(); opts.ExecutablePath && path != "" {
		fmt.Fprintf(&b, "\ninstalled at: %s\n", path)
	}
	b.WriteString("\n")

	if !opts.Full {
		return b.String()
	}

	if desc := src.Description(); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	if len(infos) == 0 {
		return b.String()
	}

	tw := tabwriter.NewWriter(&b, 0, 8, 3, ' ', 0)
	for _, info := range infos {
		fmt.Fprintf(tw, "  %s\t%s\n", opts.Color.Wrap(optionSynopsis(info), tui.StyleName...), info.Description)
	}
	tw.Flush()
	return b.String()
}

// optionSynopsis is the option name plus a value placeholder, e.g. "-n <int>".
// Flags take no value.
func optionSynopsis(info cliparser.OptionInfo) string {
	if info.Class == cliparser.ClassFlag {
		return info.Name
	}
	return fmt.Sprintf("%s <%s>", info.Name, info.Kind)
}

// FormatError prefixes every line of err's message with "error:".
func FormatError(err error, c tui.Colorizer) string {
	prefix := c.Wrap("error", tui.StyleError...) + ": "
	lines := strings.Split(err.Error(), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
