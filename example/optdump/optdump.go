// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// optdump declares one option of every supported kind, parses argv into them
// and prints the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/yeetrun/cliparser/pkg/cliparser"
	"github.com/yeetrun/cliparser/pkg/optfile"
	"github.com/yeetrun/cliparser/pkg/tui"
	"github.com/yeetrun/cliparser/pkg/usage"
)

func newRegistry() *cliparser.Registry {
	return cliparser.New("optdump", "print every option after parsing argv.", "0.3.0").
		Required("-n", "integer", cliparser.KindInt).
		Required("-d", "double", cliparser.KindFloat64).
		Required("-b", "bool", cliparser.KindBool).
		Required("-f", "file", cliparser.KindString).
		Optional("--flag", "an optional bool", cliparser.ValueOf(false)).
		Optional("-q", "optional float", cliparser.ValueOf(float32(3.22))).
		Optional("-i", "optional int32", cliparser.ValueOf(int32(-1))).
		Optional("-l", "optional int64", cliparser.ValueOf(int64(1)<<40)).
		Optional("-x", "optional extended float", cliparser.ValueOf(cliparser.Float80(0.1))).
		Optional("--dump-defaults", "write optional values as a defaults file (toml or yaml) and exit", cliparser.ValueOf("")).
		Flag("--help", "print help and ignore everything else")
}

var errUsage = errors.New("usage error")

func run(args []string, stdout, stderr io.Writer) error {
	reg := newRegistry()
	if err := reg.Err(); err != nil {
		return err
	}
	help := func() {
		fmt.Fprint(stdout, usage.Render(reg, usage.Options{
			Full:           true,
			ExecutablePath: true,
			Version:        true,
			Color:          tui.NewColorizer(true, stdout),
		}))
	}

	if err := reg.Parse(args); err != nil {
		if cliparser.MustGet[bool](reg, "--help") {
			help()
			return nil
		}
		fmt.Fprintln(stderr, usage.FormatError(err, tui.NewColorizer(true, stderr)))
		return errUsage
	}
	if cliparser.MustGet[bool](reg, "--help") {
		fmt.Fprintln(stdout, "The command line was parsed successfully. Since --help was received, everything else is ignored.")
		help()
		return nil
	}

	if format := cliparser.MustGet[string](reg, "--dump-defaults"); format != "" {
		file := optfile.FromRegistry(reg)
		delete(file.Defaults, "--dump-defaults")
		return file.Encode(stdout, optfile.Format(format))
	}

	fmt.Fprintln(stdout, "Passed args:")
	tw := tabwriter.NewWriter(stdout, 0, 8, 1, ' ', 0)
	for _, info := range reg.Options() {
		fmt.Fprintf(tw, "\t%s:\t%s\t(%s)\n", info.Name, info.Value, info.Kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	var overridden []string
	for _, info := range reg.Options() {
		if info.Optional() && info.SetByUser {
			overridden = append(overridden, info.Name)
		}
	}
	if len(overridden) == 0 {
		fmt.Fprintln(stdout, "No optional option was passed, all kept their default value.")
	}
	for _, name := range overridden {
		fmt.Fprintf(stdout, "The default value of the option %q was overridden by the user\n", name)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("optdump: ")

	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Print(err)
		}
		os.Exit(1)
	}
}
