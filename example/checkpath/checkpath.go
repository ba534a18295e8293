// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// checkpath checks whether a path exists and prints the result n times.
//
// Defaults for -n and --ignore-n can be kept in a TOML or YAML file named by
// CHECKPATH_DEFAULTS.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/yeetrun/cliparser/pkg/cliparser"
	"github.com/yeetrun/cliparser/pkg/optfile"
	"github.com/yeetrun/cliparser/pkg/tui"
	"github.com/yeetrun/cliparser/pkg/usage"
)

const version = "1.0.0"

func newRegistry() *cliparser.Registry {
	return cliparser.New("checkpath", "check if the path provided exists and print the result n times", version).
		Required("-p", "path", cliparser.KindString).
		Optional("-n", "times. Default value: 1", cliparser.ValueOf(1)).
		Flag("--ignore-n", "ignore the -n flag and print the result 3 times.")
}

var errUsage = errors.New("usage error")

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) error {
	reg := newRegistry()
	if err := reg.Err(); err != nil {
		return err
	}

	if path := getenv("CHECKPATH_DEFAULTS"); path != "" {
		file, err := optfile.Load(path)
		if err != nil {
			return err
		}
		if err := file.Apply(reg, optfile.ApplyOptions{}); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := reg.Parse(args); err != nil {
		color := tui.NewColorizer(true, stderr)
		fmt.Fprintln(stderr, usage.FormatError(err, color))
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, usage.Render(reg, usage.Options{Full: true, Version: true}))
		return errUsage
	}

	p := cliparser.MustGet[string](reg, "-p")
	n := cliparser.MustGet[int](reg, "-n")
	if cliparser.MustGet[bool](reg, "--ignore-n") {
		fmt.Fprintln(stdout, "--ignore-n received. Setting n = 3")
		n = 3
	}
	if n < 1 {
		return fmt.Errorf("n must be strictly positive, got %d", n)
	}

	result := p + " does not exist."
	if _, err := os.Stat(p); err == nil {
		result = p + " exists."
	}
	for range n {
		fmt.Fprintln(stdout, result)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("checkpath: ")

	if err := run(os.Args, os.Getenv, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Print(err)
		}
		os.Exit(1)
	}
}
