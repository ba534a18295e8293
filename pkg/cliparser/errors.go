// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

import (
	"fmt"
	"strings"
)

// NoSuchOptionError is returned when a name is not declared in the registry,
// either from a query or from an unrecognized argv token.
type NoSuchOptionError struct {
	Name string
}

func (e *NoSuchOptionError) Error() string {
	return fmt.Sprintf("unrecognised option: %s", e.Name)
}

// OptionRedefinitionError is returned when a name is declared twice.
type OptionRedefinitionError struct {
	Name string
}

func (e *OptionRedefinitionError) Error() string {
	return fmt.Sprintf("attempted to redefine the option %q", e.Name)
}

// BadOptionFormatError is returned when a declared name is empty or contains
// '=' or whitespace.
type BadOptionFormatError struct {
	Name string
}

func (e *BadOptionFormatError) Error() string {
	return fmt.Sprintf("attempted to register an option with invalid characters. Option: %q", e.Name)
}

// MissingRequiredOptionsError is returned by Parse when required options were
// not supplied. Names is sorted.
type MissingRequiredOptionsError struct {
	Names []string
}

func (e *MissingRequiredOptionsError) Error() string {
	lines := make([]string, len(e.Names))
	for i, name := range e.Names {
		lines[i] = fmt.Sprintf("the option %s is marked as required but no value was provided", name)
	}
	return strings.Join(lines, "\n")
}

// BadOptionCastError is returned when an option is read as the wrong type.
type BadOptionCastError struct {
	Name string
	Have Kind // kind the option was declared with
	Want Kind // kind requested by the caller
}

func (e *BadOptionCastError) Error() string {
	return fmt.Sprintf("wrong type for the option %q: declared %s, requested %s", e.Name, e.Have, e.Want)
}

// BadOptionAccessError is returned when reading a required option that has
// no value yet.
type BadOptionAccessError struct {
	Name string
}

func (e *BadOptionAccessError) Error() string {
	return fmt.Sprintf("bad option access. Option: %q", e.Name)
}

// InvalidInputError is returned when argv text cannot be applied to an option.
// UserMsg is the short message shown to users; Err keeps the underlying cause.
type InvalidInputError struct {
	Option  string // The option being assigned, if known
	Value   string // The offending text, if any
	UserMsg string
	Err     error
}

func (e *InvalidInputError) Error() string {
	if e.Option == "" {
		return "invalid input: " + e.UserMsg
	}
	return fmt.Sprintf("invalid input for %s: %s", e.Option, e.UserMsg)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}
