// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// DefaultVersion is reported by Version when New is given an empty version.
const DefaultVersion = "unknown"

// Registry owns the declared options of one program and the values parsed
// into them. The zero value is an unnamed registry ready for declarations;
// use New to set the name, description and version.
type Registry struct {
	name           string
	description    string
	version        string
	executablePath string

	options map[string]*option
	errs    []error
}

// New returns an empty registry for the named application.
func New(name, description, version string) *Registry {
	if version == "" {
		version = DefaultVersion
	}
	return &Registry{
		name:        name,
		description: description,
		version:     version,
		options:     make(map[string]*option),
	}
}

// Required declares an option that must be present in argv. It has no value
// until Parse assigns one.
//
// Declaration failures are recorded and reported by Err; the registry is
// returned either way so calls can be chained. Passing a kind outside the
// declared Kind constants panics.
func (r *Registry) Required(name, description string, kind Kind) *Registry {
	if !kind.valid() {
		panic(fmt.Sprintf("cliparser: option %q declared with invalid kind %s", name, kind))
	}
	r.declare(name, &option{
		description: description,
		kind:        kind,
		class:       ClassRequired,
		state:       stateRequiredUnset,
	})
	return r
}

// Optional declares an option that keeps def unless argv overrides it. The
// option's kind is def's kind.
func (r *Registry) Optional(name, description string, def Value) *Registry {
	if !def.kind.valid() {
		panic(fmt.Sprintf("cliparser: option %q declared with a zero Value default", name))
	}
	r.declare(name, &option{
		description: description,
		kind:        def.kind,
		class:       ClassOptional,
		state:       stateOptionalDefault,
		value:       def,
	})
	return r
}

// Flag declares a boolean option that defaults to false and becomes true when
// its name appears in argv. A flag never consumes the following token.
func (r *Registry) Flag(name, description string) *Registry {
	r.declare(name, &option{
		description: description,
		kind:        KindBool,
		class:       ClassFlag,
		state:       stateOptionalDefault,
		value:       ValueOf(false),
	})
	return r
}

func (r *Registry) declare(name string, o *option) {
	if _, exists := r.options[name]; exists {
		r.errs = append(r.errs, &OptionRedefinitionError{Name: name})
		return
	}
	if err := validateName(name); err != nil {
		r.errs = append(r.errs, err)
		return
	}
	if r.options == nil {
		r.options = make(map[string]*option)
	}
	r.options[name] = o
}

// Err returns every declaration failure so far, joined, or nil.
func (r *Registry) Err() error {
	return errors.Join(r.errs...)
}

func validateName(name string) error {
	bad := func(c rune) bool {
		return c == '=' || unicode.IsSpace(c)
	}
	if name == "" || strings.ContainsFunc(name, bad) {
		return &BadOptionFormatError{Name: name}
	}
	return nil
}

func (r *Registry) lookup(name string) (*option, error) {
	o, ok := r.options[name]
	if !ok {
		return nil, &NoSuchOptionError{Name: name}
	}
	return o, nil
}

// Get returns the value of the named option as T.
//
// It fails with NoSuchOptionError for undeclared names, BadOptionAccessError
// for required options that were never set, and BadOptionCastError when T
// does not match the declared kind.
func Get[T Scalar](r *Registry, name string) (T, error) {
	var zero T
	o, err := r.lookup(name)
	if err != nil {
		return zero, err
	}
	if !o.usable() {
		return zero, &BadOptionAccessError{Name: name}
	}
	if want := kindFor[T](); want != o.kind {
		return zero, &BadOptionCastError{Name: name, Have: o.kind, Want: want}
	}
	return valueAs[T](o.value), nil
}

// MustGet is like Get but panics on error. It is meant for programs that
// declared the option themselves and have already parsed successfully.
func MustGet[T Scalar](r *Registry, name string) T {
	v, err := Get[T](r, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether name is declared.
func (r *Registry) Has(name string) bool {
	_, ok := r.options[name]
	return ok
}

// IsOptional reports whether the option may be absent from argv. Flags are
// optional.
func (r *Registry) IsOptional(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.class != ClassRequired, nil
}

// IsSetByUser reports whether the option's value came from argv.
func (r *Registry) IsSetByUser(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.setByUser(), nil
}

// IsFlag reports whether the option was declared with Flag.
func (r *Registry) IsFlag(name string) (bool, error) {
	o, err := r.lookup(name)
	if err != nil {
		return false, err
	}
	return o.class == ClassFlag, nil
}

// Names returns every declared option name. Callers must not rely on the
// order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.options))
}

// Option describes a single declared option.
func (r *Registry) Option(name string) (OptionInfo, error) {
	o, err := r.lookup(name)
	if err != nil {
		return OptionInfo{}, err
	}
	return o.info(name), nil
}

// Options describes every declared option, in the order of Names.
func (r *Registry) Options() []OptionInfo {
	names := r.Names()
	infos := make([]OptionInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, r.options[name].info(name))
	}
	return infos
}

// SetDefault replaces the default of an optional option or flag with raw,
// parsed the same way as an argv value. Options already set by the user keep
// their value. Required options have no default and fail with
// BadOptionAccessError.
func (r *Registry) SetDefault(name, raw string) error {
	o, err := r.lookup(name)
	if err != nil {
		return err
	}
	if o.class == ClassRequired {
		return &BadOptionAccessError{Name: name}
	}
	if o.setByUser() {
		return nil
	}
	v, err := parseValue(o.kind, raw)
	if err != nil {
		return &InvalidInputError{Option: name, Value: raw, UserMsg: err.Error(), Err: err}
	}
	o.value = v
	return nil
}

// Name returns the application name.
func (r *Registry) Name() string { return r.name }

// Description returns the application description.
func (r *Registry) Description() string { return r.description }

// Version returns the application version, DefaultVersion if none was given.
func (r *Registry) Version() string { return r.version }

// ExecutablePath returns argv[0] from the first Parse call with a non-empty
// argv, or "" before that.
func (r *Registry) ExecutablePath() string { return r.executablePath }
