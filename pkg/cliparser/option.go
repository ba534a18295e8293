// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

// Class says how an option behaves when it is absent from argv and whether
// it consumes a value token.
type Class uint8

const (
	ClassRequired Class = iota + 1
	ClassOptional
	ClassFlag
)

func (c Class) String() string {
	switch c {
	case ClassRequired:
		return "required"
	case ClassOptional:
		return "optional"
	case ClassFlag:
		return "flag"
	}
	return "unknown"
}

// state is the lifecycle of a single option. Required options start in
// stateRequiredUnset, optional ones and flags in stateOptionalDefault. User
// input moves them to the matching set state, and nothing moves them back
// except Restore.
type state uint8

const (
	stateRequiredUnset state = iota + 1
	stateRequiredSet
	stateOptionalDefault
	stateOptionalOverridden
)

func initialState(class Class) state {
	if class == ClassRequired {
		return stateRequiredUnset
	}
	return stateOptionalDefault
}

// option is the record stored for each declared name.
type option struct {
	description string
	kind        Kind
	class       Class
	state       state
	value       Value
}

// usable reports whether the option holds a value that may be read.
func (o *option) usable() bool {
	return o.state != stateRequiredUnset
}

func (o *option) setByUser() bool {
	return o.state == stateRequiredSet || o.state == stateOptionalOverridden
}

// assign stores a user supplied value and records the transition.
func (o *option) assign(v Value) {
	o.value = v
	switch o.state {
	case stateRequiredUnset:
		o.state = stateRequiredSet
	case stateOptionalDefault:
		o.state = stateOptionalOverridden
	}
}

// assignText parses raw with the option's kind and assigns the result.
func (o *option) assignText(name, raw string) error {
	v, err := parseValue(o.kind, raw)
	if err != nil {
		return &InvalidInputError{Option: name, Value: raw, UserMsg: err.Error(), Err: err}
	}
	o.assign(v)
	return nil
}

// OptionInfo is a read-only view of a declared option.
type OptionInfo struct {
	Name        string
	Description string
	Kind        Kind
	Class       Class
	SetByUser   bool
	// Value is the current value. It is the zero Value while a required
	// option is unset.
	Value Value
}

// Optional reports whether the option may be left out of argv.
func (i OptionInfo) Optional() bool {
	return i.Class != ClassRequired
}

func (o *option) info(name string) OptionInfo {
	info := OptionInfo{
		Name:        name,
		Description: o.description,
		Kind:        o.kind,
		Class:       o.class,
		SetByUser:   o.setByUser(),
	}
	if o.usable() {
		info.Value = o.value
	}
	return info
}
