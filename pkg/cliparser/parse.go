// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

import "strings"

type parseConfig struct {
	ignoreUnknown           bool
	suppressMissingRequired bool
	rollback                bool
}

// ParseOption tunes a single Parse call.
type ParseOption func(*parseConfig)

// WithIgnoreUnknown skips tokens that name no declared option instead of
// failing with NoSuchOptionError. A skipped token never consumes a value.
func WithIgnoreUnknown(ignore bool) ParseOption {
	return func(c *parseConfig) {
		c.ignoreUnknown = ignore
	}
}

// WithSuppressMissingRequired disables the final check for required options
// that received no value.
func WithSuppressMissingRequired(suppress bool) ParseOption {
	return func(c *parseConfig) {
		c.suppressMissingRequired = suppress
	}
}

// WithRollback restores every option to its pre-parse state when Parse fails.
// Without it, options assigned before the failing token keep their values.
func WithRollback(rollback bool) ParseOption {
	return func(c *parseConfig) {
		c.rollback = rollback
	}
}

// Parse assigns argv to the declared options.
//
// args is the full argument vector as the process received it: args[0] is
// recorded as the executable path and scanning starts at args[1]. An empty
// args is a no-op.
//
// Each token is handled as follows:
//   - name=value assigns value to name; flags reject this form
//   - name of a flag sets the flag to true
//   - name of any other option consumes the next token as its value
//
// Parse stops at the first failure. Unless suppressed, it then fails with a
// single MissingRequiredOptionsError listing every required option that is
// still unset.
func (r *Registry) Parse(args []string, opts ...ParseOption) (err error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(args) == 0 {
		return nil
	}

	if cfg.rollback {
		snap := r.Snapshot()
		defer func() {
			if err != nil {
				r.Restore(snap)
			}
		}()
	}

	if r.executablePath == "" {
		r.executablePath = args[0]
	}

	for i := 1; i < len(args); {
		consumed, err := r.parseToken(args, i, cfg.ignoreUnknown)
		if err != nil {
			return err
		}
		i += consumed
	}

	if cfg.suppressMissingRequired {
		return nil
	}
	return r.checkRequired()
}

// parseToken handles args[i] and returns how many tokens it consumed.
func (r *Registry) parseToken(args []string, i int, ignoreUnknown bool) (int, error) {
	arg := args[i]

	if name, raw, ok := strings.Cut(arg, "="); ok {
		o, found := r.options[name]
		if !found {
			if ignoreUnknown {
				return 1, nil
			}
			return 0, &NoSuchOptionError{Name: name}
		}
		if o.class == ClassFlag {
			return 0, &InvalidInputError{
				Option:  name,
				Value:   raw,
				UserMsg: "attempted to assign a value to a flag with '='",
			}
		}
		return 1, o.assignText(name, raw)
	}

	o, found := r.options[arg]
	if !found {
		if ignoreUnknown {
			return 1, nil
		}
		return 0, &NoSuchOptionError{Name: arg}
	}
	if o.class == ClassFlag {
		o.assign(ValueOf(true))
		return 1, nil
	}
	if i+1 >= len(args) {
		return 0, &InvalidInputError{Option: arg, UserMsg: "missing value"}
	}
	return 2, o.assignText(arg, args[i+1])
}

func (r *Registry) checkRequired() error {
	var missing []string
	for _, name := range r.Names() {
		if !r.options[name].usable() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingRequiredOptionsError{Names: missing}
	}
	return nil
}
