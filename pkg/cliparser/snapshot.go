// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

// Snapshot is a saved copy of a registry's parse results.
type Snapshot struct {
	executablePath string
	records        map[string]savedOption
}

type savedOption struct {
	state state
	value Value
}

// Snapshot captures the current value and state of every option.
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		executablePath: r.executablePath,
		records:        make(map[string]savedOption, len(r.options)),
	}
	for name, o := range r.options {
		s.records[name] = savedOption{state: o.state, value: o.value}
	}
	return s
}

// Restore puts back the values captured by s. Options declared after s was
// taken are left alone.
func (r *Registry) Restore(s Snapshot) {
	r.executablePath = s.executablePath
	for name, saved := range s.records {
		o, ok := r.options[name]
		if !ok {
			continue
		}
		o.state = saved.state
		o.value = saved.value
	}
}
