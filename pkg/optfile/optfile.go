// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optfile loads option defaults from TOML or YAML files and applies
// them to a cliparser.Registry before argv is parsed.
//
// A defaults file has an optional semantic version constraint on the
// application and a table of option names to values:
//
//	version = ">= 1.2"
//
//	[defaults]
//	"-n" = 3
//	"--name" = "build"
//
// Values follow the same text rules as argv, so "y" is a valid bool.
package optfile

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/yeetrun/cliparser/pkg/cliparser"
)

// Format is the encoding of a defaults file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for file extensions other than .toml, .yaml
// and .yml.
var ErrUnknownFormat = errors.New("unknown defaults file format")

// FormatFromPath picks the format from path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// File is a decoded defaults file.
type File struct {
	// Version is a semver constraint the application version must satisfy.
	// Empty means any version.
	Version  string         `toml:"version,omitempty" yaml:"version,omitempty"`
	Defaults map[string]any `toml:"defaults" yaml:"defaults"`
}

// VersionMismatchError is returned by Apply when the application version
// does not satisfy the file's constraint.
type VersionMismatchError struct {
	Constraint string
	Version    string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("defaults require version %s, application is %s", e.Constraint, e.Version)
}

// Load reads and decodes the defaults file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	file, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file, nil
}

// Decode reads a defaults file in the given format.
func Decode(r io.Reader, format Format) (*File, error) {
	var file File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&file)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &file, nil
}

// Target is the part of a registry that Apply writes to.
type Target interface {
	Version() string
	Has(name string) bool
	SetDefault(name, raw string) error
}

// ApplyOptions tunes Apply.
type ApplyOptions struct {
	// IgnoreUnknown skips entries for options the registry does not declare.
	IgnoreUnknown bool
}

// Apply checks the version constraint and sets every default in the file,
// in name order. It stops at the first failure.
func (f *File) Apply(t Target, opts ApplyOptions) error {
	if err := f.checkVersion(t.Version()); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(f.Defaults)) {
		if !t.Has(name) {
			if opts.IgnoreUnknown {
				continue
			}
			return fmt.Errorf("default for %s: %w", name, &cliparser.NoSuchOptionError{Name: name})
		}
		raw, err := scalarText(f.Defaults[name])
		if err != nil {
			return fmt.Errorf("default for %s: %w", name, err)
		}
		if err := t.SetDefault(name, raw); err != nil {
			return fmt.Errorf("default for %s: %w", name, err)
		}
	}
	return nil
}

func (f *File) checkVersion(version string) error {
	if f.Version == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(f.Version)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", f.Version, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("application version %q is not a semantic version: %w", version, err)
	}
	if !constraint.Check(v) {
		return &VersionMismatchError{Constraint: f.Version, Version: version}
	}
	return nil
}

// scalarText renders a decoded TOML or YAML scalar as argv text.
func scalarText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value %v of type %T", v, v)
}

// Source is the part of a registry that FromRegistry reads.
type Source interface {
	Version() string
	Options() []cliparser.OptionInfo
}

// FromRegistry builds a File holding the current value of every optional
// option and flag in src. The version constraint pins the major version.
func FromRegistry(src Source) *File {
	file := &File{Defaults: make(map[string]any)}
	if v, err := semver.NewVersion(src.Version()); err == nil {
		file.Version = "^" + v.String()
	}
	for _, info := range src.Options() {
		if !info.Optional() {
			continue
		}
		file.Defaults[info.Name] = encodable(info.Value)
	}
	return file
}

// encodable converts a value into a type both encoders write as a plain
// scalar.
func encodable(v cliparser.Value) any {
	switch x := v.Interface().(type) {
	case int32:
		return int64(x)
	case float32:
		// Keep the shortest float32 text rather than its float64 expansion.
		f, _ := strconv.ParseFloat(v.String(), 64)
		return f
	case cliparser.Float80:
		return float64(x)
	default:
		return x
	}
}

// Encode writes f in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}
