// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/cliparser/pkg/cliparser"
)

func newRegistry(t *testing.T, version string) *cliparser.Registry {
	t.Helper()
	reg := cliparser.New("app", "", version).
		Required("-p", "path", cliparser.KindString).
		Optional("-n", "times", cliparser.ValueOf(1)).
		Optional("-q", "quality", cliparser.ValueOf(float32(3.22))).
		Optional("--name", "name", cliparser.ValueOf("default")).
		Flag("--ignore-n", "ignore -n")
	if err := reg.Err(); err != nil {
		t.Fatal(err)
	}
	return reg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":      FormatTOML,
		"dir/b.YAML":  FormatYAML,
		"c.yml":       FormatYAML,
		"config.json": "",
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if want == "" {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("FormatFromPath(%q) err = %v, want ErrUnknownFormat", path, err)
			}
			continue
		}
		if err != nil || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v, want %q", path, got, err, want)
		}
	}
}

func TestLoadAndApplyTOML(t *testing.T) {
	path := writeFile(t, "defaults.toml", `
version = ">= 1.2"

[defaults]
"-n" = 3
"-q" = 0.5
"--name" = "build"
"--ignore-n" = "Y"
`)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := newRegistry(t, "1.4.0")
	if err := file.Apply(reg, ApplyOptions{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := cliparser.MustGet[int](reg, "-n"); got != 3 {
		t.Errorf("-n = %d, want 3", got)
	}
	if got := cliparser.MustGet[float32](reg, "-q"); got != 0.5 {
		t.Errorf("-q = %v, want 0.5", got)
	}
	if got := cliparser.MustGet[string](reg, "--name"); got != "build" {
		t.Errorf("--name = %q, want %q", got, "build")
	}
	if !cliparser.MustGet[bool](reg, "--ignore-n") {
		t.Error("--ignore-n = false, want true")
	}
	if set, _ := reg.IsSetByUser("-n"); set {
		t.Error("file defaults must not count as user input")
	}

	// argv still wins over the file.
	if err := reg.Parse([]string{"app", "-p", "/tmp", "-n", "9"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cliparser.MustGet[int](reg, "-n"); got != 9 {
		t.Errorf("-n = %d, want 9", got)
	}
}

func TestLoadAndApplyYAML(t *testing.T) {
	path := writeFile(t, "defaults.yaml", `
defaults:
  "-n": 4
  "--name": "from yaml"
  "--ignore-n": true
`)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := newRegistry(t, "")
	if err := file.Apply(reg, ApplyOptions{}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := cliparser.MustGet[int](reg, "-n"); got != 4 {
		t.Errorf("-n = %d, want 4", got)
	}
	if got := cliparser.MustGet[string](reg, "--name"); got != "from yaml" {
		t.Errorf("--name = %q, want %q", got, "from yaml")
	}
	if !cliparser.MustGet[bool](reg, "--ignore-n") {
		t.Error("--ignore-n = false, want true")
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	if _, err := Decode(strings.NewReader("colour = \"red\"\n"), FormatTOML); err == nil {
		t.Error("TOML: expected error for unknown key")
	}
	if _, err := Decode(strings.NewReader("colour: red\n"), FormatYAML); err == nil {
		t.Error("YAML: expected error for unknown key")
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	file, err := Decode(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := file.Apply(newRegistry(t, ""), ApplyOptions{}); err != nil {
		t.Errorf("Apply of empty file: %v", err)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		version string
		file    File
		check   func(error) bool
	}{
		{
			name:  "unknown option",
			file:  File{Defaults: map[string]any{"--nope": 1}},
			check: func(err error) bool { var e *cliparser.NoSuchOptionError; return errors.As(err, &e) },
		},
		{
			name:  "required option",
			file:  File{Defaults: map[string]any{"-p": "/tmp"}},
			check: func(err error) bool { var e *cliparser.BadOptionAccessError; return errors.As(err, &e) },
		},
		{
			name:  "bad value",
			file:  File{Defaults: map[string]any{"-n": "many"}},
			check: func(err error) bool { var e *cliparser.InvalidInputError; return errors.As(err, &e) },
		},
		{
			name:  "unsupported value",
			file:  File{Defaults: map[string]any{"-n": []any{1, 2}}},
			check: func(err error) bool { return err != nil },
		},
		{
			name:    "version mismatch",
			version: "1.0.0",
			file:    File{Version: ">= 2"},
			check:   func(err error) bool { var e *VersionMismatchError; return errors.As(err, &e) },
		},
		{
			name:    "version not semver",
			version: "",
			file:    File{Version: ">= 2"},
			check:   func(err error) bool { return err != nil && strings.Contains(err.Error(), "unknown") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Apply(newRegistry(t, tt.version), ApplyOptions{})
			if !tt.check(err) {
				t.Errorf("Apply err = %v", err)
			}
		})
	}
}

func TestApplyIgnoreUnknown(t *testing.T) {
	file := &File{Defaults: map[string]any{"--nope": 1, "-n": 2}}
	reg := newRegistry(t, "")
	if err := file.Apply(reg, ApplyOptions{IgnoreUnknown: true}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := cliparser.MustGet[int](reg, "-n"); got != 2 {
		t.Errorf("-n = %d, want 2", got)
	}
}

func TestFromRegistryRoundTrip(t *testing.T) {
	src := newRegistry(t, "1.2.3")
	if err := src.Parse([]string{"app", "-p", "/tmp", "-n", "7", "--ignore-n"}); err != nil {
		t.Fatal(err)
	}
	file := FromRegistry(src)
	if file.Version != "^1.2.3" {
		t.Errorf("Version = %q, want %q", file.Version, "^1.2.3")
	}
	want := map[string]any{"-n": 7, "-q": 3.22, "--name": "default", "--ignore-n": true}
	if diff := cmp.Diff(want, file.Defaults); diff != "" {
		t.Errorf("Defaults mismatch (-want +got):\n%s", diff)
	}

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := file.Encode(&buf, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, buf.String())
			}
			dst := newRegistry(t, "1.9.0")
			if err := decoded.Apply(dst, ApplyOptions{}); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if got := cliparser.MustGet[int](dst, "-n"); got != 7 {
				t.Errorf("-n = %d, want 7", got)
			}
			if got := cliparser.MustGet[float32](dst, "-q"); got != 3.22 {
				t.Errorf("-q = %v, want 3.22", got)
			}
			if !cliparser.MustGet[bool](dst, "--ignore-n") {
				t.Error("--ignore-n = false, want true")
			}
		})
	}
}
