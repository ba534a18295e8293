// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cliparser

import (
	"fmt"
	"strconv"
)

// Kind is the scalar type of an option's value.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindInt
	KindInt32
	KindInt64
	KindBool
	KindFloat32
	KindFloat64
	KindFloat80
	KindString
)

var kindNames = [...]string{
	kindInvalid: "invalid",
	KindInt:     "int",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindBool:    "bool",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindFloat80: "float80",
	KindString:  "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) valid() bool {
	return k > kindInvalid && k <= KindString
}

// Float80 is the extended-precision floating point kind. Go has no 80-bit
// float, so it is stored and parsed with float64 precision.
type Float80 float64

// Scalar is the closed set of Go types an option value can have.
type Scalar interface {
	int | int32 | int64 | bool | float32 | float64 | Float80 | string
}

// Value holds exactly one scalar of a known Kind.
// The zero Value has no kind and is never stored in a Registry.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// ValueOf wraps v in a Value whose kind follows v's Go type.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case int:
		return Value{kind: KindInt, i: int64(x)}
	case int32:
		return Value{kind: KindInt32, i: int64(x)}
	case int64:
		return Value{kind: KindInt64, i: x}
	case bool:
		return Value{kind: KindBool, b: x}
	case float32:
		return Value{kind: KindFloat32, f: float64(x)}
	case float64:
		return Value{kind: KindFloat64, f: x}
	case Float80:
		return Value{kind: KindFloat80, f: float64(x)}
	case string:
		return Value{kind: KindString, s: x}
	}
	panic(fmt.Sprintf("cliparser: unsupported scalar type %T", v))
}

// kindFor reports the Kind that T is stored as.
func kindFor[T Scalar]() Kind {
	var zero T
	return ValueOf(zero).kind
}

// valueAs unwraps v as T. The caller must have checked that v.kind matches T.
func valueAs[T Scalar](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *int:
		*p = int(v.i)
	case *int32:
		*p = int32(v.i)
	case *int64:
		*p = v.i
	case *bool:
		*p = v.b
	case *float32:
		*p = float32(v.f)
	case *float64:
		*p = v.f
	case *Float80:
		*p = Float80(v.f)
	case *string:
		*p = v.s
	}
	return out
}

// Kind returns the kind of the held value.
func (v Value) Kind() Kind {
	return v.kind
}

// Interface returns the held value as its Go scalar type, or nil for the
// zero Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return valueAs[int](v)
	case KindInt32:
		return valueAs[int32](v)
	case KindInt64:
		return v.i
	case KindBool:
		return v.b
	case KindFloat32:
		return valueAs[float32](v)
	case KindFloat64:
		return v.f
	case KindFloat80:
		return Float80(v.f)
	case KindString:
		return v.s
	}
	return nil
}

// String formats the value the way parseValue would read it back.
func (v Value) String() string {
	switch v.kind {
	case KindInt, KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64, KindFloat80:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	}
	return ""
}

// Accepted boolean spellings. Matching ignores ASCII letter case only.
const (
	boolYes   = "y"
	boolTrue  = "true"
	boolNo    = "n"
	boolFalse = "false"
)

// parseValue converts raw argv text into a Value of the given kind.
func parseValue(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindInt, KindInt32, KindInt64:
		i, err := strconv.ParseInt(raw, 10, intBits(kind))
		if err != nil {
			return Value{}, fmt.Errorf("invalid %s value %q: %w", kind, raw, err)
		}
		return Value{kind: kind, i: i}, nil

	case KindFloat32, KindFloat64, KindFloat80:
		bits := 64
		if kind == KindFloat32 {
			bits = 32
		}
		f, err := strconv.ParseFloat(raw, bits)
		if err != nil {
			return Value{}, fmt.Errorf("invalid %s value %q: %w", kind, raw, err)
		}
		if kind == KindFloat32 {
			f = float64(float32(f))
		}
		return Value{kind: kind, f: f}, nil

	case KindBool:
		switch asciiLower(raw) {
		case boolYes, boolTrue:
			return Value{kind: KindBool, b: true}, nil
		case boolNo, boolFalse:
			return Value{kind: KindBool, b: false}, nil
		}
		return Value{}, fmt.Errorf("invalid bool argument %q (want y, true, n or false)", raw)

	case KindString:
		return Value{kind: KindString, s: raw}, nil
	}
	return Value{}, fmt.Errorf("unsupported kind %s", kind)
}

// asciiLower lowercases A-Z and leaves every other byte alone, so no
// non-ASCII rune can fold into an accepted spelling.
func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func intBits(kind Kind) int {
	switch kind {
	case KindInt32:
		return 32
	case KindInt64:
		return 64
	}
	return strconv.IntSize
}
