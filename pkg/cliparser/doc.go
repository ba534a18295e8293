// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cliparser provides a registry of named, typed command-line options
// and a parser that fills it from a raw argument vector.
//
// Options are declared up front, argv is parsed against them, and the typed
// values are then read back by name:
//
//	reg := cliparser.New("checkpath", "check if a path exists", "1.0.0").
//	    Required("-p", "path", cliparser.KindString).
//	    Optional("-n", "times", cliparser.ValueOf(1)).
//	    Flag("--ignore-n", "ignore -n and print 3 times")
//	if err := reg.Err(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Parse(os.Args); err != nil {
//	    log.Fatal(err)
//	}
//	p := cliparser.MustGet[string](reg, "-p")
//
// # Option names
//
// A name is matched against argv tokens verbatim, dashes included: "-n",
// "--verbose" and "size" are all valid names. Names must be non-empty and
// must not contain '=' or whitespace.
//
// # Token syntax
//
//   - name=value assigns value to a non-flag option
//   - name value assigns the following token, whatever it looks like
//   - name sets a flag to true
//
// Token 0 is the program path. It is recorded as the executable path and never
// matched against options.
//
// # Supported kinds
//
// int, int32, int64, bool, float32, float64, [Float80] and string. The set is
// closed; [Get] only compiles for these types.
//
// Booleans accept y, true, n and false in any ASCII letter case.
//
// Integers are parsed in base 10. Floats follow [strconv.ParseFloat], so
// besides decimal and exponent forms they also accept hexadecimal mantissas
// such as "0x1p-2" and the special values "inf", "+Inf" and "nan".
//
// # Concurrency
//
// A Registry is not safe for concurrent use. Declare, parse and query it from
// one goroutine, or serialize access externally.
package cliparser
