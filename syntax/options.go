// Copyright 2026 The rxsyntax Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package syntax holds the small set of options that select which regex
// dialect a parse targets. It has no dependency on lexer, parser, or ast,
// so both of those packages (and the top-level rxsyntax package) can
// depend on it without creating an import cycle.
package syntax

// Options selects the dialect and lexical conventions a parse should use.
type Options struct {
	// ExtendedSyntax enables '#' end-of-line comments and non-semantic
	// whitespace (PCRE/Oniguruma "x" modifier, ICU "comments" mode).
	ExtendedSyntax bool

	// NonSemanticWhitespace is like ExtendedSyntax, but without '#'
	// comments — only literal whitespace is skipped.
	NonSemanticWhitespace bool

	// Experimental is reserved for forward compatibility; it is not
	// currently read anywhere in this module.
	Experimental bool

	// Dialect flags. More than one may be set. A construct that only one
	// dialect defines is gated on its flag directly at the lexer routine
	// that recognizes it — e.g. PCRE's "(VERSION...)" conditional,
	// Oniguruma's "(?~...)" absent functions, ICU/Oniguruma's "&&"/"--"
	// custom-class set operators, and ECMAScript's "\uhhhh" escape.
	// Constructs shared across every dialect in scope (atoms, groups,
	// quantifiers, plain numbered/named conditions) are recognized
	// regardless of which flags are set.
	PCRE       bool
	Oniguruma  bool
	ICU        bool
	ECMAScript bool
}

// SkipsWhitespace reports whether non-semantic whitespace should be
// skipped between tokens under these options.
func (o Options) SkipsWhitespace() bool {
	return o.ExtendedSyntax || o.NonSemanticWhitespace
}

// AllowsHashComments reports whether a leading unescaped '#' starts a
// comment running to end-of-line.
func (o Options) AllowsHashComments() bool {
	return o.ExtendedSyntax
}
