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

// Package rxsyntax parses regex pattern text into a located, immutable
// syntax tree without ever attempting to match anything against it.
// Parse accepts bare pattern text under an explicit syntax.Options;
// ParseWithDelimiters additionally recognizes a handful of common
// delimiter-wrapped forms and infers the dialect from the wrapping.
package rxsyntax

import (
	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/parser"
	"github.com/regexlang/rxsyntax/source"
	"github.com/regexlang/rxsyntax/syntax"
)

// Parse turns pattern into an ast.Node under the given syntax options.
func Parse(pattern string, opts syntax.Options) (ast.Node, *diag.LocatedError) {
	return parser.Parse(pattern, opts)
}

// ParseWithDelimiters strips a recognized delimiter pair from input
// (such as "/…/", "'…'", "re'…'", "#/…/#", or "|…|"), infers the syntax
// options implied by that form, and parses what remains. An
// unrecognized wrapping is reported as diag.UnknownDelimiter.
func ParseWithDelimiters(input string) (ast.Node, *diag.LocatedError) {
	pattern, opts, ok := stripDelimiters(input)
	if !ok {
		loc := source.NewSpan(input, 0, source.Position(len(input)))
		return nil, diag.NewUnknownDelimiter(loc, input)
	}
	return parser.Parse(pattern, opts)
}

// Dump renders n as a deterministic, human-readable s-expression, useful
// for golden-file tests and debugging. It never round-trips back to
// pattern text.
func Dump(n ast.Node) string {
	return ast.Dump(n)
}
