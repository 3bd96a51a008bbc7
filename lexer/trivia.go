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

package lexer

import (
	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/source"
)

// LexTrivia recognizes a PCRE "(?#...)" comment, a '#'-to-end-of-line
// comment under extended syntax, or a run of non-semantic whitespace under
// extended syntax or non-semantic-whitespace mode.
func LexTrivia(c *source.Cursor, env Env) (*ast.Trivia, bool, *diag.LocatedError) {
	start := c.Pos()

	if c.TryEat("(?#") {
		contents, ok := c.SeekInclusive(")")
		if !ok {
			return nil, true, diag.NewExpectedGroupCloser(c.SpanFrom(start))
		}
		contents = contents[:len(contents)-1]
		return &ast.Trivia{Loc: c.SpanFrom(start), Contents: contents}, true, nil
	}

	if env.Syntax.AllowsHashComments() {
		if r, ok := c.Peek(); ok && r == '#' {
			contents, ok := c.SeekInclusive("\n")
			if !ok {
				contents = c.SeekEOF()
			}
			return &ast.Trivia{Loc: c.SpanFrom(start), Contents: contents}, true, nil
		}
	}

	if env.Syntax.SkipsWhitespace() {
		ws := c.TakeWhile(isNonSemanticWhitespace)
		if ws != "" {
			return &ast.Trivia{Loc: c.SpanFrom(start), Contents: ws}, true, nil
		}
	}

	return nil, false, nil
}

func isNonSemanticWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
