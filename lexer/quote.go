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
	"strings"

	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/source"
)

// LexQuote recognizes a literal-text run: "\Q...\E" (terminated by "\E" or
// end of input, per the usual regex convention) or PCRE's "\q{...}".
func LexQuote(c *source.Cursor) (*ast.Quote, bool, *diag.LocatedError) {
	start := c.Pos()
	mark := c.Mark()

	switch {
	case c.TryEat(`\Q`):
		var b strings.Builder
		for !c.TryEat(`\E`) {
			g := takeOneGrapheme(c)
			if g == "" {
				break
			}
			b.WriteString(g)
		}
		return &ast.Quote{Loc: c.SpanFrom(start), Literal: b.String()}, true, nil

	case c.TryEat(`\q{`):
		literal := c.TakeWhile(func(r rune) bool { return r != '}' })
		if !c.TryEat("}") {
			c.Reset(mark)
			return nil, true, diag.NewExpectedBrace(c.SpanFrom(start))
		}
		return &ast.Quote{Loc: c.SpanFrom(start), Literal: literal}, true, nil

	default:
		return nil, false, nil
	}
}

// takeOneGrapheme consumes and returns the next extended grapheme cluster,
// so a \Q…\E scan can check for \E between clusters without ever splitting
// a combining character sequence.
func takeOneGrapheme(c *source.Cursor) string {
	done := false
	return c.TakeGraphemesWhile(func(string) bool {
		if done {
			return false
		}
		done = true
		return true
	})
}
