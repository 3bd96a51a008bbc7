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
	"github.com/regexlang/rxsyntax/source"
)

// LexCustomCCStart recognizes the "[" or negated "[^" that opens a custom
// character class.
func LexCustomCCStart(c *source.Cursor) (source.Located[ast.CCCStart], bool) {
	start := c.Pos()
	if !c.TryEat("[") {
		return source.Located[ast.CCCStart]{}, false
	}
	negated := c.TryEat("^")
	return source.NewLocated(ast.CCCStart{Negated: negated}, c.SpanFrom(start)), true
}

// LexCustomCCBinOp recognizes one of the set operators ("&&", "--", "~~")
// that the parser only tries while already inside a custom character
// class. PCRE and plain ECMAScript classes have no such operators; under
// neither the ICU nor the Oniguruma flag, these two characters are left
// for the caller to treat as ordinary class members instead.
func LexCustomCCBinOp(c *source.Cursor, env Env) (source.Located[ast.SetOp], bool) {
	if !env.Syntax.ICU && !env.Syntax.Oniguruma {
		return source.Located[ast.SetOp]{}, false
	}
	start := c.Pos()
	switch {
	case c.TryEat("&&"):
		return source.NewLocated(ast.Intersection, c.SpanFrom(start)), true
	case c.TryEat("--"):
		return source.NewLocated(ast.Subtraction, c.SpanFrom(start)), true
	case c.TryEat("~~"):
		return source.NewLocated(ast.SymmetricDifference, c.SpanFrom(start)), true
	default:
		return source.Located[ast.SetOp]{}, false
	}
}

// LexCustomCCRangeDash recognizes the '-' between two range endpoints,
// e.g. the one in "a-z". It does not fire on a '-' that opens a "--"
// subtraction operator or that sits immediately before the closing ']'
// (where it denotes a literal '-' member instead).
func LexCustomCCRangeDash(c *source.Cursor) (source.Span, bool) {
	start := c.Pos()
	mark := c.Mark()
	if !c.TryEat("-") {
		return source.Span{}, false
	}
	r, ok := c.Peek()
	if !ok || r == ']' || r == '-' {
		c.Reset(mark)
		return source.Span{}, false
	}
	return c.SpanFrom(start), true
}
