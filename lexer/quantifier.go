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

// LexQuantifier recognizes a repetition count ('*', '+', '?', or a
// "{...}" form) and the optional trailing '?'/'+' laziness/possessiveness
// modifier. ok == false (with the cursor untouched) means the input at
// this position is not a quantifier at all, e.g. "{" not followed by a
// valid count, which callers should then treat as a literal '{'.
func LexQuantifier(c *source.Cursor) (source.Located[ast.Amount], source.Located[ast.QuantKind], bool, *diag.LocatedError) {
	mark := c.Mark()
	start := c.Pos()

	amount, ok, err := lexAmount(c, start)
	if err != nil {
		return source.Located[ast.Amount]{}, source.Located[ast.QuantKind]{}, true, err
	}
	if !ok {
		c.Reset(mark)
		return source.Located[ast.Amount]{}, source.Located[ast.QuantKind]{}, false, nil
	}
	amountLoc := source.NewLocated(amount, c.SpanFrom(start))

	kindStart := c.Pos()
	kind := ast.Eager
	switch {
	case c.TryEat("?"):
		kind = ast.Reluctant
	case c.TryEat("+"):
		kind = ast.Possessive
	}
	kindLoc := source.NewLocated(kind, c.SpanFrom(kindStart))

	return amountLoc, kindLoc, true, nil
}

func lexAmount(c *source.Cursor, start source.Position) (ast.Amount, bool, *diag.LocatedError) {
	switch {
	case c.TryEat("*"):
		return ast.ZeroOrMore{}, true, nil
	case c.TryEat("+"):
		return ast.OneOrMore{}, true, nil
	case c.TryEat("?"):
		return ast.ZeroOrOne{}, true, nil
	case c.TryEat("{"):
		return lexBracedAmount(c, start)
	default:
		return nil, false, nil
	}
}

func lexBracedAmount(c *source.Cursor, start source.Position) (ast.Amount, bool, *diag.LocatedError) {
	loStr, hasLo := takeDecimal(c)

	if c.TryEat(",") {
		hiStr, hasHi := takeDecimal(c)
		if !c.TryEat("}") {
			return nil, false, nil
		}
		switch {
		case hasLo && hasHi:
			lo, _ := parseDecimal(loStr)
			hi, _ := parseDecimal(hiStr)
			if lo > hi {
				return nil, true, diag.NewInvalidQuantifierRange(c.SpanFrom(start), lo, hi)
			}
			return ast.Range{Lo: lo, Hi: hi}, true, nil
		case hasLo:
			n, _ := parseDecimal(loStr)
			return ast.NOrMore{N: n}, true, nil
		case hasHi:
			n, _ := parseDecimal(hiStr)
			return ast.UpToN{N: n}, true, nil
		default:
			return nil, false, nil
		}
	}

	if !hasLo || !c.TryEat("}") {
		return nil, false, nil
	}
	n, _ := parseDecimal(loStr)
	return ast.Exactly{N: n}, true, nil
}
