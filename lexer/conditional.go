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

// LexConditionalStart recognizes the "(?(" that introduces a Conditional.
// On success, the cursor sits right after it, ready for either
// LexKnownConditionStart or a direct call into the group lexer (the shared
// '(' between "(?(" and an assertion-group condition like "(?=foo)" has
// already been consumed as the third character of "(?(").
func LexConditionalStart(c *source.Cursor) bool {
	return c.TryEat("(?(")
}

// LexKnownConditionStart recognizes one of the self-contained condition
// forms — those that run all the way through their own closing ')' without
// needing a nested group parse. It returns ok == false, leaving the cursor
// untouched, if the condition is not one of these forms; the caller should
// then fall back to parsing the condition as a group via lexGroupStartBody.
//
// "(VERSION...)" is PCRE's own condition: under a dialect with the PCRE
// flag unset, it is left unrecognized here and falls through to the
// group-condition path like any other dialect doesn't define.
func LexKnownConditionStart(c *source.Cursor, env Env) (ast.ConditionKind, bool, *diag.LocatedError) {
	mark := c.Mark()

	if c.TryEat("DEFINE") {
		if c.TryEat(")") {
			return ast.CondDefineGroup{}, true, nil
		}
		c.Reset(mark)
		return nil, false, nil
	}

	if c.TryEat("R") {
		switch {
		case c.TryEat(")"):
			return ast.CondRecursionCheck{}, true, nil
		case c.TryEat("&"):
			name := c.TakeWhile(func(r rune) bool { return r != ')' })
			if name == "" || !c.TryEat(")") {
				c.Reset(mark)
				return nil, false, nil
			}
			return ast.CondGroupRecursionCheck{Ref: parseReferenceBody(name)}, true, nil
		default:
			if digits, ok := takeDecimal(c); ok {
				if !c.TryEat(")") {
					c.Reset(mark)
					return nil, false, nil
				}
				n, _ := parseDecimal(digits)
				return ast.CondGroupRecursionCheck{Ref: ast.Reference{Kind: ast.RefAbsolute, Index: n}}, true, nil
			}
			c.Reset(mark)
			return nil, false, nil
		}
	}

	if env.Syntax.PCRE && c.TryEat("VERSION") {
		op := ast.VersionEquals
		switch {
		case c.TryEat(">="):
			op = ast.VersionAtLeast
		case c.TryEat("="):
		default:
			c.Reset(mark)
			return nil, false, nil
		}
		majorStr, ok := takeDecimal(c)
		if !ok || !c.TryEat(".") {
			c.Reset(mark)
			return nil, false, nil
		}
		minorStr, ok := takeDecimal(c)
		if !ok || !c.TryEat(")") {
			c.Reset(mark)
			return nil, false, nil
		}
		major, _ := parseDecimal(majorStr)
		minor, _ := parseDecimal(minorStr)
		return ast.CondPCREVersionCheck{Op: op, Major: major, Minor: minor}, true, nil
	}

	if c.TryEat("<") {
		name := c.TakeWhile(func(r rune) bool { return r != '>' })
		if name == "" || !c.TryEat(">") || !c.TryEat(")") {
			c.Reset(mark)
			return nil, false, nil
		}
		return ast.CondGroupMatched{Ref: parseReferenceBody(name)}, true, nil
	}
	if c.TryEat("'") {
		name := c.TakeWhile(func(r rune) bool { return r != '\'' })
		if name == "" || !c.TryEat("'") || !c.TryEat(")") {
			c.Reset(mark)
			return nil, false, nil
		}
		return ast.CondGroupMatched{Ref: parseReferenceBody(name)}, true, nil
	}

	sign, hadSign, digits, ok := takeSignedConditionDecimal(c)
	if ok {
		if !c.TryEat(")") {
			c.Reset(mark)
			return nil, false, nil
		}
		n, _ := parseDecimal(digits)
		if hadSign {
			ref := ast.Reference{Kind: ast.RefRelative, Index: n, Sign: sign}
			return ast.CondGroupRecursionCheck{Ref: ref}, true, nil
		}
		return ast.CondGroupMatched{Ref: ast.Reference{Kind: ast.RefAbsolute, Index: n}}, true, nil
	}

	c.Reset(mark)
	return nil, false, nil
}

// takeSignedConditionDecimal consumes an optional leading '+' or '-'
// followed by decimal digits, distinguishing "(n)" from "(+n)"/"(-n)": only
// the conditional grammar gives a sign here meaning (a relative group
// reference rather than an absolute one), so this stays local to this file
// rather than living in takeDecimal, which every other signless numeric
// lexer also calls.
func takeSignedConditionDecimal(c *source.Cursor) (sign int, hadSign bool, digits string, ok bool) {
	sign = 1
	switch {
	case c.TryEat("+"):
		hadSign = true
	case c.TryEat("-"):
		sign = -1
		hadSign = true
	}
	digits, ok = takeDecimal(c)
	return sign, hadSign, digits, ok
}

// LexGroupConditionStart parses a condition spelled as a bare group, e.g.
// the "?=foo" of "(?(?=foo)yes|no)". The caller (the parser, via
// LexConditionalStart) has already consumed "(?("; this consumes only the
// group introducer (e.g. "?="), and the caller then parses the group's
// body and its closing ')'.
func LexGroupConditionStart(c *source.Cursor, env Env) (source.Located[ast.GroupKind], bool, *diag.LocatedError) {
	start := c.Pos()
	return lexGroupStartBody(c, env, start)
}
