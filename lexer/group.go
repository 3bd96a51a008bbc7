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

// LexGroupStart recognizes the introducer of a parenthesized construct,
// from the leading '(' through the point where the group's child content
// (if any) begins. It does not parse the child; the parser recurses for
// that once it has the GroupKind.
func LexGroupStart(c *source.Cursor, env Env) (source.Located[ast.GroupKind], bool, *diag.LocatedError) {
	start := c.Pos()
	if !c.TryEat("(") {
		return source.Located[ast.GroupKind]{}, false, nil
	}
	return lexGroupStartBody(c, env, start)
}

// lexGroupStartBody dispatches on what follows an already-consumed '(': a
// normal "(?..." introducer, a "(*sr:"/"(*asr:" script run, or a bare
// capturing group. It is also called directly by the conditional lexer for
// "(?(?=...)...)", whose outer "(?(" shares its last '(' with the inner
// assertion group's own opening paren.
func lexGroupStartBody(c *source.Cursor, env Env, start source.Position) (source.Located[ast.GroupKind], bool, *diag.LocatedError) {
	switch {
	case c.TryEat("?"):
		return lexGroupIntroducer(c, env, start)
	case c.TryEat("*"):
		switch {
		case c.TryEat("sr:"):
			return locGK(c, start, ast.GroupScriptRun{}), true, nil
		case c.TryEat("asr:"):
			return locGK(c, start, ast.GroupAtomicScriptRun{}), true, nil
		default:
			return source.Located[ast.GroupKind]{}, true, diag.NewUnknownGroupKind(c.SpanFrom(start), c.Rest())
		}
	default:
		return locGK(c, start, ast.GroupCapture{}), true, nil
	}
}

func locGK(c *source.Cursor, start source.Position, k ast.GroupKind) source.Located[ast.GroupKind] {
	return source.NewLocated(k, c.SpanFrom(start))
}

// lexGroupIntroducer dispatches on what follows an already-consumed "(?".
func lexGroupIntroducer(c *source.Cursor, env Env, start source.Position) (source.Located[ast.GroupKind], bool, *diag.LocatedError) {
	switch {
	case c.TryEat(":"):
		return locGK(c, start, ast.GroupNonCapture{}), true, nil
	case c.TryEat("|"):
		return locGK(c, start, ast.GroupNonCaptureReset{}), true, nil
	case c.TryEat(">"):
		return locGK(c, start, ast.GroupAtomicNonCapturing{}), true, nil
	case c.TryEat("="):
		return locGK(c, start, ast.GroupLookahead{}), true, nil
	case c.TryEat("!"):
		return locGK(c, start, ast.GroupNegativeLookahead{}), true, nil
	case c.TryEat("*"):
		return locGK(c, start, ast.GroupNonAtomicLookahead{}), true, nil
	case c.TryEat("P<"):
		name := c.TakeWhile(isNameChar)
		if !c.TryEat(">") {
			return source.Located[ast.GroupKind]{}, true, diag.NewExpected(c.SpanFrom(start), '>')
		}
		return locGK(c, start, ast.GroupNamedCapture{Name: name}), true, nil
	case c.TryEat("<"):
		return lexAngleBracketGroup(c, start)
	case c.TryEat("'"):
		name := c.TakeWhile(func(r rune) bool { return r != '\'' })
		if !c.TryEat("'") {
			return source.Located[ast.GroupKind]{}, true, diag.NewExpected(c.SpanFrom(start), '\'')
		}
		return locGK(c, start, ast.GroupNamedCapture{Name: name}), true, nil
	default:
		if seq, ok := tryLexOptionSeq(c); ok {
			if c.TryEat(":") {
				return locGK(c, start, ast.GroupChangeMatchingOptions{Seq: seq, IsIsolated: false}), true, nil
			}
			if c.TryEat(")") {
				return locGK(c, start, ast.GroupChangeMatchingOptions{Seq: seq, IsIsolated: true}), true, nil
			}
		}
		return source.Located[ast.GroupKind]{}, true, diag.NewUnknownGroupKind(c.SpanFrom(start), c.Rest())
	}
}

// lexAngleBracketGroup dispatches on what follows an already-consumed
// "(?<": lookbehind, negative lookbehind, non-atomic lookbehind, a named
// capture "(?<name>", or a .NET balancing group "(?<name-prior>" /
// "(?<-prior>".
func lexAngleBracketGroup(c *source.Cursor, start source.Position) (source.Located[ast.GroupKind], bool, *diag.LocatedError) {
	switch {
	case c.TryEat("="):
		return locGK(c, start, ast.GroupLookbehind{}), true, nil
	case c.TryEat("!"):
		return locGK(c, start, ast.GroupNegativeLookbehind{}), true, nil
	case c.TryEat("*"):
		return locGK(c, start, ast.GroupNonAtomicLookbehind{}), true, nil
	case c.TryEat("-"):
		prior := c.TakeWhile(func(r rune) bool { return r != '>' })
		if !c.TryEat(">") {
			return source.Located[ast.GroupKind]{}, true, diag.NewExpected(c.SpanFrom(start), '>')
		}
		return locGK(c, start, ast.GroupBalancedCapture{Prior: prior}), true, nil
	default:
		name := c.TakeWhile(func(r rune) bool { return r != '>' && r != '-' })
		if c.TryEat("-") {
			prior := c.TakeWhile(func(r rune) bool { return r != '>' })
			if !c.TryEat(">") {
				return source.Located[ast.GroupKind]{}, true, diag.NewExpected(c.SpanFrom(start), '>')
			}
			return locGK(c, start, ast.GroupBalancedCapture{Name: name, Prior: prior}), true, nil
		}
		if !c.TryEat(">") {
			return source.Located[ast.GroupKind]{}, true, diag.NewExpected(c.SpanFrom(start), '>')
		}
		return locGK(c, start, ast.GroupNamedCapture{Name: name}), true, nil
	}
}

func isNameChar(r rune) bool {
	return r != '>' && r != '\'' && r != ')'
}

// tryLexOptionSeq consumes a run of matching-option letters and '-'
// separators, e.g. "ims-x", without consuming the terminating ':' or ')'.
// It leaves the cursor unmoved and returns ok == false if the run is empty
// or contains a character that could not be part of an option sequence.
func tryLexOptionSeq(c *source.Cursor) (string, bool) {
	mark := c.Mark()
	seq := c.TakeWhile(func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-'
	})
	if seq == "" {
		return "", false
	}
	r, ok := c.Peek()
	if !ok || (r != ':' && r != ')') {
		c.Reset(mark)
		return "", false
	}
	return seq, true
}
