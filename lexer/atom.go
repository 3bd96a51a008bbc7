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
	"strconv"
	"strings"

	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/source"
)

// singleLetterEscapes are the backslash escapes whose meaning is fully
// captured by the escape letter itself: control-character escapes
// (\a \e \f \n \r \t) and the class-shorthand escapes (\d \D \s \S \w \W
// \h \H \v \V \R \X). Both are preserved as AtomEscaped rather than
// expanded, since expanding a shorthand class into its member characters
// is a semantic concern this module does not take on.
var singleLetterEscapes = map[rune]bool{
	'a': true, 'e': true, 'f': true, 'n': true, 'r': true, 't': true,
	'd': true, 'D': true, 's': true, 'S': true, 'w': true, 'W': true,
	'h': true, 'H': true, 'v': true, 'V': true, 'R': true, 'X': true,
	'O': true,
}

var anchorEscapes = map[rune]string{
	'A': "A", 'Z': "Z", 'z': "z", 'b': "b", 'B': "B", 'G': "G", 'K': "K",
}

// LexAtom recognizes a single atom. See package doc for the failure
// discipline.
func LexAtom(c *source.Cursor, env Env) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	start := c.Pos()
	r, ok := c.Peek()
	if !ok {
		return source.Located[ast.AtomKind]{}, false, nil
	}

	switch r {
	case '\\':
		_, _ = c.Advance()
		return lexEscape(c, env, start)
	case '.':
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomAny{}), true, nil
	case '^':
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomStartOfLine{}), true, nil
	case '$':
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomEndOfLine{}), true, nil
	default:
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomChar{Char: r}), true, nil
	}
}

func locAtom(c *source.Cursor, start source.Position, k ast.AtomKind) source.Located[ast.AtomKind] {
	return source.NewLocated(k, c.SpanFrom(start))
}

func lexEscape(c *source.Cursor, env Env, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	r, ok := c.Peek()
	if !ok {
		return source.Located[ast.AtomKind]{}, true, diag.NewUnexpectedEndOfInput(c.SpanFrom(start))
	}

	switch {
	case singleLetterEscapes[r]:
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomEscaped{Letter: r}), true, nil

	case anchorEscapes[r] != "":
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomAnchor{Anchor: anchorEscapes[r]}), true, nil

	case r == 'x':
		_, _ = c.Advance()
		return lexHexEscape(c, start)

	case r == 'u' && env.Syntax.ECMAScript:
		_, _ = c.Advance()
		return lexUEscape(c, start)

	case r == 'U':
		_, _ = c.Advance()
		return lexUpperUEscape(c, start)

	case r == 'N':
		_, _ = c.Advance()
		return lexNamedCharacter(c, start)

	case r == 'p' || r == 'P':
		negated := r == 'P'
		_, _ = c.Advance()
		return lexProperty(c, start, negated)

	case r == 'c':
		_, _ = c.Advance()
		return lexKeyboardControl(c, start)

	case r == 'M':
		return lexKeyboardMeta(c, start)

	case r == 'k' || r == 'g':
		return lexBackreferenceEscape(c, env, start, r)

	case isDigit(r) && r != '0':
		return lexOctalOrBackref(c, env, start)

	case r == '0':
		_, _ = c.Advance()
		return lexOctalLiteral(c, start, "0")

	case !isLetter(r):
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomChar{Char: r}), true, nil

	default:
		_, _ = c.Advance()
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidEscape(c.SpanFrom(start), r)
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// lexHexEscape handles \xhh and \x{h...}.
func lexHexEscape(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	if c.TryEat("{") {
		digits := takeHex(c, 0)
		if digits == "" || !c.TryEat("}") {
			return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
		}
		val, ok := parseHexRune(digits)
		if !ok {
			return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
		}
		return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
	}
	digits := takeHex(c, 2)
	val, _ := parseHexRune(digits) // empty digits -> 0, which is valid
	return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
}

// lexUEscape handles ECMAScript's \uhhhh and \u{h...}. The caller only
// reaches this under the ECMAScript flag; PCRE and Oniguruma have no such
// escape, so \u there falls through to the plain invalid-escape case.
func lexUEscape(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	if c.TryEat("{") {
		digits := takeHex(c, 0)
		if digits == "" || !c.TryEat("}") {
			return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
		}
		val, ok := parseHexRune(digits)
		if !ok {
			return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
		}
		return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
	}
	digits := takeHex(c, 4)
	if len(digits) != 4 {
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
	}
	val, ok := parseHexRune(digits)
	if !ok {
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
	}
	return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
}

// lexUpperUEscape handles Python/Oniguruma's \Uhhhhhhhh (exactly 8 hex
// digits).
func lexUpperUEscape(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	digits := takeHex(c, 8)
	if len(digits) != 8 {
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
	}
	val, ok := parseHexRune(digits)
	if !ok {
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
	}
	return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
}

// lexNamedCharacter handles \N{NAME} and \N{U+HEX}.
func lexNamedCharacter(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	if !c.TryEat("{") {
		return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
	}
	name := c.TakeGraphemesWhile(func(g string) bool { return g != "}" })
	if !c.TryEat("}") {
		return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
	}
	if strings.HasPrefix(name, "U+") {
		if val, ok := parseHexRune(name[2:]); ok {
			return locAtom(c, start, ast.AtomScalar{Codepoint: val}), true, nil
		}
	}
	return locAtom(c, start, ast.AtomNamedCharacter{Name: name}), true, nil
}

// lexProperty handles \p{...} and \P{...}.
func lexProperty(c *source.Cursor, start source.Position, negated bool) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	if !c.TryEat("{") {
		return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
	}
	body := c.TakeWhile(func(r rune) bool { return r != '}' })
	if !c.TryEat("}") {
		return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
	}
	if strings.HasPrefix(body, "^") {
		negated = true
		body = body[1:]
	}
	spec := classifyProperty(body)
	return locAtom(c, start, ast.AtomProperty{Spec: spec, Negated: negated}), true, nil
}

func lexKeyboardControl(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	r, ok := c.Advance()
	if !ok {
		return source.Located[ast.AtomKind]{}, true, diag.NewUnexpectedEndOfInput(c.SpanFrom(start))
	}
	return locAtom(c, start, ast.AtomKeyboardControl{Char: r}), true, nil
}

// lexKeyboardMeta handles Oniguruma's \M-X and \M-\C-X. The caller has
// peeked 'M' but not consumed it.
func lexKeyboardMeta(c *source.Cursor, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	mark := c.Mark()
	if !c.TryEat("M-") {
		c.Reset(mark)
		_, _ = c.Advance() // consume the 'M' as a plain invalid escape below
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidEscape(c.SpanFrom(start), 'M')
	}
	if c.TryEat("\\C-") {
		r, ok := c.Advance()
		if !ok {
			return source.Located[ast.AtomKind]{}, true, diag.NewUnexpectedEndOfInput(c.SpanFrom(start))
		}
		return locAtom(c, start, ast.AtomKeyboardMetaControl{Char: r}), true, nil
	}
	r, ok := c.Advance()
	if !ok {
		return source.Located[ast.AtomKind]{}, true, diag.NewUnexpectedEndOfInput(c.SpanFrom(start))
	}
	return locAtom(c, start, ast.AtomKeyboardMeta{Char: r}), true, nil
}

// lexBackreferenceEscape handles \k<name>, \k'name', \k{name}, and \g{name}
// / \g<name> / \gN (also \g+N, \g-N) subroutine-call forms. A \k or \g
// followed by none of these is an invalid escape.
func lexBackreferenceEscape(c *source.Cursor, env Env, start source.Position, introducer rune) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	mark := c.Mark()
	_, _ = c.Advance() // consume 'k' or 'g'

	var closer string
	switch {
	case c.TryEat("<"):
		closer = ">"
	case c.TryEat("'"):
		closer = "'"
	case c.TryEat("{"):
		closer = "}"
	default:
		numStart := c.Pos()
		_ = c.TryEat("+") || c.TryEat("-")
		if _, ok := takeDecimal(c); ok && introducer == 'g' {
			ref := parseReferenceTarget(c.Span(numStart, c.Pos()).Text())
			return locAtom(c, start, ast.AtomSubpattern{Ref: ref}), true, nil
		}
		c.Reset(mark)
		_, _ = c.Advance() // consume the 'k' or 'g' as a plain invalid escape
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidEscape(c.SpanFrom(start), introducer)
	}

	body := c.TakeWhile(func(r rune) bool { return r != rune(closer[0]) })
	if !c.TryEat(closer) {
		return source.Located[ast.AtomKind]{}, true, diag.NewExpectedBrace(c.SpanFrom(start))
	}

	ref := parseReferenceBody(body)
	if introducer == 'g' {
		return locAtom(c, start, ast.AtomSubpattern{Ref: ref}), true, nil
	}
	return locAtom(c, start, ast.AtomBackreference{Ref: ref}), true, nil
}

// parseReferenceBody interprets the text between a reference's delimiters
// as an absolute number, a signed relative number, or a bare name, with an
// optional trailing "+n"/"-n" recursion-level suffix (e.g. Oniguruma's
// \k<name+1>) stripped off and attached separately first.
func parseReferenceBody(body string) ast.Reference {
	body, level := splitRecursionLevel(body)

	ref := parseReferenceTarget(body)
	ref.RecursionLevel = level
	return ref
}

func parseReferenceTarget(body string) ast.Reference {
	if body == "" {
		return ast.Reference{Kind: ast.RefNamed, Name: body}
	}
	sign := 0
	rest := body
	if body[0] == '+' {
		sign = 1
		rest = body[1:]
	} else if body[0] == '-' {
		sign = -1
		rest = body[1:]
	}
	if n, ok := parseDecimal(rest); ok {
		if sign != 0 {
			return ast.Reference{Kind: ast.RefRelative, Index: n, Sign: sign}
		}
		return ast.Reference{Kind: ast.RefAbsolute, Index: n}
	}
	return ast.Reference{Kind: ast.RefNamed, Name: body}
}

// splitRecursionLevel strips a trailing "+n"/"-n" recursion-level suffix
// from a reference body, if one is present, returning the remaining prefix
// and the level. The search runs from the end and skips position 0, so a
// bare relative reference like "-1" (all sign, no name to suffix) is left
// alone rather than misread as "" with level -1.
func splitRecursionLevel(body string) (string, *int) {
	for i := len(body) - 1; i > 0; i-- {
		if body[i] != '+' && body[i] != '-' {
			continue
		}
		digits := body[i+1:]
		if digits == "" {
			continue
		}
		n, ok := parseDecimal(digits)
		if !ok {
			continue
		}
		if body[i] == '-' {
			n = -n
		}
		return body[:i], &n
	}
	return body, nil
}

// lexOctalOrBackref resolves the back-reference/octal ambiguity for \1
// through \9...: a maximal run of decimal digits n where n <= the number
// of capturing groups opened so far is a back-reference; otherwise the
// leading octal digits, at most three, are an octal escape, and a leading
// '8' or '9' is a literal digit.
func lexOctalOrBackref(c *source.Cursor, env Env, start source.Position) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	rest := c.Rest()
	i := 0
	for i < len(rest) && isDigit(rune(rest[i])) {
		i++
	}
	full := rest[:i]
	if n, ok := parseDecimal(full); ok && n > 0 && n <= env.PriorGroupCount {
		for j := 0; j < i; j++ {
			_, _ = c.Advance()
		}
		ref := ast.Reference{Kind: ast.RefAbsolute, Index: n}
		return locAtom(c, start, ast.AtomBackreference{Ref: ref}), true, nil
	}

	j := 0
	for j < i && j < 3 && isOctalDigit(rune(full[j])) {
		j++
	}
	if j == 0 {
		_, _ = c.Advance()
		return locAtom(c, start, ast.AtomChar{Char: rune(full[0])}), true, nil
	}
	for k := 0; k < j; k++ {
		_, _ = c.Advance()
	}
	return lexOctalLiteral(c, start, full[:j])
}

func lexOctalLiteral(c *source.Cursor, start source.Position, digits string) (source.Located[ast.AtomKind], bool, *diag.LocatedError) {
	val, err := strconv.ParseInt(digits, 8, 32)
	if err != nil {
		return source.Located[ast.AtomKind]{}, true, diag.NewInvalidUnicodeScalar(c.SpanFrom(start), digits)
	}
	return locAtom(c, start, ast.AtomScalar{Codepoint: rune(val)}), true, nil
}
