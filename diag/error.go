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

// Package diag holds the located-error value produced by the lexer and
// parser. Unlike a compiler that accumulates many diagnostics across a
// whole file tree, a single regex parse halts on the first error, so this
// package is a scaled-down cousin of a full diagnostics renderer: one
// Kind, one span, one message.
package diag

import (
	"fmt"

	"github.com/regexlang/rxsyntax/source"
)

// Kind identifies the category of a LocatedError.
type Kind int

const (
	// Lexical errors.
	UnexpectedEndOfInput Kind = iota + 1
	InvalidEscape
	InvalidUnicodeScalar
	ExpectedBrace
	ExpectedNumber
	InvalidQuantifierRange
	UnknownProperty
	ExpectedEquals

	// Structural errors.
	UnbalancedEndOfGroup
	Expected
	ExpectedGroupCloser
	ExpectedConditionalCloser
	UnknownGroupKind
	UnknownConditionalStart
	UnknownDelimiter

	// Semantic errors.
	NotQuantifiable
	TooManyBranchesInConditional
	TooManyAbsentExpressionChildren
	ExpectedCustomCharacterClassMembers
	InvalidCharacterClassRangeOperand
)

var kindNames = map[Kind]string{
	UnexpectedEndOfInput:                "UnexpectedEndOfInput",
	InvalidEscape:                        "InvalidEscape",
	InvalidUnicodeScalar:                "InvalidUnicodeScalar",
	ExpectedBrace:                        "ExpectedBrace",
	ExpectedNumber:                       "ExpectedNumber",
	InvalidQuantifierRange:               "InvalidQuantifierRange",
	UnknownProperty:                      "UnknownProperty",
	ExpectedEquals:                       "ExpectedEquals",
	UnbalancedEndOfGroup:                 "UnbalancedEndOfGroup",
	Expected:                             "Expected",
	ExpectedGroupCloser:                  "ExpectedGroupCloser",
	ExpectedConditionalCloser:            "ExpectedConditionalCloser",
	UnknownGroupKind:                     "UnknownGroupKind",
	UnknownConditionalStart:              "UnknownConditionalStart",
	UnknownDelimiter:                     "UnknownDelimiter",
	NotQuantifiable:                      "NotQuantifiable",
	TooManyBranchesInConditional:         "TooManyBranchesInConditional",
	TooManyAbsentExpressionChildren:      "TooManyAbsentExpressionChildren",
	ExpectedCustomCharacterClassMembers:  "ExpectedCustomCharacterClassMembers",
	InvalidCharacterClassRangeOperand:    "InvalidCharacterClassRangeOperand",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// LocatedError is the single error type this module ever returns from a
// parse: a diagnostic Kind, the source span it occurred at, and a
// human-readable message. The first error encountered by the lexer or
// parser wins; there is no recovery and no partial AST.
type LocatedError struct {
	Kind    Kind
	Loc     source.Span
	message string

	// Structured payload fields, populated only for the Kind that uses
	// them. Tests and downstream tooling can match on these instead of
	// parsing Error() text.
	Char        rune
	Text        string
	Key, Value  string
	Lo, Hi      int
	N           int
}

// Error implements error.
func (e *LocatedError) Error() string {
	loc := e.Loc.StartLoc()
	return fmt.Sprintf("%d:%d: %s: %s", loc.Line, loc.Col, e.Kind, e.message)
}

// Span implements source.Spanner.
func (e *LocatedError) Span() source.Span { return e.Loc }

func newErr(kind Kind, loc source.Span, format string, args ...any) *LocatedError {
	return &LocatedError{Kind: kind, Loc: loc, message: fmt.Sprintf(format, args...)}
}

// NewUnexpectedEndOfInput reports that input ended where more was required.
func NewUnexpectedEndOfInput(loc source.Span) *LocatedError {
	return newErr(UnexpectedEndOfInput, loc, "unexpected end of input")
}

// NewInvalidEscape reports an escape sequence that is not recognized.
func NewInvalidEscape(loc source.Span, c rune) *LocatedError {
	e := newErr(InvalidEscape, loc, "invalid escape sequence %q", c)
	e.Char = c
	return e
}

// NewInvalidUnicodeScalar reports a \u/\x/\U escape whose hex digits do not
// name a valid Unicode scalar value.
func NewInvalidUnicodeScalar(loc source.Span, text string) *LocatedError {
	e := newErr(InvalidUnicodeScalar, loc, "invalid unicode scalar value %q", text)
	e.Text = text
	return e
}

// NewExpectedBrace reports a missing '{' or '}' where one was required.
func NewExpectedBrace(loc source.Span) *LocatedError {
	return newErr(ExpectedBrace, loc, "expected '{' or '}'")
}

// NewExpectedNumber reports that a decimal/hex/octal number was required
// but not found.
func NewExpectedNumber(loc source.Span) *LocatedError {
	return newErr(ExpectedNumber, loc, "expected a number")
}

// NewInvalidQuantifierRange reports a {lo,hi} quantifier with lo > hi.
func NewInvalidQuantifierRange(loc source.Span, lo, hi int) *LocatedError {
	e := newErr(InvalidQuantifierRange, loc, "invalid quantifier range {%d,%d}: lower bound exceeds upper bound", lo, hi)
	e.Lo, e.Hi = lo, hi
	return e
}

// NewUnknownProperty reports a \p{...} body that this module's property
// classifier cannot parse into key/value form. Unknown *names* are not an
// error (spec §9); this is for malformed property syntax.
func NewUnknownProperty(loc source.Span, key, value string) *LocatedError {
	e := newErr(UnknownProperty, loc, "malformed character property %q", key+value)
	e.Key, e.Value = key, value
	return e
}

// NewExpectedEquals reports a missing '=' inside a key=value construct.
func NewExpectedEquals(loc source.Span) *LocatedError {
	return newErr(ExpectedEquals, loc, "expected '='")
}

// NewUnbalancedEndOfGroup reports a ')' with no matching '('.
func NewUnbalancedEndOfGroup(loc source.Span) *LocatedError {
	return newErr(UnbalancedEndOfGroup, loc, "unbalanced ')'")
}

// NewExpected reports that a specific literal character was required but
// not found.
func NewExpected(loc source.Span, c rune) *LocatedError {
	e := newErr(Expected, loc, "expected %q", c)
	e.Char = c
	return e
}

// NewExpectedGroupCloser reports a group missing its closing ')'.
func NewExpectedGroupCloser(loc source.Span) *LocatedError {
	return newErr(ExpectedGroupCloser, loc, "expected ')' to close group")
}

// NewExpectedConditionalCloser reports a conditional missing its closing
// ')'.
func NewExpectedConditionalCloser(loc source.Span) *LocatedError {
	return newErr(ExpectedConditionalCloser, loc, "expected ')' to close conditional")
}

// NewUnknownGroupKind reports a "(?..." prefix that does not match any
// known group-introducer form.
func NewUnknownGroupKind(loc source.Span, text string) *LocatedError {
	e := newErr(UnknownGroupKind, loc, "unrecognized group kind %q", text)
	e.Text = text
	return e
}

// NewUnknownConditionalStart reports a "(?(...)" whose condition is
// neither a known condition form nor a parseable group.
func NewUnknownConditionalStart(loc source.Span) *LocatedError {
	return newErr(UnknownConditionalStart, loc, "unrecognized conditional form")
}

// NewUnknownDelimiter reports a delimiter pair that ParseWithDelimiters
// does not recognize.
func NewUnknownDelimiter(loc source.Span, text string) *LocatedError {
	e := newErr(UnknownDelimiter, loc, "unrecognized delimiter %q", text)
	e.Text = text
	return e
}

// NewNotQuantifiable reports an attempt to quantify an AST node whose kind
// cannot be quantified (spec §4.4's isQuantifiable table).
func NewNotQuantifiable(loc source.Span) *LocatedError {
	return newErr(NotQuantifiable, loc, "this construct cannot be quantified")
}

// NewTooManyBranchesInConditional reports a conditional body that parsed
// to an alternation with more than two branches.
func NewTooManyBranchesInConditional(loc source.Span, n int) *LocatedError {
	e := newErr(TooManyBranchesInConditional, loc, "conditional has %d branches, expected at most 2", n)
	e.N = n
	return e
}

// NewTooManyAbsentExpressionChildren reports an absent-function expression
// body that parsed to an alternation with more than two branches.
func NewTooManyAbsentExpressionChildren(loc source.Span, n int) *LocatedError {
	e := newErr(TooManyAbsentExpressionChildren, loc, "absent expression has %d branches, expected at most 2", n)
	e.N = n
	return e
}

// NewExpectedCustomCharacterClassMembers reports an empty side of a set
// operation, or an empty class body, inside a custom character class.
func NewExpectedCustomCharacterClassMembers(loc source.Span) *LocatedError {
	return newErr(ExpectedCustomCharacterClassMembers, loc, "expected at least one character class member")
}

// NewInvalidCharacterClassRangeOperand reports a range endpoint (on either
// side of '-') that is not a literal character, e.g. [a-\d].
func NewInvalidCharacterClassRangeOperand(loc source.Span) *LocatedError {
	return newErr(InvalidCharacterClassRangeOperand, loc, "character class range endpoints must be literal characters")
}
