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

package parser

import (
	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/lexer"
	"github.com/regexlang/rxsyntax/source"
)

// parseCustomCharClass implements:
//
//	CustomCharClass := CCStart Set (BinOp Set)* ']'
//	Set              := Member+
func parseCustomCharClass(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	start := c.Pos()
	startLoc, ok := lexer.LexCustomCCStart(c)
	if !ok {
		return nil, false, nil
	}

	inner := ctx.withInCustomClass()
	members, err := parseMemberChain(c, inner, start)
	if err != nil {
		return nil, true, err
	}
	if !c.TryEat("]") {
		return nil, true, diag.NewExpected(c.SpanFrom(start), ']')
	}
	return &ast.CustomCharacterClass{Loc: c.SpanFrom(start), Start: startLoc, Members: members}, true, nil
}

// parseMemberChain implements the left-associative "Set (BinOp Set)*"
// tail: each additional BinOp folds the accumulated members and the next
// Set into a single MemberSetOperation, so a two-operator class like
// "[a-z&&\w--_]" nests as ((a-z && \w) -- _).
func parseMemberChain(c *source.Cursor, ctx *ParsingContext, classStart source.Position) ([]ast.Member, *diag.LocatedError) {
	chainStart := c.Pos()
	lhs, err := parseMemberSet(c, ctx)
	if err != nil {
		return nil, err
	}
	if len(lhs) == 0 {
		return nil, diag.NewExpectedCustomCharacterClassMembers(c.SpanFrom(classStart))
	}

	for {
		op, ok := lexer.LexCustomCCBinOp(c, ctx.Env)
		if !ok {
			break
		}
		rhs, err := parseMemberSet(c, ctx)
		if err != nil {
			return nil, err
		}
		if len(rhs) == 0 {
			return nil, diag.NewExpectedCustomCharacterClassMembers(op.Loc)
		}
		lhs = []ast.Member{ast.MemberSetOperation{
			Loc: c.SpanFrom(chainStart),
			Lhs: lhs,
			Op:  op,
			Rhs: rhs,
		}}
	}
	return lhs, nil
}

// parseMemberSet implements Set := Member+, stopping at the class closer
// or a set operator.
func parseMemberSet(c *source.Cursor, ctx *ParsingContext) ([]ast.Member, *diag.LocatedError) {
	var members []ast.Member
	for !atCustomClassBoundary(c, ctx.Env) {
		member, ok, err := parseMember(c, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		members = append(members, member)
	}
	return members, nil
}

// atCustomClassBoundary reports whether the cursor sits at the end of the
// current Set: end of input, the class closer, or a set operator. The
// operator check consumes and restores speculatively so a genuine range
// dash ("a-z") is never mistaken for the start of "--".
func atCustomClassBoundary(c *source.Cursor, env lexer.Env) bool {
	r, ok := c.Peek()
	if !ok || r == ']' {
		return true
	}
	mark := c.Mark()
	if _, matched := lexer.LexCustomCCBinOp(c, env); matched {
		c.Reset(mark)
		return true
	}
	return false
}

// parseMember implements:
//
//	Member := CustomCharClass | Quote | !']' !BinOp (Range | Atom)
//	Range   := Atom '-' Atom
func parseMember(c *source.Cursor, ctx *ParsingContext) (ast.Member, bool, *diag.LocatedError) {
	if node, ok, err := parseCustomCharClass(c, ctx); err != nil {
		return nil, true, err
	} else if ok {
		return ast.MemberNested{Class: node.(*ast.CustomCharacterClass)}, true, nil
	}

	if quote, ok, err := lexer.LexQuote(c); err != nil {
		return nil, true, err
	} else if ok {
		return ast.MemberQuote{Quote: quote}, true, nil
	}

	lhsLoc, ok, err := lexer.LexAtom(c, ctx.Env)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, false, nil
	}
	lhs := &ast.Atom{Loc: lhsLoc.Loc, Kind: lhsLoc.Value}

	dash, ok := lexer.LexCustomCCRangeDash(c)
	if !ok {
		return ast.MemberAtom{Atom: lhs}, true, nil
	}

	rhsLoc, ok, err := lexer.LexAtom(c, ctx.Env)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, true, diag.NewInvalidCharacterClassRangeOperand(dash)
	}
	rhs := &ast.Atom{Loc: rhsLoc.Loc, Kind: rhsLoc.Value}

	if !isLiteralRangeEndpoint(lhs.Kind) {
		return nil, true, diag.NewInvalidCharacterClassRangeOperand(lhs.Loc)
	}
	if !isLiteralRangeEndpoint(rhs.Kind) {
		return nil, true, diag.NewInvalidCharacterClassRangeOperand(rhs.Loc)
	}
	return ast.MemberRange{Loc: lhs.Loc.Join(rhs.Loc), Lhs: lhs, Dash: dash, Rhs: rhs}, true, nil
}

// isLiteralRangeEndpoint reports whether kind is a plain character or a
// scalar-value escape, the only atoms accepted at either end of a Range.
// Single-letter escapes (control escapes such as \t as well as shorthand
// classes), anchors, backreferences and the like cannot bound a range.
func isLiteralRangeEndpoint(kind ast.AtomKind) bool {
	switch kind.(type) {
	case ast.AtomChar, ast.AtomScalar:
		return true
	default:
		return false
	}
}
