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
	"github.com/regexlang/rxsyntax/syntax"
)

// Parse turns pattern into a located AST under the given syntax options.
// It consumes the whole cursor; any character left over after the top
// level regex has been read can only be a stray, unbalanced ')'.
func Parse(pattern string, opts syntax.Options) (ast.Node, *diag.LocatedError) {
	c := source.NewCursor(pattern)
	ctx := NewParsingContext(opts)

	node, err := parseRegex(c, ctx)
	if err != nil {
		return nil, err
	}
	if !c.IsEmpty() {
		return nil, diag.NewUnbalancedEndOfGroup(c.SpanHere())
	}
	return node, nil
}

// parseRegex implements Regex := GlobalMatchingOption* RecursiveRegex.
//
// Backtracking directives share the "(*" prefix with global matching
// options, so LexBacktrackingDirective is tried first on every iteration:
// if it matches, the "(*" content belongs to the pattern body, not the
// option prefix, and the loop stops without consuming it.
func parseRegex(c *source.Cursor, ctx *ParsingContext) (ast.Node, *diag.LocatedError) {
	start := c.Pos()
	var opts []ast.GlobalOpt
	for {
		mark := c.Mark()
		if _, ok, _ := lexer.LexBacktrackingDirective(c); ok {
			c.Reset(mark)
			break
		}
		c.Reset(mark)

		opt, ok, err := lexer.LexGlobalMatchingOption(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		opts = append(opts, opt)
	}

	body, err := parseAlternation(c, ctx)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return body, nil
	}
	return &ast.GlobalMatchingOptions{Loc: c.SpanFrom(start), Options: opts, AST: body}, nil
}

// parseAlternation implements both RecursiveRegex and Alternation:
//
//	RecursiveRegex := ε | Alternation
//	Alternation    := Concatenation ('|' Concatenation)*
//
// A lone branch collapses to that branch directly, since ast.Alternation
// requires at least two children; an empty pattern collapses further,
// down through parseConcatenation, to a single *ast.Empty.
func parseAlternation(c *source.Cursor, ctx *ParsingContext) (ast.Node, *diag.LocatedError) {
	start := c.Pos()

	first, err := parseConcatenation(c, ctx)
	if err != nil {
		return nil, err
	}

	var children []ast.Node
	var pipes []source.Span
	children = append(children, first)

	for {
		pipeStart := c.Pos()
		if !c.TryEat("|") {
			break
		}
		pipes = append(pipes, c.SpanFrom(pipeStart))

		next, err := parseConcatenation(c, ctx)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return &ast.Alternation{Loc: c.SpanFrom(start), Children: children, Pipes: pipes}, nil
}

// atSequenceBoundary reports whether the cursor sits where a
// Concatenation must stop: end of input, a branch separator, or a group
// closer.
func atSequenceBoundary(c *source.Cursor) bool {
	r, ok := c.Peek()
	return !ok || r == '|' || r == ')'
}

// parseConcatenation implements Concatenation := ConcatComponent*. Zero
// components collapse to *ast.Empty, one collapses to that component
// directly, and two or more are wrapped in *ast.Concatenation.
func parseConcatenation(c *source.Cursor, ctx *ParsingContext) (ast.Node, *diag.LocatedError) {
	start := c.Pos()
	var children []ast.Node

	for !atSequenceBoundary(c) {
		node, ok, err := parseConcatComponent(c, ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		children = append(children, node)
	}

	switch len(children) {
	case 0:
		return &ast.Empty{Loc: c.SpanFrom(start)}, nil
	case 1:
		return children[0], nil
	default:
		return &ast.Concatenation{Loc: c.SpanFrom(start), Children: children}, nil
	}
}

// parseConcatComponent implements:
//
//	ConcatComponent := Trivia | Quote | Quantification
//	Quantification  := QuantOperand Quantifier?
func parseConcatComponent(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	if trivia, ok, err := lexer.LexTrivia(c, ctx.Env); err != nil {
		return nil, true, err
	} else if ok {
		return trivia, true, nil
	}

	if quote, ok, err := lexer.LexQuote(c); err != nil {
		return nil, true, err
	} else if ok {
		return quote, true, nil
	}

	start := c.Pos()
	operand, ok, err := parseQuantOperand(c, ctx)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, false, nil
	}

	quantMark := c.Mark()
	amount, kind, ok, err := lexer.LexQuantifier(c)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		c.Reset(quantMark)
		return operand, true, nil
	}
	if !ast.IsQuantifiable(operand) {
		return nil, true, diag.NewNotQuantifiable(amount.Loc)
	}
	return &ast.Quantification{
		Loc:     c.SpanFrom(start),
		Amount:  amount,
		Kind:    kind,
		Operand: operand,
	}, true, nil
}

// parseQuantOperand implements:
//
//	QuantOperand := Conditional | AbsentFunction | Group
//	              | CustomCharClass | Atom
//
// Callouts and backtracking directives are atom-level constructs that
// share their "(?" / "(*" prefixes with the group and global-option
// syntax, so they are tried first, ahead of the productions the grammar
// names explicitly.
func parseQuantOperand(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	if atom, ok, err := lexer.LexCallout(c); err != nil {
		return nil, true, err
	} else if ok {
		return atom, true, nil
	}

	if atom, ok, err := lexer.LexBacktrackingDirective(c); err != nil {
		return nil, true, err
	} else if ok {
		return atom, true, nil
	}

	if node, ok, err := parseConditional(c, ctx); err != nil {
		return nil, true, err
	} else if ok {
		return node, true, nil
	}

	if node, ok, err := parseAbsentFunction(c, ctx); err != nil {
		return nil, true, err
	} else if ok {
		return node, true, nil
	}

	if node, ok, err := parseGroup(c, ctx); err != nil {
		return nil, true, err
	} else if ok {
		return node, true, nil
	}

	if node, ok, err := parseCustomCharClass(c, ctx); err != nil {
		return nil, true, err
	} else if ok {
		return node, true, nil
	}

	if located, ok, err := lexer.LexAtom(c, ctx.Env); err != nil {
		return nil, true, err
	} else if ok {
		return &ast.Atom{Loc: located.Loc, Kind: located.Value}, true, nil
	}

	return nil, false, nil
}

func isEmptyNode(n ast.Node) bool {
	_, ok := n.(*ast.Empty)
	return ok
}

// recordGroupKind updates ctx to reflect a just-parsed group of the given
// kind: capturing groups advance PriorGroupCount, and named or balanced
// captures register their name.
func recordGroupKind(ctx *ParsingContext, kind ast.GroupKind) {
	if kind.IsCapturing() {
		ctx.PriorGroupCount++
	}
	switch g := kind.(type) {
	case ast.GroupNamedCapture:
		ctx.RecordGroupName(g.Name)
	case ast.GroupBalancedCapture:
		ctx.RecordGroupName(g.Name)
	}
}
