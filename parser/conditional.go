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

// parseConditional implements:
//
//	Conditional := KnownCondStart RecursiveRegex ')'
//	             | GroupCondStart GroupBody RecursiveRegex ')'
//
// The body is parsed as an ordinary RecursiveRegex and then split into
// its true/false branches: a two-branch Alternation splits along its
// single pipe, anything else becomes the true branch with a synthesized
// empty false branch, and a three-or-more branch Alternation is rejected.
func parseConditional(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	start := c.Pos()
	if !lexer.LexConditionalStart(c) {
		return nil, false, nil
	}
	condStart := c.Pos()

	var condKind ast.ConditionKind
	if kind, ok, err := lexer.LexKnownConditionStart(c, ctx.Env); err != nil {
		return nil, true, err
	} else if ok {
		condKind = kind
	} else {
		gk, ok, err := lexer.LexGroupConditionStart(c, ctx.Env)
		if err != nil {
			return nil, true, err
		}
		if !ok {
			return nil, true, diag.NewUnknownConditionalStart(c.SpanFrom(start))
		}
		recordGroupKind(ctx, gk.Value)

		child, err := parseAlternation(c, ctx)
		if err != nil {
			return nil, true, err
		}
		if !c.TryEat(")") {
			return nil, true, diag.NewExpectedGroupCloser(c.SpanFrom(condStart))
		}
		group := &ast.Group{Loc: c.SpanFrom(condStart), Kind: gk, Child: child}
		condKind = ast.CondGroup{Group: group}
	}
	condition := ast.Condition{Loc: c.SpanFrom(condStart), Kind: condKind}

	body, err := parseAlternation(c, ctx)
	if err != nil {
		return nil, true, err
	}
	trueBranch, pipe, falseBranch, err := splitConditionalBody(c, body)
	if err != nil {
		return nil, true, err
	}
	if !c.TryEat(")") {
		return nil, true, diag.NewExpectedConditionalCloser(c.SpanFrom(start))
	}

	return &ast.Conditional{
		Loc:       c.SpanFrom(start),
		Condition: condition,
		True:      trueBranch,
		Pipe:      pipe,
		False:     falseBranch,
	}, true, nil
}

// splitConditionalBody breaks a conditional's already-parsed body into
// its true and false branches. A body of anything but a two-branch
// Alternation stands entirely as the true branch, with a zero-width
// Empty synthesized for the false branch.
func splitConditionalBody(c *source.Cursor, body ast.Node) (ast.Node, *source.Span, ast.Node, *diag.LocatedError) {
	alt, ok := body.(*ast.Alternation)
	if !ok {
		return body, nil, &ast.Empty{Loc: c.SpanHere()}, nil
	}
	if len(alt.Children) > 2 {
		return nil, nil, nil, diag.NewTooManyBranchesInConditional(alt.Loc, len(alt.Children))
	}
	pipe := alt.Pipes[0]
	return alt.Children[0], &pipe, alt.Children[1], nil
}
