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

// parseAbsentFunction parses one of the four Oniguruma absent-function
// forms, all opened by "(?~". Without a pipe, it's a bare repeater. With
// a pipe, the shape of the parsed body decides which of the remaining
// three kinds it is: empty body is a clearer, a two-branch alternation is
// an absentee|expr pair, and anything else is a stopper.
func parseAbsentFunction(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	start := c.Pos()
	startSpan, hasPipe, ok := lexer.LexAbsentFunctionStart(c, ctx.Env)
	if !ok {
		return nil, false, nil
	}

	body, err := parseAlternation(c, ctx)
	if err != nil {
		return nil, true, err
	}
	if !c.TryEat(")") {
		return nil, true, diag.NewExpectedGroupCloser(c.SpanFrom(start))
	}

	if !hasPipe {
		kind := ast.AbsentRepeater{Child: body}
		return &ast.AbsentFunction{Loc: c.SpanFrom(start), Kind: kind, StartSpan: startSpan}, true, nil
	}

	var kind ast.AbsentKind
	switch {
	case isEmptyNode(body):
		kind = ast.AbsentClearer{}
	default:
		if alt, ok := body.(*ast.Alternation); ok {
			if len(alt.Children) > 2 {
				return nil, true, diag.NewTooManyAbsentExpressionChildren(alt.Loc, len(alt.Children))
			}
			kind = ast.AbsentExpression{Absentee: alt.Children[0], Pipe: alt.Pipes[0], Expr: alt.Children[1]}
		} else {
			kind = ast.AbsentStopper{Child: body}
		}
	}
	return &ast.AbsentFunction{Loc: c.SpanFrom(start), Kind: kind, StartSpan: startSpan}, true, nil
}
