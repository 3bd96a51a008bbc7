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

// parseGroup implements Group := GroupStart RecursiveRegex ')'.
//
// A GroupChangeMatchingOptions kind with HasImplicitScope true (the
// isolated "(?ims-x)" form) has no body of its own: it scopes the rest of
// the enclosing sequence rather than a parenthesized child, so it is
// represented with an empty child instead of recursing into
// parseAlternation.
func parseGroup(c *source.Cursor, ctx *ParsingContext) (ast.Node, bool, *diag.LocatedError) {
	start := c.Pos()
	kindLoc, ok, err := lexer.LexGroupStart(c, ctx.Env)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, false, nil
	}

	recordGroupKind(ctx, kindLoc.Value)

	if kindLoc.Value.HasImplicitScope() {
		return &ast.Group{Loc: c.SpanFrom(start), Kind: kindLoc, Child: &ast.Empty{Loc: c.SpanHere()}}, true, nil
	}

	child, err := parseAlternation(c, ctx)
	if err != nil {
		return nil, true, err
	}
	if !c.TryEat(")") {
		return nil, true, diag.NewExpectedGroupCloser(c.SpanFrom(start))
	}
	return &ast.Group{Loc: c.SpanFrom(start), Kind: kindLoc, Child: child}, true, nil
}
