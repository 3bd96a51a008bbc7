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

// LexCallout recognizes a PCRE "(?C)" or "(?Cn)" debugging callout. It
// must be tried before LexGroupStart, since its "(?C" prefix would
// otherwise be mistaken for a "(?ims-x)" matching-option change with the
// single option letter 'C'.
func LexCallout(c *source.Cursor) (*ast.Atom, bool, *diag.LocatedError) {
	start := c.Pos()
	mark := c.Mark()

	if !c.TryEat("(?C") {
		return nil, false, nil
	}
	var number *int
	if digits, ok := takeDecimal(c); ok {
		n, _ := parseDecimal(digits)
		number = &n
	}
	if !c.TryEat(")") {
		c.Reset(mark)
		return nil, false, nil
	}
	kind := ast.AtomCallout{Kind: ast.CalloutKind{Number: number}}
	return &ast.Atom{Loc: c.SpanFrom(start), Kind: kind}, true, nil
}
