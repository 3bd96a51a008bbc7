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

package ast

import "github.com/regexlang/rxsyntax/source"

// AbsentKind is the sum type of Oniguruma's four "(?~...)" shapes.
type AbsentKind interface {
	isAbsentKind()
}

type absentKindBase struct{}

func (absentKindBase) isAbsentKind() {}

// AbsentRepeater is "(?~Child)".
type AbsentRepeater struct {
	absentKindBase
	Child Node
}

// AbsentExpression is "(?~|Absentee|Expr)". Per spec §4.4, the inner body
// must parse to a two-branch alternation; this is enforced by the parser
// before constructing an AbsentExpression.
type AbsentExpression struct {
	absentKindBase
	Absentee Node
	Pipe     source.Span
	Expr     Node
}

// AbsentStopper is "(?~|Child)".
type AbsentStopper struct {
	absentKindBase
	Child Node
}

// AbsentClearer is the bare "(?~|)".
type AbsentClearer struct{ absentKindBase }

var (
	_ AbsentKind = AbsentRepeater{}
	_ AbsentKind = AbsentExpression{}
	_ AbsentKind = AbsentStopper{}
	_ AbsentKind = AbsentClearer{}
)
