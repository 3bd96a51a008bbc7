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

// Package ast is the abstract syntax tree produced by parsing a regex
// pattern: an owned, immutable tree built bottom-up by package parser.
//
// Every node carries a source.Span; the AST itself is a pure tree (no
// cycles), so each recursive variant stores its children by value or by a
// plain pointer/slice rather than through any interning or arena scheme.
package ast

import "github.com/regexlang/rxsyntax/source"

// Node is any AST node. It is a closed sum type: the only implementations
// are the types in this package. Consumers that need to inspect an
// arbitrary Node should use a type switch (see Children, for a
// ready-made exhaustive one) rather than ad hoc type assertions.
type Node interface {
	source.Spanner

	// isNode is unexported so that Node cannot be implemented outside this
	// package; this is what makes it a closed sum type.
	isNode()
}

// Empty is the AST for a pattern (or a branch of one) that matches the
// empty string with no internal structure: the parse of "", and each side
// of a bare "|".
type Empty struct {
	Loc source.Span
}

func (n *Empty) Span() source.Span { return n.Loc }
func (*Empty) isNode()             {}
