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

import (
	"fmt"

	"github.com/regexlang/rxsyntax/source"
)

// CCCStart records whether a custom character class opened with '[' or the
// inverted '[^'.
type CCCStart struct {
	Negated bool
}

// Member is the sum type of custom-character-class members.
type Member interface {
	isMember()
	Span() source.Span
}

// MemberAtom is a bare atom inside a class, e.g. the 'a' in "[a-z]" is not
// this (it's part of a MemberRange); a lone 'x' in "[x]" is.
type MemberAtom struct {
	Atom *Atom
}

func (m MemberAtom) isMember()        {}
func (m MemberAtom) Span() source.Span { return m.Atom.Span() }

// MemberRange is "lhs-rhs", e.g. "a-z". Per spec §3.3, both endpoints must
// be literal characters, never classes or escapes that denote classes;
// the parser enforces this before constructing a MemberRange.
type MemberRange struct {
	Loc  source.Span
	Lhs  *Atom
	Dash source.Span
	Rhs  *Atom
}

func (m MemberRange) isMember()        {}
func (m MemberRange) Span() source.Span { return m.Loc }

// MemberQuote is a \Q...\E literal run inside a class.
type MemberQuote struct {
	Quote *Quote
}

func (m MemberQuote) isMember()        {}
func (m MemberQuote) Span() source.Span { return m.Quote.Span() }

// MemberNested is a class nested inside another, e.g. the inner "[aeiou]"
// of "[a-z&&[aeiou]]".
type MemberNested struct {
	Class *CustomCharacterClass
}

func (m MemberNested) isMember()        {}
func (m MemberNested) Span() source.Span { return m.Class.Span() }

// SetOp is a binary operator between two member lists inside a custom
// character class. Set operators are left-associative and only recognized
// inside a class.
type SetOp int

const (
	Intersection SetOp = iota
	Subtraction
	SymmetricDifference
)

func (op SetOp) String() string {
	switch op {
	case Intersection:
		return "intersection"
	case Subtraction:
		return "subtraction"
	case SymmetricDifference:
		return "symmetricDifference"
	default:
		return fmt.Sprintf("SetOp(%d)", int(op))
	}
}

// MemberSetOperation is "lhs OP rhs", e.g. "[a-z]&&[^aeiou]" once both
// sides have been parsed into member lists.
type MemberSetOperation struct {
	Loc source.Span
	Lhs []Member
	Op  source.Located[SetOp]
	Rhs []Member
}

func (m MemberSetOperation) isMember()        {}
func (m MemberSetOperation) Span() source.Span { return m.Loc }

var (
	_ Member = MemberAtom{}
	_ Member = MemberRange{}
	_ Member = MemberQuote{}
	_ Member = MemberNested{}
	_ Member = MemberSetOperation{}
)
