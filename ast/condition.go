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

// Condition is the "(cond)" part of a Conditional.
type Condition struct {
	Loc  source.Span
	Kind ConditionKind
}

func (c Condition) Span() source.Span { return c.Loc }

// ConditionKind is the sum type of the ways a conditional's condition can
// be spelled.
type ConditionKind interface {
	isConditionKind()
}

type conditionKindBase struct{}

func (conditionKindBase) isConditionKind() {}

// VersionOp is the comparison used by a CondPCREVersionCheck.
type VersionOp int

const (
	VersionEquals VersionOp = iota
	VersionAtLeast
)

// CondPCREVersionCheck is PCRE's "(VERSION>=M.N)" or "(VERSION=M.N)".
type CondPCREVersionCheck struct {
	conditionKindBase
	Op          VersionOp
	Major, Minor int
}

// CondGroup is a condition spelled as an arbitrary group, e.g.
// "(?(?=foo)yes|no)"; Group is the parsed lookaround/group itself.
type CondGroup struct {
	conditionKindBase
	Group *Group
}

// CondGroupMatched is "(?(<name>)...)", "(?('name')...)", or "(?(n)...)":
// true if the referenced group has matched.
type CondGroupMatched struct {
	conditionKindBase
	Ref Reference
}

// CondGroupRecursionCheck is "(?(R&name)...)" or "(?(Rn)...)": true if
// currently recursing inside the referenced group.
type CondGroupRecursionCheck struct {
	conditionKindBase
	Ref Reference
}

// CondRecursionCheck is the bare "(?(R)...)": true if currently inside any
// recursion.
type CondRecursionCheck struct{ conditionKindBase }

// CondDefineGroup is "(?(DEFINE)...)": a condition that is never true,
// used to define groups for later subroutine calls without matching them
// inline.
type CondDefineGroup struct{ conditionKindBase }

var (
	_ ConditionKind = CondPCREVersionCheck{}
	_ ConditionKind = CondGroup{}
	_ ConditionKind = CondGroupMatched{}
	_ ConditionKind = CondGroupRecursionCheck{}
	_ ConditionKind = CondRecursionCheck{}
	_ ConditionKind = CondDefineGroup{}
)
