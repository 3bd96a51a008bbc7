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

// Alternation is a '|'-separated list of branches, e.g. "a|b|c".
//
// Invariant: len(Pipes) == len(Children) - 1, and len(Children) >= 2.
type Alternation struct {
	Loc      source.Span
	Children []Node
	Pipes    []source.Span
}

func (n *Alternation) Span() source.Span { return n.Loc }
func (*Alternation) isNode()             {}

// Concatenation is a sequence of components with no separator, e.g. "abc".
type Concatenation struct {
	Loc      source.Span
	Children []Node
}

func (n *Concatenation) Span() source.Span { return n.Loc }
func (*Concatenation) isNode()             {}

// Group is a parenthesized construct: "(...)", "(?:...)", "(?=...)", etc.
type Group struct {
	Loc   source.Span
	Kind  source.Located[GroupKind]
	Child Node
}

func (n *Group) Span() source.Span { return n.Loc }
func (*Group) isNode()             {}

// Conditional is "(?(cond)true|false)".
//
// If the body alternation has exactly one branch, False is an *Empty node
// covering the zero-width position right after True.
type Conditional struct {
	Loc        source.Span
	Condition  Condition
	True       Node
	Pipe       *source.Span
	False      Node
}

func (n *Conditional) Span() source.Span { return n.Loc }
func (*Conditional) isNode()             {}

// Quantification applies a repetition count to an operand, e.g. "a*",
// "a{2,4}?".
type Quantification struct {
	Loc     source.Span
	Amount  source.Located[Amount]
	Kind    source.Located[QuantKind]
	Operand Node
}

func (n *Quantification) Span() source.Span { return n.Loc }
func (*Quantification) isNode()             {}

// Quote is a literal run of text with no special meaning, produced by
// \Q...\E or PCRE's \q{...}.
type Quote struct {
	Loc     source.Span
	Literal string
}

func (n *Quote) Span() source.Span { return n.Loc }
func (*Quote) isNode()             {}

// Trivia is a comment or a run of non-semantic whitespace. Trivia nodes are
// preserved in the tree (they carry their own text) but are elided by
// StripTrivia and by Dump.
type Trivia struct {
	Loc      source.Span
	Contents string
}

func (n *Trivia) Span() source.Span { return n.Loc }
func (*Trivia) isNode()             {}

// Atom is a single indivisible regex token: a literal character, an
// escape, an anchor, a back-reference, and so on. See AtomKind.
type Atom struct {
	Loc  source.Span
	Kind AtomKind
}

func (n *Atom) Span() source.Span { return n.Loc }
func (*Atom) isNode()             {}

// CustomCharacterClass is a "[...]" construct.
type CustomCharacterClass struct {
	Loc     source.Span
	Start   source.Located[CCCStart]
	Members []Member
}

func (n *CustomCharacterClass) Span() source.Span { return n.Loc }
func (*CustomCharacterClass) isNode()             {}

// GlobalMatchingOptions wraps the rest of the pattern with leading
// directives such as "(*UTF)" that are only meaningful at the very start
// of a pattern.
type GlobalMatchingOptions struct {
	Loc     source.Span
	Options []GlobalOpt
	AST     Node
}

func (n *GlobalMatchingOptions) Span() source.Span { return n.Loc }
func (*GlobalMatchingOptions) isNode()             {}

// AbsentFunction is one of Oniguruma's "(?~...)" constructs. See AbsentKind
// for which of the four shapes this is.
type AbsentFunction struct {
	Loc       source.Span
	Kind      AbsentKind
	StartSpan source.Span
}

func (n *AbsentFunction) Span() source.Span { return n.Loc }
func (*AbsentFunction) isNode()             {}
