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

import "iter"

// Children returns the immediate child nodes of n, in source order, via an
// exhaustive type switch over every Node variant. Leaf variants (Quote,
// Trivia, Atom, Empty) return nil.
//
// This supplements the parser's dynamically-typed "parent" capability
// (spec §9's design note) with a closed, statically exhaustive alternative,
// so consumers can enumerate children without their own type tests.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Alternation:
		return n.Children
	case *Concatenation:
		return n.Children
	case *Group:
		return []Node{n.Child}
	case *Conditional:
		children := []Node{n.True}
		if g, ok := n.Condition.Kind.(CondGroup); ok {
			children = append([]Node{g.Group}, children...)
		}
		return append(children, n.False)
	case *Quantification:
		return []Node{n.Operand}
	case *CustomCharacterClass:
		return nil // members are not Nodes; see Member.
	case *GlobalMatchingOptions:
		return []Node{n.AST}
	case *AbsentFunction:
		switch k := n.Kind.(type) {
		case AbsentRepeater:
			return []Node{k.Child}
		case AbsentExpression:
			return []Node{k.Absentee, k.Expr}
		case AbsentStopper:
			return []Node{k.Child}
		case AbsentClearer:
			return nil
		}
		return nil
	case *Quote, *Trivia, *Atom, *Empty:
		return nil
	default:
		return nil
	}
}

// Walk returns a depth-first, preorder iterator over n and all of its
// descendants.
func Walk(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if child == nil {
					continue
				}
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(n)
	}
}

// IsQuantifiable reports whether n may be the operand of a Quantification,
// per the table in spec §4.4: atoms are quantifiable except anchors and
// backtracking directives; groups, conditionals, custom classes, and
// absent functions are quantifiable; alternations, concatenations,
// quantifications, quotes, trivia, empty, and global-option wrappers are
// not.
func IsQuantifiable(n Node) bool {
	switch n := n.(type) {
	case *Atom:
		return n.Kind.Quantifiable()
	case *Group, *Conditional, *CustomCharacterClass, *AbsentFunction:
		return true
	default:
		return false
	}
}

// StripTrivia returns a new tree with every Trivia node removed from every
// Concatenation it appears in, including those inside a conditional's
// group condition; a Trivia outside any Concatenation is replaced by an
// Empty with the same span. It never mutates its input.
func StripTrivia(n Node) Node {
	switch n := n.(type) {
	case *Alternation:
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = StripTrivia(c)
		}
		return &Alternation{Loc: n.Loc, Children: children, Pipes: n.Pipes}
	case *Concatenation:
		children := make([]Node, 0, len(n.Children))
		for _, c := range n.Children {
			if _, isTrivia := c.(*Trivia); isTrivia {
				continue
			}
			children = append(children, StripTrivia(c))
		}
		return &Concatenation{Loc: n.Loc, Children: children}
	case *Group:
		return &Group{Loc: n.Loc, Kind: n.Kind, Child: StripTrivia(n.Child)}
	case *Conditional:
		condition := n.Condition
		if g, ok := condition.Kind.(CondGroup); ok {
			condition.Kind = CondGroup{Group: StripTrivia(g.Group).(*Group)}
		}
		return &Conditional{
			Loc:       n.Loc,
			Condition: condition,
			True:      StripTrivia(n.True),
			Pipe:      n.Pipe,
			False:     StripTrivia(n.False),
		}
	case *Quantification:
		return &Quantification{Loc: n.Loc, Amount: n.Amount, Kind: n.Kind, Operand: StripTrivia(n.Operand)}
	case *GlobalMatchingOptions:
		return &GlobalMatchingOptions{Loc: n.Loc, Options: n.Options, AST: StripTrivia(n.AST)}
	case *AbsentFunction:
		switch k := n.Kind.(type) {
		case AbsentRepeater:
			return &AbsentFunction{Loc: n.Loc, StartSpan: n.StartSpan, Kind: AbsentRepeater{Child: StripTrivia(k.Child)}}
		case AbsentExpression:
			return &AbsentFunction{Loc: n.Loc, StartSpan: n.StartSpan, Kind: AbsentExpression{
				Absentee: StripTrivia(k.Absentee), Pipe: k.Pipe, Expr: StripTrivia(k.Expr),
			}}
		case AbsentStopper:
			return &AbsentFunction{Loc: n.Loc, StartSpan: n.StartSpan, Kind: AbsentStopper{Child: StripTrivia(k.Child)}}
		default:
			return n
		}
	case *Trivia:
		return &Empty{Loc: n.Loc}
	default:
		return n
	}
}
