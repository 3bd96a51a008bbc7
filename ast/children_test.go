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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/source"
)

func charAtom(r rune) *ast.Atom {
	return &ast.Atom{Kind: ast.AtomChar{Char: r}}
}

func TestChildrenConcatenation(t *testing.T) {
	a, b := charAtom('a'), charAtom('b')
	concat := &ast.Concatenation{Children: []ast.Node{a, b}}
	require.Equal(t, []ast.Node{a, b}, ast.Children(concat))
}

func TestChildrenLeavesAreNil(t *testing.T) {
	require.Nil(t, ast.Children(charAtom('a')))
	require.Nil(t, ast.Children(&ast.Empty{}))
	require.Nil(t, ast.Children(&ast.Trivia{}))
	require.Nil(t, ast.Children(&ast.Quote{}))
}

func TestChildrenQuantification(t *testing.T) {
	operand := charAtom('a')
	q := &ast.Quantification{Operand: operand}
	require.Equal(t, []ast.Node{operand}, ast.Children(q))
}

func TestChildrenConditionalWithGroup(t *testing.T) {
	group := &ast.Group{Kind: source.Located[ast.GroupKind]{Value: ast.GroupCapture{}}, Child: charAtom('a')}
	cond := &ast.Conditional{
		Condition: ast.Condition{Kind: ast.CondGroup{Group: group}},
		True:      charAtom('b'),
		False:     charAtom('c'),
	}
	require.Equal(t, []ast.Node{group, cond.True, cond.False}, ast.Children(cond))
}

func TestChildrenAbsentExpression(t *testing.T) {
	absentee, expr := charAtom('a'), charAtom('b')
	af := &ast.AbsentFunction{Kind: ast.AbsentExpression{Absentee: absentee, Expr: expr}}
	require.Equal(t, []ast.Node{absentee, expr}, ast.Children(af))
}

func TestWalkVisitsDepthFirstPreorder(t *testing.T) {
	a, b := charAtom('a'), charAtom('b')
	concat := &ast.Concatenation{Children: []ast.Node{a, b}}
	group := &ast.Group{Kind: source.Located[ast.GroupKind]{Value: ast.GroupCapture{}}, Child: concat}

	var visited []ast.Node
	for n := range ast.Walk(group) {
		visited = append(visited, n)
	}
	require.Equal(t, []ast.Node{group, concat, a, b}, visited)
}

func TestWalkStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	a, b := charAtom('a'), charAtom('b')
	concat := &ast.Concatenation{Children: []ast.Node{a, b}}

	var visited []ast.Node
	for n := range ast.Walk(concat) {
		visited = append(visited, n)
		if n == concat {
			break
		}
	}
	require.Equal(t, []ast.Node{concat}, visited)
}

func TestIsQuantifiable(t *testing.T) {
	require.True(t, ast.IsQuantifiable(charAtom('a')))
	require.False(t, ast.IsQuantifiable(&ast.Atom{Kind: ast.AtomStartOfLine{}}))
	require.True(t, ast.IsQuantifiable(&ast.Group{Kind: source.Located[ast.GroupKind]{Value: ast.GroupCapture{}}, Child: charAtom('a')}))
	require.False(t, ast.IsQuantifiable(&ast.Concatenation{}))
	require.False(t, ast.IsQuantifiable(&ast.Empty{}))
}

func TestStripTriviaRemovesTriviaFromConcatenation(t *testing.T) {
	a, b := charAtom('a'), charAtom('b')
	trivia := &ast.Trivia{Contents: "# comment"}
	concat := &ast.Concatenation{Children: []ast.Node{a, trivia, b}}

	stripped := ast.StripTrivia(concat)
	strippedConcat, ok := stripped.(*ast.Concatenation)
	require.True(t, ok)
	require.Equal(t, []ast.Node{a, b}, strippedConcat.Children)

	// original tree is untouched
	require.Len(t, concat.Children, 3)
}

func TestStripTriviaRecursesIntoGroups(t *testing.T) {
	a := charAtom('a')
	trivia := &ast.Trivia{Contents: " "}
	inner := &ast.Concatenation{Children: []ast.Node{a, trivia}}
	group := &ast.Group{Kind: source.Located[ast.GroupKind]{Value: ast.GroupCapture{}}, Child: inner}

	stripped := ast.StripTrivia(group).(*ast.Group)
	innerStripped := stripped.Child.(*ast.Concatenation)
	require.Equal(t, []ast.Node{a}, innerStripped.Children)
}
