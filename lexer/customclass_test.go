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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/source"
	"github.com/regexlang/rxsyntax/syntax"
)

func TestLexCustomCCStartPlain(t *testing.T) {
	loc, ok := LexCustomCCStart(source.NewCursor("[abc]"))
	require.True(t, ok)
	require.False(t, loc.Value.Negated)
}

func TestLexCustomCCStartNegatedValue(t *testing.T) {
	loc, ok := LexCustomCCStart(source.NewCursor("[^abc]"))
	require.True(t, ok)
	require.True(t, loc.Value.Negated)
}

func TestLexCustomCCStartRequiresBracket(t *testing.T) {
	_, ok := LexCustomCCStart(source.NewCursor("abc]"))
	require.False(t, ok)
}

func TestLexCustomCCBinOpIntersection(t *testing.T) {
	c := source.NewCursor("&&\\d]")
	loc, ok := LexCustomCCBinOp(c, Env{Syntax: syntax.Options{ICU: true}})
	require.True(t, ok)
	require.Equal(t, ast.Intersection, loc.Value)
	require.Equal(t, `\d]`, c.Rest())
}

func TestLexCustomCCBinOpSubtraction(t *testing.T) {
	c := source.NewCursor("--[a-z]]")
	loc, ok := LexCustomCCBinOp(c, Env{Syntax: syntax.Options{Oniguruma: true}})
	require.True(t, ok)
	require.Equal(t, ast.Subtraction, loc.Value)
}

func TestLexCustomCCBinOpSymmetricDifference(t *testing.T) {
	c := source.NewCursor("~~a]")
	loc, ok := LexCustomCCBinOp(c, Env{Syntax: syntax.Options{Oniguruma: true}})
	require.True(t, ok)
	require.Equal(t, ast.SymmetricDifference, loc.Value)
}

func TestLexCustomCCBinOpRejectsSingleDash(t *testing.T) {
	c := source.NewCursor("-z]")
	_, ok := LexCustomCCBinOp(c, Env{Syntax: syntax.Options{Oniguruma: true}})
	require.False(t, ok)
	require.Equal(t, "-z]", c.Rest())
}

func TestLexCustomCCBinOpRequiresDialectFlag(t *testing.T) {
	c := source.NewCursor("&&\\d]")
	_, ok := LexCustomCCBinOp(c, Env{})
	require.False(t, ok)
	require.Equal(t, "&&\\d]", c.Rest())
}

func TestLexCustomCCRangeDashBetweenEndpoints(t *testing.T) {
	c := source.NewCursor("-z]")
	span, ok := LexCustomCCRangeDash(c)
	require.True(t, ok)
	require.Equal(t, "-", span.Text())
	require.Equal(t, "z]", c.Rest())
}

func TestLexCustomCCRangeDashRejectsBeforeCloser(t *testing.T) {
	c := source.NewCursor("-]")
	_, ok := LexCustomCCRangeDash(c)
	require.False(t, ok)
	require.Equal(t, "-]", c.Rest())
}

func TestLexCustomCCRangeDashRejectsSubtractionStart(t *testing.T) {
	c := source.NewCursor("--[a-z]]")
	_, ok := LexCustomCCRangeDash(c)
	require.False(t, ok)
	require.Equal(t, "--[a-z]]", c.Rest())
}
