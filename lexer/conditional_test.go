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

func TestLexKnownConditionStartBareNumber(t *testing.T) {
	c := source.NewCursor("1)")
	kind, ok, err := LexKnownConditionStart(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	matched, isMatched := kind.(ast.CondGroupMatched)
	require.True(t, isMatched)
	require.Equal(t, ast.RefAbsolute, matched.Ref.Kind)
	require.Equal(t, 1, matched.Ref.Index)
}

func TestLexKnownConditionStartRelativePlus(t *testing.T) {
	c := source.NewCursor("+1)")
	kind, ok, err := LexKnownConditionStart(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	check, isCheck := kind.(ast.CondGroupRecursionCheck)
	require.True(t, isCheck)
	require.Equal(t, ast.RefRelative, check.Ref.Kind)
	require.Equal(t, 1, check.Ref.Sign)
	require.Equal(t, 1, check.Ref.Index)
}

func TestLexKnownConditionStartRelativeMinus(t *testing.T) {
	c := source.NewCursor("-1)")
	kind, ok, err := LexKnownConditionStart(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	check, isCheck := kind.(ast.CondGroupRecursionCheck)
	require.True(t, isCheck)
	require.Equal(t, ast.RefRelative, check.Ref.Kind)
	require.Equal(t, -1, check.Ref.Sign)
	require.Equal(t, 1, check.Ref.Index)
}

func TestLexKnownConditionStartVersionRequiresPCREFlag(t *testing.T) {
	c := source.NewCursor("VERSION>=1.0)")
	_, ok, err := LexKnownConditionStart(c, Env{})
	require.Nil(t, err)
	require.False(t, ok)
	require.Equal(t, "VERSION>=1.0)", c.Rest())
}

func TestLexKnownConditionStartVersionUnderPCRE(t *testing.T) {
	c := source.NewCursor("VERSION>=1.0)")
	kind, ok, err := LexKnownConditionStart(c, Env{Syntax: syntax.Options{PCRE: true}})
	require.Nil(t, err)
	require.True(t, ok)
	version, isVersion := kind.(ast.CondPCREVersionCheck)
	require.True(t, isVersion)
	require.Equal(t, ast.VersionAtLeast, version.Op)
	require.Equal(t, 1, version.Major)
	require.Equal(t, 0, version.Minor)
}

func TestLexKnownConditionStartNamedGroupRecursionLevel(t *testing.T) {
	c := source.NewCursor("R&foo+1)")
	kind, ok, err := LexKnownConditionStart(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	check, isCheck := kind.(ast.CondGroupRecursionCheck)
	require.True(t, isCheck)
	require.Equal(t, ast.RefNamed, check.Ref.Kind)
	require.Equal(t, "foo", check.Ref.Name)
	require.NotNil(t, check.Ref.RecursionLevel)
	require.Equal(t, 1, *check.Ref.RecursionLevel)
}
