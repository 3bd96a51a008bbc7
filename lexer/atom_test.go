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
)

func TestLexAtomOctalOrBackrefPrefersBackreference(t *testing.T) {
	c := source.NewCursor(`\1`)
	loc, ok, err := LexAtom(c, Env{PriorGroupCount: 1})
	require.Nil(t, err)
	require.True(t, ok)
	ref, isRef := loc.Value.(ast.AtomBackreference)
	require.True(t, isRef)
	require.Equal(t, ast.RefAbsolute, ref.Ref.Kind)
	require.Equal(t, 1, ref.Ref.Index)
}

func TestLexAtomOctalOrBackrefFallsBackToOctal(t *testing.T) {
	c := source.NewCursor(`\12`)
	loc, ok, err := LexAtom(c, Env{PriorGroupCount: 0})
	require.Nil(t, err)
	require.True(t, ok)
	scalar, isScalar := loc.Value.(ast.AtomScalar)
	require.True(t, isScalar)
	require.Equal(t, rune(012), scalar.Codepoint)
}

func TestLexAtomOctalOrBackrefFallsBackToLiteralDigit(t *testing.T) {
	c := source.NewCursor(`\9`)
	loc, ok, err := LexAtom(c, Env{PriorGroupCount: 0})
	require.Nil(t, err)
	require.True(t, ok)
	ch, isChar := loc.Value.(ast.AtomChar)
	require.True(t, isChar)
	require.Equal(t, '9', ch.Char)
	require.Equal(t, "", c.Rest())
}

func TestLexAtomNamedCharacter(t *testing.T) {
	c := source.NewCursor(`\N{LATIN SMALL LETTER A}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	named, isNamed := loc.Value.(ast.AtomNamedCharacter)
	require.True(t, isNamed)
	require.Equal(t, "LATIN SMALL LETTER A", named.Name)
}

func TestLexAtomNamedCharacterCodepointForm(t *testing.T) {
	c := source.NewCursor(`\N{U+41}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	scalar, isScalar := loc.Value.(ast.AtomScalar)
	require.True(t, isScalar)
	require.Equal(t, rune(0x41), scalar.Codepoint)
}

func TestLexAtomPropertyEscape(t *testing.T) {
	c := source.NewCursor(`\p{L}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	prop, isProp := loc.Value.(ast.AtomProperty)
	require.True(t, isProp)
	require.False(t, prop.Negated)
	require.Equal(t, ast.PropertyGeneralCategory, prop.Spec.Class)
	require.Equal(t, "L", prop.Spec.Value)
}

func TestLexAtomNegatedPropertyEscape(t *testing.T) {
	c := source.NewCursor(`\P{Greek}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	prop, isProp := loc.Value.(ast.AtomProperty)
	require.True(t, isProp)
	require.True(t, prop.Negated)
	require.Equal(t, ast.PropertyOther, prop.Spec.Class)
}

func TestLexAtomPropertyEscapeScriptPrefix(t *testing.T) {
	c := source.NewCursor(`\p{sc=Greek}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	prop, isProp := loc.Value.(ast.AtomProperty)
	require.True(t, isProp)
	require.Equal(t, ast.PropertyScript, prop.Spec.Class)
	require.Equal(t, "Greek", prop.Spec.Value)
}

func TestLexAtomHexScalarBraced(t *testing.T) {
	c := source.NewCursor(`\x{1F600}`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	scalar, isScalar := loc.Value.(ast.AtomScalar)
	require.True(t, isScalar)
	require.Equal(t, rune(0x1F600), scalar.Codepoint)
}

func TestLexAtomBackreferenceByName(t *testing.T) {
	c := source.NewCursor(`\k<foo>`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	ref, isRef := loc.Value.(ast.AtomBackreference)
	require.True(t, isRef)
	require.Equal(t, ast.RefNamed, ref.Ref.Kind)
	require.Equal(t, "foo", ref.Ref.Name)
}

func TestLexAtomSubpatternCall(t *testing.T) {
	c := source.NewCursor(`\g<foo>`)
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	_, isSubpattern := loc.Value.(ast.AtomSubpattern)
	require.True(t, isSubpattern)
}

func TestLexAtomInvalidEscapeLetter(t *testing.T) {
	c := source.NewCursor(`\q`)
	_, ok, err := LexAtom(c, Env{})
	require.True(t, ok)
	require.NotNil(t, err)
}

func TestLexAtomPlainChar(t *testing.T) {
	c := source.NewCursor("a")
	loc, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.True(t, ok)
	ch, isChar := loc.Value.(ast.AtomChar)
	require.True(t, isChar)
	require.Equal(t, 'a', ch.Char)
}

func TestLexAtomEOFReturnsNotOK(t *testing.T) {
	c := source.NewCursor("")
	_, ok, err := LexAtom(c, Env{})
	require.Nil(t, err)
	require.False(t, ok)
}
