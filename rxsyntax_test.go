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

package rxsyntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/syntax"
)

func TestParseWithDelimitersECMAScript(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("/ab/")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersPCRE(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("'ab'")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersOniguruma(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("re'ab'")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersICU(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("#/ab/#")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersExtendedSyntax(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("|ab|")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersTrailingXFlagForcesExtendedSyntax(t *testing.T) {
	node, err := rxsyntax.ParseWithDelimiters("/a b/x")
	require.Nil(t, err)
	require.Equal(t, "(a,b)", rxsyntax.Dump(node))
}

func TestParseWithDelimitersUnrecognizedWrapping(t *testing.T) {
	_, err := rxsyntax.ParseWithDelimiters("ab")
	require.NotNil(t, err)
	require.Equal(t, diag.UnknownDelimiter, err.Kind)
}

func TestParseAndDumpRoundTrip(t *testing.T) {
	node, err := rxsyntax.Parse(`a+`, syntax.Options{})
	require.Nil(t, err)
	require.Equal(t, "quant_oneOrMore_eager(a)", rxsyntax.Dump(node))
}
