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

	"github.com/regexlang/rxsyntax/source"
)

func TestLexQuoteBackslashQE(t *testing.T) {
	c := source.NewCursor(`\Qa.b\Ec`)
	quote, ok, err := LexQuote(c)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, "a.b", quote.Literal)
	require.Equal(t, "c", c.Rest())
}

func TestLexQuoteBackslashQEUnterminatedRunsToEOF(t *testing.T) {
	c := source.NewCursor(`\Qabc`)
	quote, ok, err := LexQuote(c)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", quote.Literal)
	require.Equal(t, "", c.Rest())
}

func TestLexQuoteBackslashQEPreservesCombiningSequence(t *testing.T) {
	// "e\u0301" is a single extended grapheme cluster (e + combining
	// acute accent); it must survive the scan whole rather than being
	// split at the byte/rune boundary between the two code points.
	c := source.NewCursor("\\Qe\u0301\\E")
	quote, ok, err := LexQuote(c)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, "e\u0301", quote.Literal)
}

func TestLexQuoteBraceForm(t *testing.T) {
	c := source.NewCursor(`\q{a.b}c`)
	quote, ok, err := LexQuote(c)
	require.Nil(t, err)
	require.True(t, ok)
	require.Equal(t, "a.b", quote.Literal)
	require.Equal(t, "c", c.Rest())
}
