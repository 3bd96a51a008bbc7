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

package diag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/source"
)

func TestKindStringKnown(t *testing.T) {
	require.Equal(t, "UnbalancedEndOfGroup", diag.UnbalancedEndOfGroup.String())
	require.Equal(t, "InvalidCharacterClassRangeOperand", diag.InvalidCharacterClassRangeOperand.String())
}

func TestKindStringUnknownFallsBackToNumeric(t *testing.T) {
	require.Equal(t, "Kind(0)", diag.Kind(0).String())
}

func TestLocatedErrorFormatsLineAndColumn(t *testing.T) {
	text := "a\n)"
	loc := source.NewSpan(text, 2, 3)
	err := diag.NewUnbalancedEndOfGroup(loc)
	require.Equal(t, "2:1: UnbalancedEndOfGroup: unbalanced ')'", err.Error())
}

func TestLocatedErrorSpanAccessor(t *testing.T) {
	loc := source.NewSpan("abc", 0, 1)
	err := diag.NewExpectedGroupCloser(loc)
	require.Equal(t, loc, err.Span())
}

func TestNewInvalidEscapeCarriesChar(t *testing.T) {
	loc := source.NewSpan(`\q`, 0, 2)
	err := diag.NewInvalidEscape(loc, 'q')
	require.Equal(t, diag.InvalidEscape, err.Kind)
	require.Equal(t, 'q', err.Char)
}

func TestNewInvalidQuantifierRangeCarriesBounds(t *testing.T) {
	loc := source.NewSpan("{4,2}", 0, 5)
	err := diag.NewInvalidQuantifierRange(loc, 4, 2)
	require.Equal(t, 4, err.Lo)
	require.Equal(t, 2, err.Hi)
}

func TestNewTooManyBranchesInConditionalCarriesCount(t *testing.T) {
	loc := source.NewSpan("a|b|c", 0, 5)
	err := diag.NewTooManyBranchesInConditional(loc, 3)
	require.Equal(t, 3, err.N)
	require.Equal(t, diag.TooManyBranchesInConditional, err.Kind)
}
