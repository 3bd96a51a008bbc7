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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexlang/rxsyntax/source"
)

func TestSpanJoin(t *testing.T) {
	text := "abcdef"
	a := source.NewSpan(text, 1, 3)
	b := source.NewSpan(text, 4, 6)
	joined := a.Join(b)
	require.Equal(t, source.Position(1), joined.Start)
	require.Equal(t, source.Position(6), joined.End)
	require.Equal(t, "bcdef", joined.Text())
}

func TestSpanJoinWithZeroSpanIsIdentity(t *testing.T) {
	text := "abcdef"
	a := source.NewSpan(text, 2, 4)
	require.Equal(t, a, a.Join(source.Span{}))
	require.Equal(t, a, source.Span{}.Join(a))
}

func TestSpanJoinPanicsAcrossDifferentText(t *testing.T) {
	a := source.NewSpan("abc", 0, 1)
	b := source.NewSpan("xyz", 0, 1)
	require.Panics(t, func() { a.Join(b) })
}

func TestNewSpanPanicsOnOutOfOrderOffsets(t *testing.T) {
	require.Panics(t, func() { source.NewSpan("abc", 2, 1) })
}

func TestNewSpanPanicsBeyondTextLength(t *testing.T) {
	require.Panics(t, func() { source.NewSpan("abc", 0, 10) })
}

func TestSpanLocationTracksLinesAndColumns(t *testing.T) {
	text := "ab\ncd"
	s := source.NewSpan(text, 0, source.Position(len(text)))
	loc := s.Location(4)
	require.Equal(t, 2, loc.Line)
	require.Equal(t, 2, loc.Col)
}

func TestLocatedSpan(t *testing.T) {
	s := source.NewSpan("abc", 0, 1)
	l := source.NewLocated(7, s)
	require.Equal(t, 7, l.Value)
	require.Equal(t, s, l.Span())
}
