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

func TestCursorTryEatAndPeek(t *testing.T) {
	c := source.NewCursor("abc")
	r, ok := c.Peek()
	require.True(t, ok)
	require.Equal(t, 'a', r)

	require.False(t, c.TryEat("xyz"))
	require.True(t, c.TryEat("ab"))
	require.Equal(t, "c", c.Rest())
	require.Equal(t, "ab", c.Before())
}

func TestCursorMarkReset(t *testing.T) {
	c := source.NewCursor("hello")
	mark := c.Mark()
	c.TakeWhile(func(r rune) bool { return r != 'l' })
	require.Equal(t, "he", c.Before())
	c.Reset(mark)
	require.True(t, c.IsEmpty() == false)
	require.Equal(t, "", c.Before())
}

func TestCursorAdvanceAtEOF(t *testing.T) {
	c := source.NewCursor("")
	_, ok := c.Advance()
	require.False(t, ok)
	require.True(t, c.IsEmpty())
}

func TestCursorSpanFromTracksConsumedRange(t *testing.T) {
	c := source.NewCursor("pattern")
	start := c.Pos()
	c.TryEat("pat")
	span := c.SpanFrom(start)
	require.Equal(t, "pat", span.Text())
}

func TestCursorSeekInclusive(t *testing.T) {
	c := source.NewCursor(`foo\Ebar`)
	text, ok := c.SeekInclusive(`\E`)
	require.True(t, ok)
	require.Equal(t, `foo\E`, text)
	require.Equal(t, "bar", c.Rest())
}

func TestCursorSeekInclusiveMissingNeedle(t *testing.T) {
	c := source.NewCursor("foo")
	mark := c.Mark()
	_, ok := c.SeekInclusive(`\E`)
	require.False(t, ok)
	c.Reset(mark)
	require.Equal(t, "foo", c.Rest())
}

func TestCursorInvalidUTF8FallsBackToByte(t *testing.T) {
	c := source.NewCursor("a\xffb")
	require.True(t, c.TryEat("a"))
	r, ok := c.Advance()
	require.True(t, ok)
	require.Equal(t, rune(0xff), r)
	require.Equal(t, "b", c.Rest())
}
