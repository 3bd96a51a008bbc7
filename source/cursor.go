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

package source

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Cursor is a zero-copy positional view over a pattern's source text.
//
// A Cursor never owns or copies the underlying text; it only tracks a byte
// offset into it. Every lexer routine that may fail is expected to take a
// Checkpoint before attempting a match and call Reset on failure, so that a
// failed match never leaves the cursor partway through consumed input.
type Cursor struct {
	text   string
	offset int
}

// NewCursor returns a Cursor positioned at the start of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Text returns the entire source text the cursor is scanning.
func (c *Cursor) Text() string { return c.text }

// Pos returns the cursor's current byte offset.
func (c *Cursor) Pos() Position { return Position(c.offset) }

// Span constructs a Span over this cursor's text between two positions.
func (c *Cursor) Span(start, end Position) Span {
	return NewSpan(c.text, start, end)
}

// SpanFrom constructs a Span from start to the cursor's current position.
func (c *Cursor) SpanFrom(start Position) Span {
	return c.Span(start, c.Pos())
}

// SpanHere returns the zero-width span at the cursor's current position.
func (c *Cursor) SpanHere() Span {
	return c.Span(c.Pos(), c.Pos())
}

// IsEmpty returns whether there is no more input left to scan.
func (c *Cursor) IsEmpty() bool { return c.offset >= len(c.text) }

// Rest returns the unscanned remainder of the source text.
func (c *Cursor) Rest() string { return c.text[c.offset:] }

// Before returns the already-scanned prefix of the source text.
func (c *Cursor) Before() string { return c.text[:c.offset] }

// decodeRune decodes the first rune of s, returning -1 if s is empty or the
// rune is invalid (in which case the caller should treat it as a single
// literal byte; regex sources are expected to be UTF-8, but a stray invalid
// byte should not make the cursor get stuck).
func decodeRune(s string) (rune, int) {
	if s == "" {
		return -1, 0
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return rune(s[0]), 1
	}
	return r, size
}

// Peek returns the next rune without consuming it.
//
// Returns ok == false if the cursor is at the end of input.
func (c *Cursor) Peek() (r rune, ok bool) {
	return c.PeekAt(0)
}

// PeekAt returns the rune n runes ahead of the cursor, without consuming
// anything.
//
// Returns ok == false if that rune is beyond the end of input.
func (c *Cursor) PeekAt(n int) (r rune, ok bool) {
	rest := c.Rest()
	for {
		rr, size := decodeRune(rest)
		if rr == -1 {
			return 0, false
		}
		if n == 0 {
			return rr, true
		}
		rest = rest[size:]
		n--
	}
}

// Advance consumes and returns the next rune.
//
// Returns ok == false (and does not advance) if the cursor is at the end of
// input.
func (c *Cursor) Advance() (r rune, ok bool) {
	r, size := decodeRune(c.Rest())
	if r == -1 {
		return 0, false
	}
	c.offset += size
	return r, true
}

// TryEat consumes the exact literal s if the cursor's remaining input
// starts with it, and reports whether it did.
func (c *Cursor) TryEat(s string) bool {
	if strings.HasPrefix(c.Rest(), s) {
		c.offset += len(s)
		return true
	}
	return false
}

// TryEatWithSpan is like TryEat, but also returns the span covered by the
// eaten literal.
func (c *Cursor) TryEatWithSpan(s string) (Span, bool) {
	start := c.Pos()
	if c.TryEat(s) {
		return c.SpanFrom(start), true
	}
	return Span{}, false
}

// TryEatFunc consumes and returns the next rune if it satisfies pred.
func (c *Cursor) TryEatFunc(pred func(rune) bool) (rune, bool) {
	r, ok := c.Peek()
	if !ok || !pred(r) {
		return 0, false
	}
	_, _ = c.Advance()
	return r, true
}

// TakeWhile consumes runes while they satisfy pred, and returns the
// consumed text.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.offset
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		_, _ = c.Advance()
	}
	return c.text[start:c.offset]
}

// TakeGraphemesWhile consumes extended grapheme clusters (as determined by
// Unicode text segmentation, via uniseg) while they satisfy pred, and
// returns the consumed text.
//
// This is used where a scan must not split a combining character sequence,
// such as the literal run inside \Q…\E or the name inside \N{NAME}.
func (c *Cursor) TakeGraphemesWhile(pred func(grapheme string) bool) string {
	start := c.offset
	for gs := uniseg.NewGraphemes(c.Rest()); gs.Next(); {
		g := gs.Str()
		if !pred(g) {
			break
		}
		c.offset += len(g)
	}
	return c.text[start:c.offset]
}

// SeekInclusive advances the cursor to just past the first occurrence of
// needle in the remaining input, returning the consumed prefix (including
// needle). Returns ok == false (and does not advance) if needle does not
// occur.
func (c *Cursor) SeekInclusive(needle string) (text string, ok bool) {
	idx := strings.Index(c.Rest(), needle)
	if idx == -1 {
		return "", false
	}
	prefix := c.Rest()[:idx+len(needle)]
	c.offset += len(prefix)
	return prefix, true
}

// SeekEOF advances the cursor to the end of input, returning everything
// that was skipped over.
func (c *Cursor) SeekEOF() string {
	rest := c.Rest()
	c.offset = len(c.text)
	return rest
}

// Checkpoint is an opaque cursor position that can be restored with Reset.
type Checkpoint struct {
	offset int
}

// Mark captures the cursor's current position.
func (c *Cursor) Mark() Checkpoint {
	return Checkpoint{offset: c.offset}
}

// Reset restores the cursor to a previously captured Checkpoint.
func (c *Cursor) Reset(mark Checkpoint) {
	c.offset = mark.offset
}
