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

// Package source provides a zero-copy positional view over regex pattern
// text, plus the half-open byte-offset spans used to locate every AST node
// and diagnostic.
package source

import "fmt"

// Position is a byte offset into a pattern's source text. It is opaque and
// monotonic: callers should not do arithmetic on it beyond comparison.
type Position int

// Span is a half-open source range [Start, End) over a pattern's text.
//
// Zero-width nodes such as an empty concatenation get a zero-width span
// (Start == End) at their own position. The zero value Span{} has no
// backing text; Join treats it as contributing nothing.
type Span struct {
	text       string
	Start, End Position
}

// NewSpan constructs a Span over text, given byte offsets start and end.
//
// Panics if the offsets are out of order or out of range; spans are always
// constructed from cursor positions, which cannot violate this.
func NewSpan(text string, start, end Position) Span {
	if start > end {
		panic(fmt.Sprintf("rxsyntax/source: span start %d after end %d", start, end))
	}
	if int(end) > len(text) {
		panic(fmt.Sprintf("rxsyntax/source: span end %d beyond text of length %d", end, len(text)))
	}
	return Span{text: text, Start: start, End: end}
}

// Len returns the length of the span, in bytes.
func (s Span) Len() int { return int(s.End - s.Start) }

// IsEmpty returns whether the span covers zero bytes.
func (s Span) IsEmpty() bool { return s.Start == s.End }

// Text returns the substring of the source text covered by this span.
func (s Span) Text() string { return s.text[s.Start:s.End] }

// Join returns the smallest span containing both s and other.
//
// Both spans must come from the same source text; Join panics otherwise,
// except when one of the spans is the zero span, in which case the other is
// returned unchanged (a zero span contributes nothing to a join).
func (s Span) Join(other Span) Span {
	if s == (Span{}) {
		return other
	}
	if other == (Span{}) {
		return s
	}
	if s.text != other.text {
		panic("rxsyntax/source: joined spans over different source text")
	}
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{text: s.text, Start: start, End: end}
}

// Location is a user-displayable 1-indexed line/column position.
type Location struct {
	Offset     Position
	Line, Col  int
}

// Location computes the 1-indexed line/column of the given offset within
// the span's backing source text. It is a read-only convenience for
// diagnostics renderers; it is not itself a pretty-printer.
func (s Span) Location(offset Position) Location {
	line, col := 1, 1
	for i := 0; i < int(offset) && i < len(s.text); i++ {
		if s.text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Location{Offset: offset, Line: line, Col: col}
}

// StartLoc returns the Location of the span's start.
func (s Span) StartLoc() Location { return s.Location(s.Start) }

// EndLoc returns the Location of the span's end.
func (s Span) EndLoc() Location { return s.Location(s.End) }

// String implements fmt.Stringer, rendering the span as "start:end".
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

// Spanner is any value that can report its own source span.
//
// AST nodes and located lexer outputs implement Spanner.
type Spanner interface {
	Span() Span
}

// Located pairs a value with the span of text it was parsed from.
type Located[T any] struct {
	Value T
	Loc   Span
}

// Span implements Spanner.
func (l Located[T]) Span() Span { return l.Loc }

// NewLocated constructs a Located value.
func NewLocated[T any](value T, loc Span) Located[T] {
	return Located[T]{Value: value, Loc: loc}
}
