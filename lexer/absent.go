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

import "github.com/regexlang/rxsyntax/source"

// LexAbsentFunctionStart recognizes the "(?~" introducer of an Oniguruma
// absent-function construct, and whether it is immediately followed by the
// '|' that distinguishes the stopper/expression/clearer shapes from the
// bare repeater shape "(?~child)". The parser builds the right AbsentKind
// from there based on how many '|'-separated branches it finds before the
// closing ')'.
//
// Under a dialect without the Oniguruma flag set, "(?~" is left
// unrecognized here and falls through to an ordinary group parse, where
// it surfaces as an unknown group kind rather than an absent function.
func LexAbsentFunctionStart(c *source.Cursor, env Env) (startSpan source.Span, hasPipe bool, ok bool) {
	if !env.Syntax.Oniguruma {
		return source.Span{}, false, false
	}
	start := c.Pos()
	if !c.TryEat("(?~") {
		return source.Span{}, false, false
	}
	hasPipe = c.TryEat("|")
	return c.SpanFrom(start), hasPipe, true
}
