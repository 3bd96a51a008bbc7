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

// Package lexer implements the context-sensitive scanners the parser calls
// on demand. Each lexXxx routine follows one discipline: on failure it
// restores the cursor to where it started and returns ok == false; on
// success it consumes exactly the matched input. Neither case ever leaves
// the cursor partway through a match.
//
// The lexer does not pre-tokenize the whole input; there is no token
// stream, only a source.Cursor that the parser and lexer share.
package lexer

import "github.com/regexlang/rxsyntax/syntax"

// Env is the subset of parsing state a scanner needs to resolve lexical
// ambiguity: the back-reference/octal split depends on how many capturing
// groups have opened so far, and the custom-class binary operators are
// only recognized inside a class.
//
// Env is deliberately small and duplicated (rather than importing the
// parser's full ParsingContext) to keep this package free of a dependency
// on package parser.
type Env struct {
	Syntax                 syntax.Options
	PriorGroupCount        int
	InCustomCharacterClass bool
}
