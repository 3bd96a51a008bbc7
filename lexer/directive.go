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
	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/source"
)

var backtrackVerbs = map[string]ast.BacktrackVerb{
	"ACCEPT": ast.VerbAccept,
	"FAIL":   ast.VerbFail,
	"F":      ast.VerbFail,
	"MARK":   ast.VerbMark,
	"COMMIT": ast.VerbCommit,
	"PRUNE":  ast.VerbPrune,
	"SKIP":   ast.VerbSkip,
	"THEN":   ast.VerbThen,
}

func isDirectiveNameChar(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == '_' || isDigit(r)
}

// LexBacktrackingDirective recognizes "(*VERB)" or "(*VERB:NAME)". It
// fails cleanly (cursor untouched) if the name after "(*" is not one of
// the known verbs, so callers can fall back to LexGlobalMatchingOption or
// the script-run forms of LexGroupStart, which also begin with "(*".
func LexBacktrackingDirective(c *source.Cursor) (*ast.Atom, bool, *diag.LocatedError) {
	start := c.Pos()
	mark := c.Mark()

	if !c.TryEat("(*") {
		return nil, false, nil
	}
	name := c.TakeWhile(isDirectiveNameChar)
	verb, known := backtrackVerbs[name]
	if !known {
		c.Reset(mark)
		return nil, false, nil
	}

	var directiveName string
	if c.TryEat(":") {
		directiveName = c.TakeWhile(func(r rune) bool { return r != ')' })
	}
	if !c.TryEat(")") {
		c.Reset(mark)
		return nil, false, nil
	}

	kind := ast.AtomBacktrackingDirective{Verb: verb, Name: directiveName}
	return &ast.Atom{Loc: c.SpanFrom(start), Kind: kind}, true, nil
}

// LexGlobalMatchingOption recognizes one leading "(*NAME)" or
// "(*NAME=value)" directive. The parser only tries this before any other
// pattern content, and only after LexBacktrackingDirective has already
// failed to recognize the name as a verb.
func LexGlobalMatchingOption(c *source.Cursor) (ast.GlobalOpt, bool, *diag.LocatedError) {
	start := c.Pos()
	mark := c.Mark()

	if !c.TryEat("(*") {
		return ast.GlobalOpt{}, false, nil
	}
	name := c.TakeWhile(isDirectiveNameChar)
	if name == "" {
		c.Reset(mark)
		return ast.GlobalOpt{}, false, nil
	}

	var value string
	if c.TryEat("=") {
		value = c.TakeWhile(func(r rune) bool { return r != ')' })
	}
	if !c.TryEat(")") {
		c.Reset(mark)
		return ast.GlobalOpt{}, false, nil
	}

	return ast.GlobalOpt{Loc: c.SpanFrom(start), Name: name, Value: value}, true, nil
}
