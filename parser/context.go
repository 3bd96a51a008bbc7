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

// Package parser implements the recursive-descent grammar that turns a
// source.Cursor into an ast.Node, calling into package lexer on demand.
package parser

import (
	"github.com/tidwall/btree"

	"github.com/regexlang/rxsyntax/lexer"
	"github.com/regexlang/rxsyntax/syntax"
)

// ParsingContext threads the state the grammar needs across the whole
// parse: it embeds lexer.Env (so PriorGroupCount and
// InCustomCharacterClass are visible to both lexer and parser routines
// through the same fields) and adds the set of named capture groups seen
// so far.
//
// A ParsingContext is created fresh for each call to Parse and lives only
// for that call; nothing about it is shared or reused across parses.
type ParsingContext struct {
	lexer.Env

	// UsedGroupNames holds every name bound by a namedCapture or
	// balancedCapture group parsed so far. A btree.Map (used here purely
	// as an ordered set, via empty struct{} values) keeps enumeration
	// order deterministic, unlike a built-in map.
	UsedGroupNames *btree.Map[string, struct{}]
}

// NewParsingContext returns a ParsingContext ready to parse a single
// pattern under the given syntax options.
func NewParsingContext(opts syntax.Options) *ParsingContext {
	return &ParsingContext{
		Env:            lexer.Env{Syntax: opts},
		UsedGroupNames: &btree.Map[string, struct{}]{},
	}
}

// RecordGroupName adds name to the set of used group names. Called for
// every namedCapture and balancedCapture the parser constructs.
func (ctx *ParsingContext) RecordGroupName(name string) {
	if name == "" {
		return
	}
	ctx.UsedGroupNames.Set(name, struct{}{})
}

// withInCustomClass returns a copy of ctx with InCustomCharacterClass set,
// leaving the caller's ctx untouched so it can restore the flag on return
// just by discarding the copy.
func (ctx *ParsingContext) withInCustomClass() *ParsingContext {
	clone := *ctx
	clone.InCustomCharacterClass = true
	return &clone
}
