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

package ast

import "github.com/regexlang/rxsyntax/source"

// GlobalOpt is one leading "(*NAME)" or "(*NAME=value)" directive, valid
// only before any non-option content in a pattern.
type GlobalOpt struct {
	Loc   source.Span
	Name  string
	Value string // empty unless the option takes a value, e.g. LIMIT_MATCH=n
}

func (o GlobalOpt) Span() source.Span { return o.Loc }
