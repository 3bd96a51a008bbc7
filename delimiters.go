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

package rxsyntax

import (
	"strings"

	"github.com/regexlang/rxsyntax/syntax"
)

// delimiterForm pairs a recognized opening/closing delimiter with the
// syntax options its dialect implies. This table is the only place in
// the module that knows about delimiters; everything downstream of
// ParseWithDelimiters works on bare pattern text.
type delimiterForm struct {
	open, close string
	options     syntax.Options
}

// delimiterForms is checked in order; the first form whose opener is a
// prefix of the input and whose closer occurs after it wins.
var delimiterForms = []delimiterForm{
	{open: "re'", close: "'", options: syntax.Options{Oniguruma: true}},
	{open: "#/", close: "/#", options: syntax.Options{ICU: true}},
	{open: "/", close: "/", options: syntax.Options{ECMAScript: true}},
	{open: "'", close: "'", options: syntax.Options{PCRE: true}},
	{open: "|", close: "|", options: syntax.Options{ExtendedSyntax: true}},
}

// stripDelimiters recognizes one of delimiterForms wrapping input, plus
// any trailing flag letters after the closing delimiter, and returns the
// bare pattern text and the options implied by the wrapping. ok is false
// if no known delimiter pair matches.
func stripDelimiters(input string) (pattern string, opts syntax.Options, ok bool) {
	for _, form := range delimiterForms {
		if !strings.HasPrefix(input, form.open) {
			continue
		}
		rest := input[len(form.open):]
		closeAt := strings.LastIndex(rest, form.close)
		if closeAt < 0 {
			continue
		}
		pattern = rest[:closeAt]
		opts = form.options
		for _, flag := range rest[closeAt+len(form.close):] {
			if flag == 'x' {
				opts.ExtendedSyntax = true
			}
		}
		return pattern, opts, true
	}
	return "", syntax.Options{}, false
}
