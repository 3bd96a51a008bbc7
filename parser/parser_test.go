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

package parser_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/regexlang/rxsyntax/ast"
	"github.com/regexlang/rxsyntax/diag"
	"github.com/regexlang/rxsyntax/parser"
	"github.com/regexlang/rxsyntax/syntax"
)

// parseDumpCorpus is a table of pattern -> expected ast.Dump output,
// decoded from an inline YAML document rather than a testdata directory:
// unlike the teacher's protobuf descriptors, there is no multi-file
// compilation unit here for a golden-file-per-case runner to earn its
// keep. Most cases parse under the zero-value Options (no dialect flags
// set); a case whose construct is dialect-gated names the flag it needs
// under "dialect".
const parseDumpCorpus = `
- pattern: a
  dump: a
- pattern: ab
  dump: "(a,b)"
- pattern: a|b|c
  dump: alternation(a,b,c)
- pattern: a*
  dump: quant_zeroOrMore_eager(a)
- pattern: a+?
  dump: quant_oneOrMore_reluctant(a)
- pattern: a{2,4}+
  dump: "quant_.range<2...4>_possessive(a)"
- pattern: (a)
  dump: group_capture(a)
- pattern: (?:a)
  dump: group_nonCapture(a)
- pattern: (?<name>a)
  dump: "group_namedCapture<name>(a)"
- pattern: (?=a)
  dump: group_lookahead(a)
- pattern: (?<!a)
  dump: group_negativeLookbehind(a)
- pattern: "[abc]"
  dump: customCharacterClass(a,b,c)
- pattern: "[^a-z]"
  dump: "customCharacterClass(^,a-z)"
- pattern: "[a-z&&\\d]"
  dump: "customCharacterClass(op [a-z] intersection [\\d])"
  dialect: icu
- pattern: "[a-z&&\\d]"
  dump: "customCharacterClass(a-z,&,&,\\d)"
- pattern: \d
  dump: \d
- pattern: \x{41}
  dump: "\\x{41}"
- pattern: "\\u0041"
  dump: "\\x{41}"
  dialect: ecmascript
- pattern: (?(1)a|b)
  dump: "if absolute(1) then a else b"
- pattern: (?(+1)a|b)
  dump: "if R&relative(+1) then a else b"
- pattern: (?(-1)a|b)
  dump: "if R&relative(-1) then a else b"
- pattern: (?(DEFINE)a)
  dump: if DEFINE then a else empty
- pattern: (?(VERSION>=1.0)a|b)
  dump: "if VERSION>=1.0 then a else b"
  dialect: pcre
- pattern: (?~|a|b)
  dump: absent_expression(a,b)
  dialect: oniguruma
- pattern: (?~a)
  dump: absent_repeater(a)
  dialect: oniguruma
- pattern: (*PRUNE)
  dump: (*PRUNE)
- pattern: ""
  dump: empty
`

func dialectOptions(name string) syntax.Options {
	switch name {
	case "pcre":
		return syntax.Options{PCRE: true}
	case "oniguruma":
		return syntax.Options{Oniguruma: true}
	case "icu":
		return syntax.Options{ICU: true}
	case "ecmascript":
		return syntax.Options{ECMAScript: true}
	default:
		return syntax.Options{}
	}
}

func TestParseDump(t *testing.T) {
	var cases []struct {
		Pattern string `yaml:"pattern"`
		Dump    string `yaml:"dump"`
		Dialect string `yaml:"dialect"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(parseDumpCorpus), &cases))
	require.NotEmpty(t, cases)

	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%s/%d", tc.Pattern, i), func(t *testing.T) {
			node, err := parser.Parse(tc.Pattern, dialectOptions(tc.Dialect))
			require.Nil(t, err, "unexpected parse error for %q: %v", tc.Pattern, err)

			got := ast.Dump(node)
			if diff := cmp.Diff(tc.Dump, got); diff != "" {
				unified, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(tc.Dump),
					B:        difflib.SplitLines(got),
					FromFile: "want",
					ToFile:   "got",
					Context:  2,
				})
				t.Fatalf("dump mismatch for %q:\n%s", tc.Pattern, unified)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		kind    diag.Kind
	}{
		{"unbalanced closer", "a)", diag.UnbalancedEndOfGroup},
		{"unterminated group", "(a", diag.ExpectedGroupCloser},
		{"quantifier on anchor", "^*", diag.NotQuantifiable},
		{"bad range operand", "[a-\\d]", diag.InvalidCharacterClassRangeOperand},
		{"three branch conditional", "(?(1)a|b|c)", diag.TooManyBranchesInConditional},
		{"unknown group kind", "(?5)", diag.UnknownGroupKind},
		{"absent function requires oniguruma flag", "(?~a)", diag.UnknownGroupKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parser.Parse(tc.pattern, syntax.Options{})
			require.NotNil(t, err, "expected an error for %q", tc.pattern)
			require.Equal(t, tc.kind, err.Kind)
		})
	}
}

// TestGroupReferenceRoundTrip checks that a backreference to an earlier
// named group, and a \9 past the number of groups actually opened, both
// parse without error: the \9 is not rejected as an undefined reference
// but, since 9 is not an octal digit, is read as the literal '9' (spec
// §4.3 only resolves the octal/backref lexical ambiguity).
func TestGroupReferenceRoundTrip(t *testing.T) {
	node, err := parser.Parse(`(?<x>a)\k<x>\9`, syntax.Options{})
	require.Nil(t, err)
	require.Equal(t, `(group_namedCapture<x>(a),\named("x"),9)`, ast.Dump(node))
}
