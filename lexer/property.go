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

import "github.com/regexlang/rxsyntax/ast"

// generalCategories holds the two-letter and one-letter Unicode general
// category abbreviations, plus their long-form aliases.
var generalCategories = map[string]bool{
	"L": true, "Lu": true, "Ll": true, "Lt": true, "Lm": true, "Lo": true,
	"M": true, "Mn": true, "Mc": true, "Me": true,
	"N": true, "Nd": true, "Nl": true, "No": true,
	"P": true, "Pc": true, "Pd": true, "Ps": true, "Pe": true, "Pi": true, "Pf": true, "Po": true,
	"S": true, "Sm": true, "Sc": true, "Sk": true, "So": true,
	"Z": true, "Zs": true, "Zl": true, "Zp": true,
	"C": true, "Cc": true, "Cf": true, "Co": true, "Cs": true, "Cn": true,

	"Letter": true, "Uppercase_Letter": true, "Lowercase_Letter": true,
	"Titlecase_Letter": true, "Modifier_Letter": true, "Other_Letter": true,
	"Mark": true, "Nonspacing_Mark": true, "Spacing_Mark": true, "Enclosing_Mark": true,
	"Number": true, "Decimal_Number": true, "Letter_Number": true, "Other_Number": true,
	"Punctuation": true, "Connector_Punctuation": true, "Dash_Punctuation": true,
	"Open_Punctuation": true, "Close_Punctuation": true, "Initial_Punctuation": true,
	"Final_Punctuation": true, "Other_Punctuation": true,
	"Symbol": true, "Math_Symbol": true, "Currency_Symbol": true, "Modifier_Symbol": true, "Other_Symbol": true,
	"Separator": true, "Space_Separator": true, "Line_Separator": true, "Paragraph_Separator": true,
	"Other": true, "Control": true, "Format": true, "Private_Use": true, "Surrogate": true, "Unassigned": true,
}

// bareProperties holds the common binary Unicode property names that appear
// unprefixed in \p{Name}.
var bareProperties = map[string]bool{
	"Alpha": true, "Alphabetic": true, "Upper": true, "Uppercase": true,
	"Lower": true, "Lowercase": true, "White_Space": true, "Space": true,
	"Alnum": true, "ASCII": true, "Any": true, "Assigned": true,
	"Word": true, "Digit": true, "Punct": true, "Graph": true, "Print": true,
	"Blank": true, "Cntrl": true, "XDigit": true, "ID_Start": true, "ID_Continue": true,
	"Emoji": true, "Emoji_Presentation": true, "Emoji_Modifier": true,
	"Join_Control": true, "Dash": true, "Hex_Digit": true, "Quotation_Mark": true,
}

// scriptPrefixes are the recognized keys for prefixed property forms whose
// value names a Unicode script.
var scriptPrefixes = map[string]bool{
	"script": true, "sc": true, "Script": true,
}

var scriptExtensionPrefixes = map[string]bool{
	"scx": true, "Script_Extensions": true, "Scx": true,
}

// classifyProperty parses the body of a \p{...}/\P{...} escape into a
// PropertySpec. Unrecognized names are never an error here (downstream
// semantic validation is the consumer's job, per this package's scope); an
// unrecognized bare name falls through to PropertyOther so Dump round-trips
// it without claiming it matched a known boolean property.
func classifyProperty(body string) ast.PropertySpec {
	for i := 0; i < len(body); i++ {
		if body[i] == '=' {
			key, value := body[:i], body[i+1:]
			switch {
			case scriptPrefixes[key]:
				return ast.PropertySpec{Class: ast.PropertyScript, Prefix: key, Value: value}
			case scriptExtensionPrefixes[key]:
				return ast.PropertySpec{Class: ast.PropertyScriptExtensions, Prefix: key, Value: value}
			case key == "gc" || key == "General_Category":
				return ast.PropertySpec{Class: ast.PropertyGeneralCategory, Prefix: key, Value: value}
			default:
				return ast.PropertySpec{Class: ast.PropertyOther, Prefix: key, Value: value}
			}
		}
	}
	if generalCategories[body] {
		return ast.PropertySpec{Class: ast.PropertyGeneralCategory, Value: body}
	}
	if bareProperties[body] {
		return ast.PropertySpec{Class: ast.PropertyBare, Value: body}
	}
	return ast.PropertySpec{Class: ast.PropertyOther, Value: body}
}
