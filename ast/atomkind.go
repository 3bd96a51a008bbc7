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

import "fmt"

// AtomKind is the sum type of indivisible regex tokens.
type AtomKind interface {
	isAtomKind()

	// Quantifiable reports whether an Atom of this kind may be the
	// operand of a Quantification (spec §4.4: anchors and backtracking
	// directives cannot be).
	Quantifiable() bool
}

type atomKindBase struct{}

func (atomKindBase) isAtomKind()        {}
func (atomKindBase) Quantifiable() bool { return true }

// AtomChar is a single literal character.
type AtomChar struct {
	atomKindBase
	Char rune
}

// AtomScalar is a Unicode scalar value named by \x{...}, \u{...}, or
// \U........, kept distinct from AtomChar so Dump renders it as an escape
// (always in the \x{...} form) rather than as the literal character.
type AtomScalar struct {
	atomKindBase
	Codepoint rune
}

// AtomEscaped is a single-letter escape such as \a \e \f \n \r \t, kept as
// the escape letter itself (not the character it denotes) for dialect-
// faithful dumping.
type AtomEscaped struct {
	atomKindBase
	Letter rune
}

// AtomNamedCharacter is \N{NAME} (a named Unicode character).
type AtomNamedCharacter struct {
	atomKindBase
	Name string
}

// AtomProperty is \p{...} or \P{...} (a Unicode character property test).
type AtomProperty struct {
	atomKindBase
	Spec    PropertySpec
	Negated bool
}

// AtomKeyboardControl is \cX.
type AtomKeyboardControl struct {
	atomKindBase
	Char rune
}

// AtomKeyboardMeta is \M-X.
type AtomKeyboardMeta struct {
	atomKindBase
	Char rune
}

// AtomKeyboardMetaControl is \M-\C-X.
type AtomKeyboardMetaControl struct {
	atomKindBase
	Char rune
}

// AtomAny is '.'.
type AtomAny struct{ atomKindBase }

// AtomStartOfLine is '^'.
type AtomStartOfLine struct{ atomKindBase }

func (AtomStartOfLine) Quantifiable() bool { return false }

// AtomEndOfLine is '$'.
type AtomEndOfLine struct{ atomKindBase }

func (AtomEndOfLine) Quantifiable() bool { return false }

// AtomAnchor is one of the remaining zero-width anchors: \A \Z \z \b \B \G
// \K.
type AtomAnchor struct {
	atomKindBase
	Anchor string // e.g. "A", "Z", "z", "b", "B", "G", "K"
}

func (AtomAnchor) Quantifiable() bool { return false }

// AtomBackreference is \1, \k<name>, \g{name}, etc.
type AtomBackreference struct {
	atomKindBase
	Ref Reference
}

// AtomSubpattern is a subroutine call to a group, e.g. PCRE's (?1) or
// Oniguruma's \g<name>.
type AtomSubpattern struct {
	atomKindBase
	Ref Reference
}

// AtomCallout is a PCRE "(?C...)" debugging callout.
type AtomCallout struct {
	atomKindBase
	Kind CalloutKind
}

// AtomBacktrackingDirective is "(*VERB)" or "(*VERB:NAME)".
type AtomBacktrackingDirective struct {
	atomKindBase
	Verb BacktrackVerb
	Name string
}

func (AtomBacktrackingDirective) Quantifiable() bool { return false }

// BacktrackVerb enumerates the backtracking control verbs.
type BacktrackVerb int

const (
	VerbAccept BacktrackVerb = iota
	VerbFail
	VerbMark
	VerbCommit
	VerbPrune
	VerbSkip
	VerbThen
)

func (v BacktrackVerb) String() string {
	switch v {
	case VerbAccept:
		return "ACCEPT"
	case VerbFail:
		return "FAIL"
	case VerbMark:
		return "MARK"
	case VerbCommit:
		return "COMMIT"
	case VerbPrune:
		return "PRUNE"
	case VerbSkip:
		return "SKIP"
	case VerbThen:
		return "THEN"
	default:
		return fmt.Sprintf("BacktrackVerb(%d)", int(v))
	}
}

// CalloutKind describes a PCRE "(?C...)" callout: either a numbered
// callout "(?Cn)", or the bare default callout "(?C)" (Number == nil).
type CalloutKind struct {
	Number *int
}

// RefKind enumerates the three ways a back-reference or subpattern call can
// name its target group.
type RefKind int

const (
	RefAbsolute RefKind = iota
	RefRelative
	RefNamed
)

// Reference names a capture group, for a back-reference, subpattern call,
// or condition. An absolute index of 0 denotes whole-pattern recursion.
// RecursionLevel, if non-nil, is the "±n" recursion-level suffix some
// dialects allow on any reference form.
type Reference struct {
	Kind  RefKind
	Index int // valid for RefAbsolute and RefRelative
	Sign  int // +1 or -1, valid for RefRelative only
	Name  string // valid for RefNamed only

	RecursionLevel *int
}

// PropertyClass classifies the body of a \p{...}/\P{...} escape.
type PropertyClass int

const (
	PropertyBare PropertyClass = iota
	PropertyGeneralCategory
	PropertyScript
	PropertyScriptExtensions
	PropertyOther
)

// PropertySpec is the parsed body of a \p{...}/\P{...} escape. Unknown
// property names are preserved as PropertyOther rather than rejected (spec
// §9): classification, not semantic validation, is this module's job.
type PropertySpec struct {
	Class PropertyClass
	// Prefix is the raw key before '=' ("script", "sc", "scx", "gc", or a
	// fully custom key); empty when the body has no '=', which is always
	// the case for Bare.
	Prefix string
	// Value is the property value: the bare/category name itself for
	// Bare and GeneralCategory, or the text after '=' otherwise.
	Value string
}

var (
	_ AtomKind = AtomChar{}
	_ AtomKind = AtomScalar{}
	_ AtomKind = AtomEscaped{}
	_ AtomKind = AtomNamedCharacter{}
	_ AtomKind = AtomProperty{}
	_ AtomKind = AtomKeyboardControl{}
	_ AtomKind = AtomKeyboardMeta{}
	_ AtomKind = AtomKeyboardMetaControl{}
	_ AtomKind = AtomAny{}
	_ AtomKind = AtomStartOfLine{}
	_ AtomKind = AtomEndOfLine{}
	_ AtomKind = AtomAnchor{}
	_ AtomKind = AtomBackreference{}
	_ AtomKind = AtomSubpattern{}
	_ AtomKind = AtomCallout{}
	_ AtomKind = AtomBacktrackingDirective{}
)
