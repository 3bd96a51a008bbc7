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

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders n as a deterministic, trivia-omitting string used by golden
// tests. It is not a pretty-printer (spec §1 scopes that out); it exists
// only so tests can assert structural shape without hand-walking the tree.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, StripTrivia(n))
	return b.String()
}

func dump(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Empty:
		b.WriteString("empty")
	case *Alternation:
		b.WriteString("alternation")
		dumpChildren(b, n.Children)
	case *Concatenation:
		dumpChildren(b, n.Children)
	case *Group:
		b.WriteString("group_")
		b.WriteString(n.Kind.Value.Label())
		b.WriteByte('(')
		dump(b, n.Child)
		b.WriteByte(')')
	case *Conditional:
		b.WriteString("if ")
		dumpCondition(b, n.Condition)
		b.WriteString(" then ")
		dump(b, n.True)
		b.WriteString(" else ")
		dump(b, n.False)
	case *Quantification:
		b.WriteString("quant_")
		b.WriteString(n.Amount.Value.Label())
		b.WriteByte('_')
		b.WriteString(n.Kind.Value.String())
		b.WriteByte('(')
		dump(b, n.Operand)
		b.WriteByte(')')
	case *Quote:
		b.WriteString("quote(")
		b.WriteString(strconv.Quote(n.Literal))
		b.WriteByte(')')
	case *Trivia:
		b.WriteString("trivia")
	case *Atom:
		b.WriteString(atomDump(n.Kind))
	case *CustomCharacterClass:
		b.WriteString("customCharacterClass(")
		if n.Start.Value.Negated {
			b.WriteString("^,")
		}
		dumpMembers(b, n.Members)
		b.WriteByte(')')
	case *GlobalMatchingOptions:
		b.WriteString("globalOptions([")
		for i, opt := range n.Options {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(opt.Name)
			if opt.Value != "" {
				b.WriteByte('=')
				b.WriteString(opt.Value)
			}
		}
		b.WriteString("],")
		dump(b, n.AST)
		b.WriteByte(')')
	case *AbsentFunction:
		dumpAbsent(b, n.Kind)
	default:
		fmt.Fprintf(b, "<?%T>", n)
	}
}

func dumpChildren(b *strings.Builder, children []Node) {
	b.WriteByte('(')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		dump(b, c)
	}
	b.WriteByte(')')
}

func dumpMembers(b *strings.Builder, members []Member) {
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		dumpMember(b, m)
	}
}

func dumpMember(b *strings.Builder, m Member) {
	switch m := m.(type) {
	case MemberAtom:
		b.WriteString(atomDump(m.Atom.Kind))
	case MemberRange:
		b.WriteString(atomDump(m.Lhs.Kind))
		b.WriteByte('-')
		b.WriteString(atomDump(m.Rhs.Kind))
	case MemberQuote:
		b.WriteString(strconv.Quote(m.Quote.Literal))
	case MemberNested:
		b.WriteByte('[')
		if m.Class.Start.Value.Negated {
			b.WriteString("^,")
		}
		dumpMembers(b, m.Class.Members)
		b.WriteByte(']')
	case MemberSetOperation:
		b.WriteString("op [")
		dumpMembers(b, m.Lhs)
		b.WriteString("] ")
		b.WriteString(m.Op.Value.String())
		b.WriteString(" [")
		dumpMembers(b, m.Rhs)
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "<?%T>", m)
	}
}

func dumpCondition(b *strings.Builder, c Condition) {
	switch k := c.Kind.(type) {
	case CondPCREVersionCheck:
		if k.Op == VersionAtLeast {
			fmt.Fprintf(b, "VERSION>=%d.%d", k.Major, k.Minor)
		} else {
			fmt.Fprintf(b, "VERSION=%d.%d", k.Major, k.Minor)
		}
	case CondGroup:
		dump(b, k.Group)
	case CondGroupMatched:
		b.WriteString(referenceDump(k.Ref))
	case CondGroupRecursionCheck:
		b.WriteString("R&")
		b.WriteString(referenceDump(k.Ref))
	case CondRecursionCheck:
		b.WriteString("R")
	case CondDefineGroup:
		b.WriteString("DEFINE")
	default:
		fmt.Fprintf(b, "<?%T>", k)
	}
}

func dumpAbsent(b *strings.Builder, k AbsentKind) {
	switch k := k.(type) {
	case AbsentRepeater:
		b.WriteString("absent_repeater(")
		dump(b, k.Child)
		b.WriteByte(')')
	case AbsentExpression:
		b.WriteString("absent_expression(")
		dump(b, k.Absentee)
		b.WriteByte(',')
		dump(b, k.Expr)
		b.WriteByte(')')
	case AbsentStopper:
		b.WriteString("absent_stopper(")
		dump(b, k.Child)
		b.WriteByte(')')
	case AbsentClearer:
		b.WriteString("absent_clearer")
	default:
		fmt.Fprintf(b, "<?%T>", k)
	}
}

func referenceDump(r Reference) string {
	var s string
	switch r.Kind {
	case RefAbsolute:
		s = fmt.Sprintf("absolute(%d)", r.Index)
	case RefRelative:
		sign := "+"
		if r.Sign < 0 {
			sign = "-"
		}
		s = fmt.Sprintf("relative(%s%d)", sign, r.Index)
	case RefNamed:
		s = fmt.Sprintf("named(%q)", r.Name)
	}
	if r.RecursionLevel != nil {
		level := *r.RecursionLevel
		if level >= 0 {
			s += fmt.Sprintf(":+%d", level)
		} else {
			s += fmt.Sprintf(":%d", level)
		}
	}
	return s
}

// atomDump renders the dialect-faithful textual form of an atom kind:
// its literal string if it has one, otherwise the escape that produced it.
func atomDump(k AtomKind) string {
	switch k := k.(type) {
	case AtomChar:
		return string(k.Char)
	case AtomScalar:
		return fmt.Sprintf("\\x{%x}", k.Codepoint)
	case AtomEscaped:
		return "\\" + string(k.Letter)
	case AtomNamedCharacter:
		return "\\N{" + k.Name + "}"
	case AtomProperty:
		letter := "p"
		if k.Negated {
			letter = "P"
		}
		return "\\" + letter + "{" + propertyDump(k.Spec) + "}"
	case AtomKeyboardControl:
		return "\\c" + string(k.Char)
	case AtomKeyboardMeta:
		return "\\M-" + string(k.Char)
	case AtomKeyboardMetaControl:
		return "\\M-\\C-" + string(k.Char)
	case AtomAny:
		return "."
	case AtomStartOfLine:
		return "^"
	case AtomEndOfLine:
		return "$"
	case AtomAnchor:
		return "\\" + k.Anchor
	case AtomBackreference:
		return "\\" + referenceDump(k.Ref)
	case AtomSubpattern:
		return "(?" + referenceDump(k.Ref) + ")"
	case AtomCallout:
		if k.Kind.Number != nil {
			return fmt.Sprintf("(?C%d)", *k.Kind.Number)
		}
		return "(?C)"
	case AtomBacktrackingDirective:
		if k.Name != "" {
			return fmt.Sprintf("(*%s:%s)", k.Verb, k.Name)
		}
		return fmt.Sprintf("(*%s)", k.Verb)
	default:
		return fmt.Sprintf("<?%T>", k)
	}
}

func propertyDump(p PropertySpec) string {
	switch p.Class {
	case PropertyBare, PropertyGeneralCategory:
		return p.Value
	default:
		if p.Prefix == "" {
			return p.Value
		}
		return p.Prefix + "=" + p.Value
	}
}
