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

// QuantKind is the laziness/possessiveness of a Quantification.
type QuantKind int

const (
	Eager QuantKind = iota
	Reluctant
	Possessive
)

func (k QuantKind) String() string {
	switch k {
	case Eager:
		return "eager"
	case Reluctant:
		return "reluctant"
	case Possessive:
		return "possessive"
	default:
		return fmt.Sprintf("QuantKind(%d)", int(k))
	}
}

// Amount is the repetition count of a Quantification.
type Amount interface {
	isAmount()

	// Label is the dump token for this amount, e.g. "zeroOrMore",
	// "exactly3", ".range<2...4>".
	Label() string
}

type amountBase struct{}

func (amountBase) isAmount() {}

// ZeroOrMore is '*'.
type ZeroOrMore struct{ amountBase }

func (ZeroOrMore) Label() string { return "zeroOrMore" }

// OneOrMore is '+'.
type OneOrMore struct{ amountBase }

func (OneOrMore) Label() string { return "oneOrMore" }

// ZeroOrOne is '?'.
type ZeroOrOne struct{ amountBase }

func (ZeroOrOne) Label() string { return "zeroOrOne" }

// Exactly is "{n}".
type Exactly struct {
	amountBase
	N int
}

func (a Exactly) Label() string { return fmt.Sprintf("exactly%d", a.N) }

// NOrMore is "{n,}".
type NOrMore struct {
	amountBase
	N int
}

func (a NOrMore) Label() string { return fmt.Sprintf("nOrMore%d", a.N) }

// UpToN is "{,n}" (a PCRE extension meaning "{0,n}").
type UpToN struct {
	amountBase
	N int
}

func (a UpToN) Label() string { return fmt.Sprintf("uptoN%d", a.N) }

// Range is "{lo,hi}", with Lo <= Hi.
type Range struct {
	amountBase
	Lo, Hi int
}

func (a Range) Label() string { return fmt.Sprintf(".range<%d...%d>", a.Lo, a.Hi) }

var (
	_ Amount = ZeroOrMore{}
	_ Amount = OneOrMore{}
	_ Amount = ZeroOrOne{}
	_ Amount = Exactly{}
	_ Amount = NOrMore{}
	_ Amount = UpToN{}
	_ Amount = Range{}
)
