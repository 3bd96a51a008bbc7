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

// GroupKind is the sum type of the ways a "(...)" construct can be
// introduced. Every implementation reports HasImplicitScope (true only for
// the isolated option-change form, "(?ims-x)" with no trailing ':') and
// IsCapturing (true for capture, namedCapture, and balancedCapture).
type GroupKind interface {
	// isGroupKind is unexported so GroupKind is closed to this package.
	isGroupKind()

	// HasImplicitScope reports whether this group kind implicitly scopes
	// the rest of the enclosing alternation branch, rather than an
	// explicit child (true only for GroupChangeMatchingOptions in its
	// isolated form).
	HasImplicitScope() bool

	// IsCapturing reports whether this group kind allocates a capture
	// group number.
	IsCapturing() bool

	// Label is the dump token for this kind, e.g. "capture",
	// "namedCapture<x>", "lookahead".
	Label() string
}

type groupKindBase struct{}

func (groupKindBase) isGroupKind()        {}
func (groupKindBase) HasImplicitScope() bool { return false }

// GroupCapture is "(...)".
type GroupCapture struct{ groupKindBase }

func (GroupCapture) IsCapturing() bool { return true }
func (GroupCapture) Label() string     { return "capture" }

// GroupNamedCapture is "(?P<name>...)", "(?<name>...)", or "(?'name'...)".
type GroupNamedCapture struct {
	groupKindBase
	Name string
}

func (GroupNamedCapture) IsCapturing() bool      { return true }
func (g GroupNamedCapture) Label() string        { return "namedCapture<" + g.Name + ">" }

// GroupBalancedCapture is .NET's "(?<name-prior>...)": a named capture that
// also pops a prior named capture group. Name is empty if the form
// omitted it (bare "(?<-prior>...)" naming only the group being popped).
type GroupBalancedCapture struct {
	groupKindBase
	Name  string
	Prior string
}

func (GroupBalancedCapture) IsCapturing() bool { return true }
func (g GroupBalancedCapture) Label() string {
	return "balancedCapture<" + g.Name + "," + g.Prior + ">"
}

// GroupNonCapture is "(?:...)".
type GroupNonCapture struct{ groupKindBase }

func (GroupNonCapture) IsCapturing() bool { return false }
func (GroupNonCapture) Label() string     { return "nonCapture" }

// GroupNonCaptureReset is PCRE's branch-reset group "(?|...)". Per spec §9
// and §4.4, this module records the construct faithfully but does not
// attempt to reset group numbering across its branches; that is a known,
// deliberate limitation (see DESIGN.md).
type GroupNonCaptureReset struct{ groupKindBase }

func (GroupNonCaptureReset) IsCapturing() bool { return false }
func (GroupNonCaptureReset) Label() string     { return "nonCaptureReset" }

// GroupAtomicNonCapturing is "(?>...)".
type GroupAtomicNonCapturing struct{ groupKindBase }

func (GroupAtomicNonCapturing) IsCapturing() bool { return false }
func (GroupAtomicNonCapturing) Label() string     { return "atomicNonCapturing" }

// GroupLookahead is "(?=...)".
type GroupLookahead struct{ groupKindBase }

func (GroupLookahead) IsCapturing() bool { return false }
func (GroupLookahead) Label() string     { return "lookahead" }

// GroupNegativeLookahead is "(?!...)".
type GroupNegativeLookahead struct{ groupKindBase }

func (GroupNegativeLookahead) IsCapturing() bool { return false }
func (GroupNegativeLookahead) Label() string     { return "negativeLookahead" }

// GroupNonAtomicLookahead is Oniguruma's "(?*...)".
type GroupNonAtomicLookahead struct{ groupKindBase }

func (GroupNonAtomicLookahead) IsCapturing() bool { return false }
func (GroupNonAtomicLookahead) Label() string     { return "nonAtomicLookahead" }

// GroupLookbehind is "(?<=...)".
type GroupLookbehind struct{ groupKindBase }

func (GroupLookbehind) IsCapturing() bool { return false }
func (GroupLookbehind) Label() string     { return "lookbehind" }

// GroupNegativeLookbehind is "(?<!...)".
type GroupNegativeLookbehind struct{ groupKindBase }

func (GroupNegativeLookbehind) IsCapturing() bool { return false }
func (GroupNegativeLookbehind) Label() string     { return "negativeLookbehind" }

// GroupNonAtomicLookbehind is Oniguruma's non-atomic lookbehind.
type GroupNonAtomicLookbehind struct{ groupKindBase }

func (GroupNonAtomicLookbehind) IsCapturing() bool { return false }
func (GroupNonAtomicLookbehind) Label() string     { return "nonAtomicLookbehind" }

// GroupScriptRun is Oniguruma's "(*sr:...)".
type GroupScriptRun struct{ groupKindBase }

func (GroupScriptRun) IsCapturing() bool { return false }
func (GroupScriptRun) Label() string     { return "scriptRun" }

// GroupAtomicScriptRun is Oniguruma's "(*asr:...)".
type GroupAtomicScriptRun struct{ groupKindBase }

func (GroupAtomicScriptRun) IsCapturing() bool { return false }
func (GroupAtomicScriptRun) Label() string     { return "atomicScriptRun" }

// GroupChangeMatchingOptions is "(?ims-x:...)" (scoped) or "(?ims-x)"
// (isolated). Seq is the raw option-letter sequence, e.g. "ims-x".
type GroupChangeMatchingOptions struct {
	groupKindBase
	Seq        string
	IsIsolated bool
}

func (GroupChangeMatchingOptions) IsCapturing() bool { return false }
func (g GroupChangeMatchingOptions) HasImplicitScope() bool { return g.IsIsolated }
func (g GroupChangeMatchingOptions) Label() string          { return "changeMatchingOptions<" + g.Seq + ">" }

var (
	_ GroupKind = GroupCapture{}
	_ GroupKind = GroupNamedCapture{}
	_ GroupKind = GroupBalancedCapture{}
	_ GroupKind = GroupNonCapture{}
	_ GroupKind = GroupNonCaptureReset{}
	_ GroupKind = GroupAtomicNonCapturing{}
	_ GroupKind = GroupLookahead{}
	_ GroupKind = GroupNegativeLookahead{}
	_ GroupKind = GroupNonAtomicLookahead{}
	_ GroupKind = GroupLookbehind{}
	_ GroupKind = GroupNegativeLookbehind{}
	_ GroupKind = GroupNonAtomicLookbehind{}
	_ GroupKind = GroupScriptRun{}
	_ GroupKind = GroupAtomicScriptRun{}
	_ GroupKind = GroupChangeMatchingOptions{}
)
