// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package ir defines the language-agnostic intermediate representation a
// plugin hands to the print engine: the tagged union of print items
// (SPEC_FULL.md §3), the normalizer that turns a plugin's flat item
// sequence into an indexable, re-enterable tree (§4.3), and the cursor the
// printer uses to walk that tree with backtracking.
package ir

// Signal is a primitive layout directive. Unlike String and RawString,
// signals carry no text of their own; they tell the writer how to move.
type Signal int

const (
	// NewLine commits a newline immediately.
	NewLine Signal = iota
	// SpaceOrNewLine emits a space if it fits within maxWidth, else breaks.
	SpaceOrNewLine
	// PossibleNewLine marks a candidate break point without emitting anything.
	PossibleNewLine
	// ExpectNewLine forces the next non-newline write to be preceded by a newline.
	ExpectNewLine
	// StartIndent increases the writer's indent level by one.
	StartIndent
	// FinishIndent decreases the writer's indent level by one.
	FinishIndent
	// StartNewLineGroup opens a region that prefers to stay on one line.
	StartNewLineGroup
	// FinishNewLineGroup closes the most recently opened newline group.
	FinishNewLineGroup
	// SingleIndent emits one indent unit unconditionally.
	SingleIndent
	// StartIgnoringIndent suppresses indentation at column zero.
	StartIgnoringIndent
	// FinishIgnoringIndent restores indentation at column zero.
	FinishIgnoringIndent
	// Tab emits a single tab character.
	Tab
)

//go:generate stringer -type=Signal

const _Signal_name = "NewLineSpaceOrNewLinePossibleNewLineExpectNewLineStartIndentFinishIndentStartNewLineGroupFinishNewLineGroupSingleIndentStartIgnoringIndentFinishIgnoringIndentTab"

var _Signal_index = [...]uint16{0, 7, 21, 36, 49, 60, 72, 89, 107, 119, 138, 158, 161}

func (s Signal) String() string {
	if s < 0 || int(s) >= len(_Signal_index)-1 {
		return "Signal(invalid)"
	}
	return _Signal_name[_Signal_index[s]:_Signal_index[s+1]]
}

// PrintItem is the tagged union a plugin emits: a Signal, a String, a
// RawString, an *Info, or a *Condition. It is implemented by value types
// Str, Raw and Sig, and by pointer types *Info and *Condition so that two
// textual occurrences of "the same" Info or Condition share identity by
// construction (Go pointer identity), per SPEC_FULL.md §3's invariant.
type PrintItem interface {
	isPrintItem()
}

// Str is a text fragment with no embedded newline or tab. Constructing IR
// through Builder validates this; hand-built IR is validated by the
// printer at isTesting time (SPEC_FULL.md §6).
type Str string

func (Str) isPrintItem() {}

// Raw is a text fragment whose leading line width is its first-line length;
// internal newlines are permitted and are never rewrapped.
type Raw string

func (Raw) isPrintItem() {}

// Sig wraps a bare Signal as a PrintItem.
type Sig Signal

func (Sig) isPrintItem() {}

func (*Info) isPrintItem()      {}
func (*Condition) isPrintItem() {}
