// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir

import (
	"fmt"
	"strings"

	"github.com/crosslang/printengine/identity"
)

// Builder is the ergonomic surface a plugin (or a test) uses to construct
// IR, in the spirit of the teacher package's IndentedWriter: each
// structural helper (Indent, NewLineGroup, IgnoringIndent) hands the
// caller a fresh child Builder scoped to that region, rather than
// requiring the caller to balance Start/Finish signals by hand.
//
// Builder is not safe for concurrent use; a single document is always
// built by one goroutine.
type Builder struct {
	alloc *identity.Allocator
	items []PrintItem
}

// NewBuilder returns an empty Builder backed by alloc, which every Info and
// Condition constructed through it (directly, or via a nested child
// Builder) will draw identities from.
func NewBuilder(alloc *identity.Allocator) *Builder {
	return &Builder{alloc: alloc}
}

func (b *Builder) child() *Builder {
	return &Builder{alloc: b.alloc}
}

// Allocator returns the identity.Allocator backing this Builder, for
// callers that need to pre-allocate an Info or Condition (via ir.NewInfo /
// ir.NewCondition directly) before the point in the sequence where Append
// will place it.
func (b *Builder) Allocator() *identity.Allocator {
	return b.alloc
}

// Items returns the accumulated, un-normalized print item sequence.
func (b *Builder) Items() []PrintItem {
	return b.items
}

// Build normalizes the accumulated items into a root Container, ready to
// hand to printer.Print.
func (b *Builder) Build() *Container {
	return Normalize(b.items)
}

// Text appends a string fragment. It panics if s contains a newline, carriage
// return or tab: those must be expressed as signals (SPEC_FULL.md §3).
func (b *Builder) Text(s string) *Builder {
	if strings.ContainsAny(s, "\n\r\t") {
		panic(fmt.Sprintf("ir: Text fragment %q contains a forbidden control character", s))
	}
	b.items = append(b.items, Str(s))
	return b
}

// Raw appends a fragment whose internal newlines are preserved verbatim and
// never rewrapped; only its first line counts against the line width.
func (b *Builder) Raw(s string) *Builder {
	b.items = append(b.items, Raw(s))
	return b
}

// Space appends a single literal space. Prefer SpaceOrNewLine when the
// space is a candidate break point.
func (b *Builder) Space() *Builder {
	b.items = append(b.items, Str(" "))
	return b
}

func (b *Builder) signal(s Signal) *Builder {
	b.items = append(b.items, Sig(s))
	return b
}

func (b *Builder) NewLine() *Builder         { return b.signal(NewLine) }
func (b *Builder) PossibleNewLine() *Builder { return b.signal(PossibleNewLine) }
func (b *Builder) SpaceOrNewLine() *Builder  { return b.signal(SpaceOrNewLine) }
func (b *Builder) ExpectNewLine() *Builder   { return b.signal(ExpectNewLine) }
func (b *Builder) Tab() *Builder             { return b.signal(Tab) }
func (b *Builder) SingleIndent() *Builder    { return b.signal(SingleIndent) }

// Indent wraps the items appended by body in a StartIndent/FinishIndent
// pair.
func (b *Builder) Indent(body func(*Builder)) *Builder {
	b.signal(StartIndent)
	child := b.child()
	body(child)
	b.items = append(b.items, child.items...)
	b.signal(FinishIndent)
	return b
}

// NewLineGroup wraps the items appended by body in a StartNewLineGroup/
// FinishNewLineGroup pair: a region the printer prefers to keep on one
// line, yielding to shallower groups when a break is unavoidable.
func (b *Builder) NewLineGroup(body func(*Builder)) *Builder {
	b.signal(StartNewLineGroup)
	child := b.child()
	body(child)
	b.items = append(b.items, child.items...)
	b.signal(FinishNewLineGroup)
	return b
}

// IgnoringIndent wraps the items appended by body in a
// StartIgnoringIndent/FinishIgnoringIndent pair.
func (b *Builder) IgnoringIndent(body func(*Builder)) *Builder {
	b.signal(StartIgnoringIndent)
	child := b.child()
	body(child)
	b.items = append(b.items, child.items...)
	b.signal(FinishIgnoringIndent)
	return b
}

// Append adds an already-constructed PrintItem to the sequence. It exists
// for callers (package condition's consumers, plugin lowering code) that
// need to pre-allocate an *Info or *Condition before the point in the
// stream where it is actually emitted — for example, an Info marking the
// end of a collection, referenced by a Condition placed before the
// collection's contents.
func (b *Builder) Append(item PrintItem) *Builder {
	b.items = append(b.items, item)
	return b
}

// Info allocates a fresh Info, appends it to the sequence, and returns it
// so a later Condition resolver can query its resolved position.
func (b *Builder) Info(name string) *Info {
	info := NewInfo(b.alloc, name)
	b.items = append(b.items, info)
	return info
}

// Condition allocates a fresh Condition resolved by resolver, appends it to
// the sequence, and returns it. onTrue/onFalse build the condition's two
// branches against fresh child Builders; they are not invoked here — the
// normalizer defers that until the printer first enters the corresponding
// branch (SPEC_FULL.md §4.3).
func (b *Builder) Condition(name string, resolver ConditionResolver, onTrue, onFalse func(*Builder)) *Condition {
	cond := NewCondition(b.alloc, name, resolver, branchOf(b, onTrue), branchOf(b, onFalse))
	b.items = append(b.items, cond)
	return cond
}

// AliasCondition allocates a Condition whose resolved value always mirrors
// alias's.
func (b *Builder) AliasCondition(name string, alias *Condition, onTrue, onFalse func(*Builder)) *Condition {
	cond := NewAliasCondition(b.alloc, name, alias, branchOf(b, onTrue), branchOf(b, onFalse))
	b.items = append(b.items, cond)
	return cond
}

func branchOf(b *Builder, body func(*Builder)) Branch {
	if body == nil {
		return nil
	}
	return func() []PrintItem {
		child := b.child()
		body(child)
		return child.items
	}
}
