// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir

import (
	"github.com/crosslang/printengine/identity"
	"github.com/crosslang/printengine/intern"
)

// WriterInfo is the writer's position at the moment an Info item was
// reached, or at the moment a resolver asks "where is the writer right
// now". It is the currency conditions trade in (SPEC_FULL.md Glossary).
type WriterInfo struct {
	LineNumber            int
	ColumnNumber          int
	IndentLevel           int
	LineStartIndentLevel  int
	LineStartColumnNumber int
}

// Info is an identity-bearing marker. When the printer's cursor reaches an
// Info, the current WriterInfo is recorded and keyed by the Info's
// identity; later condition resolvers query it back out through Context.
type Info struct {
	ID      identity.ID
	nameSym intern.Symbol
}

// NewInfo allocates a fresh Info with the given debug name. The name is
// interned: plugins tend to reuse the same handful of names (e.g.
// "arrayStart") across every occurrence of a construct in a document.
func NewInfo(alloc *identity.Allocator, name string) *Info {
	return &Info{ID: alloc.Next(), nameSym: intern.InternString(name)}
}

// Name returns the Info's debug name.
func (i *Info) Name() string {
	return i.nameSym.String()
}
