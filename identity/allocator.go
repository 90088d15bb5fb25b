// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package identity hands out the stable identities that the print engine
// uses in place of object identity.
//
// Infos and Conditions are compared and keyed by a monotonically assigned
// uint32, not by pointer: this lets the resolved-info and resolved-condition
// maps in package printer be plain dense-enough maps keyed on a small
// integer, and it lets two textual occurrences of "the same" condition
// (constructed once, referenced twice by the plugin) share one identity by
// construction rather than by accident of pointer equality.
package identity

// ID is a process-local identity assigned to an Info or a Condition at
// IR-construction time.
type ID uint32

// Allocator hands out IDs in increasing order starting at 1. The zero value
// of ID is reserved to mean "no identity assigned" so that a zero-valued
// Info or Condition is recognizably invalid rather than silently aliasing
// the first allocated identity.
//
// An Allocator is not safe for concurrent use; callers that build IR
// concurrently should use one Allocator per goroutine and not share IDs
// across them within the same document.
type Allocator struct {
	next ID
}

// NewAllocator returns an Allocator ready to hand out IDs starting at 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next returns a fresh, previously unused ID.
func (a *Allocator) Next() ID {
	id := a.next
	a.next++
	return id
}

// Count returns the number of IDs handed out so far.
func (a *Allocator) Count() int {
	return int(a.next - 1)
}
