// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir

import "github.com/crosslang/printengine/irloc"

// Cursor walks a normalized IR tree depth-first, descending into a
// Condition's chosen branch Container and returning to the parent
// Container when a child is exhausted. It is the tree-shaped analogue of
// the teacher package's offset-addressable, seekable reader: instead of a
// byte offset into one flat stream, a Cursor's position is a stack of
// (Container, index) frames, and "seeking" (Clone, then assigning a stored
// clone back) is how the printer backtracks to a save point.
type Cursor struct {
	frames []frame
}

type frame struct {
	container *Container
	index     int
	branch    string // "" for the root or a plain container, else "true"/"false"
}

// NewCursor returns a Cursor positioned at the start of root.
func NewCursor(root *Container) Cursor {
	return Cursor{frames: []frame{{container: root, index: 0}}}
}

// Done reports whether the cursor has exhausted the root container.
func (c *Cursor) Done() bool {
	return len(c.frames) == 0
}

// Depth reports how many containers deep the cursor currently is, for use
// by package irloc when describing where an engine error occurred.
func (c *Cursor) Depth() int {
	return len(c.frames)
}

// Peek returns the node the cursor is positioned at without advancing, and
// whether one exists (false once every enclosing container is exhausted).
// It pops any exhausted frames off the top of the stack first, so that
// immediately after a call returning true, the top frame is exactly the one
// the returned node came from — the invariant Advance, Rewind and
// captureSavePoint all rely on.
func (c *Cursor) Peek() (Node, bool) {
	for len(c.frames) > 0 {
		top := &c.frames[len(c.frames)-1]
		if top.index < len(top.container.Nodes) {
			return top.container.Nodes[top.index], true
		}
		c.frames = c.frames[:len(c.frames)-1]
	}
	return Node{}, false
}

// Advance moves past the node last returned by Peek. It only ever touches
// the top frame — popping an exhausted frame once its last node is behind
// it is Peek's job, deferred until the next node is actually needed, so
// that advancing past a branch's final item never also skips a sibling of
// its parent that hasn't been visited yet.
func (c *Cursor) Advance() {
	if len(c.frames) == 0 {
		return
	}
	c.frames[len(c.frames)-1].index++
}

// Descend pushes a new frame for container, to be walked before control
// returns to the current frame. branch labels the frame for diagnostics
// ("true"/"false" when entering a Condition's chosen branch, "" otherwise).
func (c *Cursor) Descend(container *Container, branch string) {
	c.frames = append(c.frames, frame{container: container, index: 0, branch: branch})
}

// Location renders the cursor's current position as an irloc.Location, for
// use in engine-fatal diagnostics.
func (c *Cursor) Location() irloc.Location {
	loc := irloc.Root
	for _, f := range c.frames {
		loc = loc.At(f.branch, f.index)
	}
	return loc
}

// Rewind decrements the current frame's index by one, so the node just
// consumed will be re-visited. Used by look-ahead save points, which must
// re-run the Condition or Info that triggered them (SPEC_FULL.md §4.2).
func (c *Cursor) Rewind() {
	if len(c.frames) == 0 {
		return
	}
	top := &c.frames[len(c.frames)-1]
	if top.index > 0 {
		top.index--
	}
}

// Clone returns an independent copy of the cursor's position, safe to
// store in a save point and restore later without aliasing this cursor's
// further mutations. The Containers themselves are read-only and shared.
func (c Cursor) Clone() Cursor {
	frames := make([]frame, len(c.frames))
	copy(frames, c.frames)
	return Cursor{frames: frames}
}
