// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package irloc describes "where" inside a normalized IR tree an engine
// failure occurred, in terms package diag and package position already
// understand.
//
// The print engine has no source file to point diagnostics at — its input
// is already-normalized IR, not text — so it reports Location values
// instead of file:line:column positions. A Location is a path of child
// indices from the root container down to the offending item, e.g.
// [2]/true-branch[0] for "the first item of the true branch of
// the third item of the root container".
package irloc

import (
	"strconv"
	"strings"

	"github.com/crosslang/printengine/position"
)

// Step is one hop in a Location path: an index into a container, tagged
// with which of a condition's branches (if any) the index is relative to.
type Step struct {
	Branch string // "" for a plain container, "true" or "false" for a condition branch
	Index  int
}

func (s Step) String() string {
	if s.Branch == "" {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Branch + "-branch[" + strconv.Itoa(s.Index) + "]"
}

// Location implements position.Position over an IR path rather than a
// source file. Filename always reports "<ir>"; Offset reports the number of
// steps in the path (depth), which is not a byte offset but satisfies the
// Position contract of being a stable, comparable number.
type Location struct {
	Path []Step
}

// At appends one more step and returns a new Location; Location values are
// treated as immutable so a partially built path can be shared safely while
// the printer continues walking deeper.
func (l Location) At(branch string, index int) Location {
	path := make([]Step, len(l.Path), len(l.Path)+1)
	copy(path, l.Path)
	path = append(path, Step{Branch: branch, Index: index})
	return Location{Path: path}
}

func (l Location) Filename() string {
	return "<ir>"
}

// Line has no meaning for an in-memory IR tree; Location reports 0, the
// value position.BasicPos.String treats as "no line/column" (it then prints
// just the filename). Location's own String below renders the path instead.
func (l Location) Line() int {
	return 0
}

func (l Location) Column() int {
	return len(l.Path)
}

func (l Location) Offset() int {
	return len(l.Path)
}

// Raw satisfies position.Position; a Location has no line-directive concept
// to adjust for, so it returns itself.
func (l Location) Raw() position.Position {
	return l
}

// String renders the path as e.g. "<ir>:[2]/true-branch[0]".
func (l Location) String() string {
	if len(l.Path) == 0 {
		return l.Filename() + ":<root>"
	}
	parts := make([]string, len(l.Path))
	for i, step := range l.Path {
		parts[i] = step.String()
	}
	return l.Filename() + ":" + strings.Join(parts, "/")
}

// Root is the empty Location, denoting the top-level container itself.
var Root = Location{}
