// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir

// NodeKind tags which field of a Node is meaningful.
type NodeKind int

const (
	NodeSignal NodeKind = iota
	NodeString
	NodeRawString
	NodeInfo
	NodeCondition
)

// Node is one normalized element of a Container: a leaf print item, or a
// Condition whose branches are Containers materialized on demand.
type Node struct {
	Kind      NodeKind
	Signal    Signal
	Text      string
	Info      *Info
	Condition *Condition
}

// Container is a finite, indexable, re-enterable sequence of Nodes — the
// normalizer's output. Re-entering a Container (as backtracking requires)
// just means reusing the same slice from a different index; nothing about
// walking it again is stateful. Only Condition nodes introduce real tree
// structure, and even there, each branch is itself a flat Container.
type Container struct {
	Nodes []Node
}

// Materialize returns the Container for cond's true or false branch,
// calling the corresponding Branch generator and normalizing its result the
// first time this branch is entered, and returning the cached Container on
// every subsequent entry (including every backtrack that revisits it).
//
// This is the "freezes each branch into a repeatable container the first
// time it is entered" behavior of SPEC_FULL.md §4.3.
func Materialize(cond *Condition, branch bool) *Container {
	if branch {
		if cond.trueContainer == nil {
			cond.trueContainer = Normalize(callBranch(cond.TrueBranch))
		}
		return cond.trueContainer
	}
	if cond.falseContainer == nil {
		cond.falseContainer = Normalize(callBranch(cond.FalseBranch))
	}
	return cond.falseContainer
}

func callBranch(b Branch) []PrintItem {
	if b == nil {
		return nil
	}
	return b()
}
