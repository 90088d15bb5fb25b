// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslang/printengine/identity"
	"github.com/crosslang/printengine/ir"
)

func TestNormalizeMapsEachItemKind(t *testing.T) {
	alloc := identity.NewAllocator()
	info := ir.NewInfo(alloc, "i")
	cond := ir.NewCondition(alloc, "c",
		func(ir.Context) ir.Trilean { return ir.Unknown },
		func() []ir.PrintItem { return nil },
		func() []ir.PrintItem { return nil },
	)

	items := []ir.PrintItem{
		ir.Str("hello"),
		ir.Raw("a\nb"),
		ir.Sig(ir.NewLine),
		info,
		cond,
	}
	root := ir.Normalize(items)
	require.Len(t, root.Nodes, 5)

	assert.Equal(t, ir.NodeString, root.Nodes[0].Kind)
	assert.Equal(t, "hello", root.Nodes[0].Text)

	assert.Equal(t, ir.NodeRawString, root.Nodes[1].Kind)
	assert.Equal(t, "a\nb", root.Nodes[1].Text)

	assert.Equal(t, ir.NodeSignal, root.Nodes[2].Kind)
	assert.Equal(t, ir.NewLine, root.Nodes[2].Signal)

	assert.Equal(t, ir.NodeInfo, root.Nodes[3].Kind)
	assert.Same(t, info, root.Nodes[3].Info)

	assert.Equal(t, ir.NodeCondition, root.Nodes[4].Kind)
	assert.Same(t, cond, root.Nodes[4].Condition)
}

func TestNormalizeDoesNotRecurseIntoConditionBranches(t *testing.T) {
	alloc := identity.NewAllocator()
	called := false
	cond := ir.NewCondition(alloc, "c",
		func(ir.Context) ir.Trilean { return ir.Unknown },
		func() []ir.PrintItem { called = true; return []ir.PrintItem{ir.Str("t")} },
		nil,
	)

	ir.Normalize([]ir.PrintItem{cond})
	assert.False(t, called, "Normalize must not eagerly materialize a Condition's branches")
}

func TestMaterializeOnNilBranchReturnsEmptyContainer(t *testing.T) {
	alloc := identity.NewAllocator()
	cond := ir.NewCondition(alloc, "c",
		func(ir.Context) ir.Trilean { return ir.Unknown },
		nil,
		nil,
	)

	cont := ir.Materialize(cond, false)
	assert.Empty(t, cont.Nodes)
}
