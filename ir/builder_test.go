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

func newBuilder() *ir.Builder {
	return ir.NewBuilder(identity.NewAllocator())
}

func TestTextPanicsOnControlCharacters(t *testing.T) {
	b := newBuilder()
	assert.Panics(t, func() { b.Text("a\nb") })
	assert.Panics(t, func() { b.Text("a\tb") })
}

func TestIndentWrapsStartAndFinish(t *testing.T) {
	b := newBuilder()
	b.Indent(func(ib *ir.Builder) { ib.Text("x") })

	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, ir.Sig(ir.StartIndent), items[0])
	assert.Equal(t, ir.Str("x"), items[1])
	assert.Equal(t, ir.Sig(ir.FinishIndent), items[2])
}

func TestNewLineGroupWrapsStartAndFinish(t *testing.T) {
	b := newBuilder()
	b.NewLineGroup(func(gb *ir.Builder) { gb.Text("x") })

	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, ir.Sig(ir.StartNewLineGroup), items[0])
	assert.Equal(t, ir.Sig(ir.FinishNewLineGroup), items[2])
}

func TestIgnoringIndentWrapsStartAndFinish(t *testing.T) {
	b := newBuilder()
	b.IgnoringIndent(func(ib *ir.Builder) { ib.Text("x") })

	items := b.Items()
	require.Len(t, items, 3)
	assert.Equal(t, ir.Sig(ir.StartIgnoringIndent), items[0])
	assert.Equal(t, ir.Sig(ir.FinishIgnoringIndent), items[2])
}

func TestInfoSharesIdentityAcrossOccurrences(t *testing.T) {
	b := newBuilder()
	info := b.Info("end")
	b.Append(info)

	items := b.Items()
	require.Len(t, items, 2)
	assert.Same(t, info, items[0])
	assert.Same(t, info, items[1])
}

func TestConditionBranchesAreNotInvokedAtConstructionTime(t *testing.T) {
	b := newBuilder()
	called := false
	cond := b.Condition("c",
		func(ir.Context) ir.Trilean { return ir.True },
		func(tb *ir.Builder) { called = true; tb.Text("t") },
		func(fb *ir.Builder) { fb.Text("f") },
	)
	assert.False(t, called, "branch bodies must be deferred until the printer enters them")
	require.NotNil(t, cond)

	cont := ir.Materialize(cond, true)
	assert.True(t, called)
	require.Len(t, cont.Nodes, 1)
	assert.Equal(t, "t", cont.Nodes[0].Text)
}

func TestMaterializeCachesEachBranch(t *testing.T) {
	b := newBuilder()
	calls := 0
	cond := b.Condition("c",
		func(ir.Context) ir.Trilean { return ir.True },
		func(tb *ir.Builder) { calls++; tb.Text("t") },
		func(fb *ir.Builder) {},
	)

	first := ir.Materialize(cond, true)
	second := ir.Materialize(cond, true)
	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestBuildNormalizesAccumulatedItems(t *testing.T) {
	b := newBuilder()
	b.Text("a")
	b.Space()
	b.Text("b")

	root := b.Build()
	require.Len(t, root.Nodes, 3)
	assert.Equal(t, "a", root.Nodes[0].Text)
	assert.Equal(t, " ", root.Nodes[1].Text)
	assert.Equal(t, "b", root.Nodes[2].Text)
}
