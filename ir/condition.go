// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package ir

import (
	"github.com/crosslang/printengine/identity"
	"github.com/crosslang/printengine/intern"
)

// Trilean is the three-valued result a condition resolver may return:
// definitely true, definitely false, or "not yet known" because it depends
// on writer state or another condition/info that hasn't been reached yet.
type Trilean int

const (
	Unknown Trilean = iota
	False
	True
)

// Context is what a Condition's resolver callback is given to look at. It
// is implemented by the printer (package printer); package ir only
// declares the contract so that resolver authors (package condition, or a
// plugin) can depend on ir without creating an import cycle back into the
// engine that evaluates them.
type Context interface {
	// WriterInfo returns the writer's current position.
	WriterInfo() WriterInfo

	// ResolvedInfo returns the WriterInfo recorded for info, and whether the
	// printer has reached that Info yet. If it hasn't, the printer installs a
	// look-ahead save point against info's identity.
	ResolvedInfo(info *Info) (WriterInfo, bool)

	// ResolvedCondition returns the resolved value of cond, and whether that
	// value has been determined yet. If it hasn't, the printer installs a
	// look-ahead save point against cond's identity.
	ResolvedCondition(cond *Condition) (bool, bool)
}

// ConditionResolver decides a Condition's branch. It must be a pure
// function of ctx: SPEC_FULL.md §3 forbids mutating shared state from a
// resolver.
type ConditionResolver func(ctx Context) Trilean

// Branch is a lazy IR subsequence: the normalizer calls it (and caches the
// result) the first time the printer's cursor actually enters that branch,
// so a plugin can defer potentially expensive subtree construction for a
// branch that never gets taken.
type Branch func() []PrintItem

// Condition is a branching node: {identity, name, resolver, true/false
// branches}. Its resolver is either a callback (Resolve non-nil) or an
// alias for another condition's value (Alias non-nil) — never both.
type Condition struct {
	ID      identity.ID
	nameSym intern.Symbol

	Resolve ConditionResolver
	Alias   *Condition

	TrueBranch  Branch
	FalseBranch Branch

	// Populated lazily by the normalizer the first time each branch is
	// entered; see Materialize.
	trueContainer  *Container
	falseContainer *Container
}

// NewCondition allocates a fresh Condition with a resolver callback.
func NewCondition(alloc *identity.Allocator, name string, resolve ConditionResolver, onTrue, onFalse Branch) *Condition {
	return &Condition{
		ID:          alloc.Next(),
		nameSym:     intern.InternString(name),
		Resolve:     resolve,
		TrueBranch:  onTrue,
		FalseBranch: onFalse,
	}
}

// NewAliasCondition allocates a Condition whose value always mirrors
// another condition's resolved value.
func NewAliasCondition(alloc *identity.Allocator, name string, alias *Condition, onTrue, onFalse Branch) *Condition {
	return &Condition{
		ID:          alloc.Next(),
		nameSym:     intern.InternString(name),
		Alias:       alias,
		TrueBranch:  onTrue,
		FalseBranch: onFalse,
	}
}

// Name returns the Condition's debug name.
func (c *Condition) Name() string {
	return c.nameSym.String()
}

// Eval evaluates this condition's Trilean value against ctx, dispatching to
// Alias if this condition has no resolver of its own. Package printer calls
// this once per visit to the condition's Node; package ir never calls it
// itself, since evaluation requires a Context, which only the printer can
// supply.
func (c *Condition) Eval(ctx Context) Trilean {
	if c.Resolve != nil {
		return c.Resolve(ctx)
	}
	resolved, ok := ctx.ResolvedCondition(c.Alias)
	if !ok {
		return Unknown
	}
	if resolved {
		return True
	}
	return False
}
