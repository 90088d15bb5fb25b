// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package condition implements the print engine's standard condition
// resolvers (SPEC_FULL.md §4.4): pure predicates over resolved infos and
// the writer's current position, used by plugins to author layout rules
// like "break this array literal across lines if its source span already
// was".
//
// Each constructor here returns an ir.ConditionResolver — a plain function
// value — rather than a boxed tagged-union struct, following the Design
// Notes' "Custom(boxed closure)" case as the uniform representation: in Go,
// a closure already is the cheap, allocation-free "common case" the spec's
// source language needed a tagged variant to get back to.
package condition

import "github.com/crosslang/printengine/ir"

// IsStartOfNewLine reports whether the writer sits at the first column a
// new line could start at (i.e. right after its ambient indent).
func IsStartOfNewLine() ir.ConditionResolver {
	return func(ctx ir.Context) ir.Trilean {
		info := ctx.WriterInfo()
		return trilean(info.ColumnNumber == info.LineStartColumnNumber)
	}
}

// IsHanging reports whether end (default: the writer's current position)
// sits at a deeper line-start indent level than start. It returns Unknown
// until start has been reached.
func IsHanging(start *ir.Info, end *ir.Info) ir.ConditionResolver {
	return func(ctx ir.Context) ir.Trilean {
		startInfo, ok := ctx.ResolvedInfo(start)
		if !ok {
			return ir.Unknown
		}

		endInfo := ctx.WriterInfo()
		if end != nil {
			resolved, ok := ctx.ResolvedInfo(end)
			if !ok {
				return ir.Unknown
			}
			endInfo = resolved
		}

		return trilean(endInfo.LineStartIndentLevel > startInfo.LineStartIndentLevel)
	}
}

// IsMultipleLines reports whether end's line number is greater than
// start's. If either info has not yet been resolved when the resolver
// runs, it returns defaultValue if one was supplied (still registering a
// look-ahead against the unresolved info so the condition is revisited once
// it resolves), or Unknown otherwise.
func IsMultipleLines(start, end *ir.Info, defaultValue ...bool) ir.ConditionResolver {
	return func(ctx ir.Context) ir.Trilean {
		startInfo, startOK := ctx.ResolvedInfo(start)
		endInfo, endOK := ctx.ResolvedInfo(end)
		if !startOK || !endOK {
			return unresolved(defaultValue)
		}
		return trilean(endInfo.LineNumber > startInfo.LineNumber)
	}
}

// AreInfoEqual reports whether start and end resolved to the identical
// line and column.
func AreInfoEqual(start, end *ir.Info, defaultValue ...bool) ir.ConditionResolver {
	return func(ctx ir.Context) ir.Trilean {
		startInfo, startOK := ctx.ResolvedInfo(start)
		endInfo, endOK := ctx.ResolvedInfo(end)
		if !startOK || !endOK {
			return unresolved(defaultValue)
		}
		return trilean(startInfo.LineNumber == endInfo.LineNumber &&
			startInfo.ColumnNumber == endInfo.ColumnNumber)
	}
}

func trilean(b bool) ir.Trilean {
	if b {
		return ir.True
	}
	return ir.False
}

func unresolved(defaultValue []bool) ir.Trilean {
	if len(defaultValue) == 0 {
		return ir.Unknown
	}
	return trilean(defaultValue[0])
}
