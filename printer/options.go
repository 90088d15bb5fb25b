// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package printer implements the print engine's driver: it walks a
// normalized ir.Container depth-first, emits through package writer,
// resolves conditions, and performs the save-point backtracking described
// in SPEC_FULL.md §4.2.
package printer

// Options configures one Print call. It is the Go realization of
// SPEC_FULL.md §6's `options` record.
type Options struct {
	// MaxWidth is the target line width; must be >= 1.
	MaxWidth int
	// IndentWidth is the number of columns one indent level occupies; must be >= 1.
	IndentWidth int
	// UseTabs selects tab characters over spaces for indentation.
	UseTabs bool
	// NewLineKind is "\n" or "\r\n"; defaults to "\n" if empty.
	NewLineKind string
	// IsTesting enables the writer's forbidden-character validation.
	IsTesting bool
}
