// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package printer

import (
	"github.com/crosslang/printengine/ir"
	"github.com/crosslang/printengine/writer"
)

// savePoint is a snapshot the printer can restore to, rewinding both the
// writer's committed output and the cursor's position in lockstep
// (SPEC_FULL.md §4.2). It backs both kinds of save point the engine uses:
//
//   - a possible-newline save point, installed at a PossibleNewLine or a
//     fitting SpaceOrNewLine, consumed the moment a String or SpaceOrNewLine
//     overflows maxWidth and needs an earlier place to break;
//   - a look-ahead save point, installed while evaluating a Condition whose
//     resolver queried an Info or Condition that has not resolved yet,
//     consumed the moment that identity resolves.
//
// possibleNewLine nests the outer save point that was active when this one
// was captured, so restoring correctly reinstates it rather than losing it.
type savePoint struct {
	writerState       writer.State
	cursor            ir.Cursor
	newLineGroupDepth int
	possibleNewLine   *savePoint
}
