// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Package writer implements the print engine's line buffer: an append-only
// sink that knows its own column, line number, indentation level, and
// "expect newline" state, and that the printer can snapshot and restore
// wholesale for backtracking (SPEC_FULL.md §4.1).
//
// It plays the role the teacher package's IndentedWriter plays for a
// plain io.Writer — prefixing each fresh line with the active indent — but
// a fork-on-Indent, immutable-view design doesn't give the printer the
// mutable indent level and the cheap whole-state snapshot it needs for
// backtracking, so this package tracks indent level as ordinary mutable
// state on one Writer value instead.
package writer

import (
	"strings"

	"github.com/crosslang/printengine/ir"
)

// Options configures a Writer for the lifetime of one Print call.
type Options struct {
	IndentWidth int
	UseTabs     bool
	NewLineKind string // "\n" or "\r\n"
	IsTesting   bool
}

// Writer is the append-only output buffer described in SPEC_FULL.md §4.1.
// It is not safe for concurrent use.
type Writer struct {
	opts Options

	buf []byte

	lineNumber            int
	columnNumber          int
	indentLevel           int
	lineStartIndentLevel  int
	ignoreIndentDepth     int
	expectNewLine         bool

	onNewLineCB func()
}

// New returns a Writer ready to accept output, starting at line 1, column 0.
func New(opts Options) *Writer {
	if opts.NewLineKind == "" {
		opts.NewLineKind = "\n"
	}
	if opts.IndentWidth <= 0 {
		opts.IndentWidth = 1
	}
	return &Writer{opts: opts, lineNumber: 1}
}

// String returns everything committed to the writer so far.
func (w *Writer) String() string {
	return string(w.buf)
}

// LineNumber returns the current 1-based line number.
func (w *Writer) LineNumber() int { return w.lineNumber }

// LineColumn returns the current 0-based column.
func (w *Writer) LineColumn() int { return w.columnNumber }

// IndentationLevel returns the current indent level.
func (w *Writer) IndentationLevel() int { return w.indentLevel }

// IgnoreIndentDepth returns the current StartIgnoringIndent nesting depth.
func (w *Writer) IgnoreIndentDepth() int { return w.ignoreIndentDepth }

// LineStartIndentLevel returns the indent level that was active when the
// current line began.
func (w *Writer) LineStartIndentLevel() int { return w.lineStartIndentLevel }

// LineStartColumnNumber returns IndentWidth * LineStartIndentLevel.
func (w *Writer) LineStartColumnNumber() int {
	return w.opts.IndentWidth * w.lineStartIndentLevel
}

// Info returns the writer's current position as an ir.WriterInfo, the form
// conditions and resolved infos are expressed in.
func (w *Writer) Info() ir.WriterInfo {
	return ir.WriterInfo{
		LineNumber:            w.lineNumber,
		ColumnNumber:          w.columnNumber,
		IndentLevel:           w.indentLevel,
		LineStartIndentLevel:  w.lineStartIndentLevel,
		LineStartColumnNumber: w.LineStartColumnNumber(),
	}
}

func (w *Writer) indentUnit() string {
	if w.opts.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", w.opts.IndentWidth)
}

// beforeContent forces a pending ExpectNewLine and prepends the ambient
// indent prefix if the writer sits at column zero with indentation active.
// Every operation that appends visible text goes through this first.
func (w *Writer) beforeContent() {
	if w.expectNewLine {
		w.expectNewLine = false
		w.commitNewLine()
	}
	if w.columnNumber == 0 && w.indentLevel > 0 && w.ignoreIndentDepth == 0 {
		prefix := strings.Repeat(w.indentUnit(), w.indentLevel)
		w.buf = append(w.buf, prefix...)
		w.columnNumber += w.opts.IndentWidth * w.indentLevel
	}
}

// Write appends text containing no newline or tab. If IsTesting, a
// forbidden character panics immediately rather than silently corrupting
// line/column accounting.
func (w *Writer) Write(text string) {
	if w.opts.IsTesting && strings.ContainsAny(text, "\n\t") {
		panic("writer: String item contains a forbidden newline or tab character")
	}
	w.beforeContent()
	w.buf = append(w.buf, text...)
	w.columnNumber += len(text)
}

// WriteRaw appends text verbatim, including any embedded newlines, without
// reflowing it and without injecting indentation after an internal
// newline — only the very first character of text (if at column zero)
// receives the ambient indent prefix. Internal newlines still notify the
// onNewLine subscriber and reset line-start accounting, because they are
// real, committed newlines as far as save points are concerned. Each
// embedded '\n' is itself replaced by the configured NewLineKind (via
// commitNewLine), so a RawString is portable between "\n" and "\r\n" mode
// like any other source of a committed newline.
func (w *Writer) WriteRaw(text string) {
	w.beforeContent()
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			w.buf = append(w.buf, text[start:i]...)
			start = i + 1
			w.commitNewLine()
		}
	}
	rest := text[start:]
	w.buf = append(w.buf, rest...)
	w.columnNumber += len(rest)
}

// Space appends a single literal space.
func (w *Writer) Space() {
	w.beforeContent()
	w.buf = append(w.buf, ' ')
	w.columnNumber++
}

// Tab appends a single tab character. Per SPEC_FULL.md §4.1's numeric
// rule, a tab advances the column by IndentWidth (a logical width), not by
// one.
func (w *Writer) Tab() {
	w.beforeContent()
	w.buf = append(w.buf, '\t')
	w.columnNumber += w.opts.IndentWidth
}

// SingleIndent emits one indent unit unconditionally, obeying the same
// column-zero ambient-prefix rule as Write.
func (w *Writer) SingleIndent() {
	w.beforeContent()
	w.buf = append(w.buf, w.indentUnit()...)
	w.columnNumber += w.opts.IndentWidth
}

// NewLine commits the configured newline kind.
func (w *Writer) NewLine() {
	w.expectNewLine = false
	w.commitNewLine()
}

// commitNewLine appends the newline bytes and updates line/column/line-start
// bookkeeping, notifying the onNewLine subscriber. Used directly by NewLine
// and indirectly by beforeContent (for a pending ExpectNewLine) and
// WriteRaw (for each embedded newline).
func (w *Writer) commitNewLine() {
	w.buf = append(w.buf, w.opts.NewLineKind...)
	w.lineNumber++
	w.columnNumber = 0
	w.lineStartIndentLevel = w.indentLevel
	if w.onNewLineCB != nil {
		w.onNewLineCB()
	}
}

// MarkExpectNewLine sets a flag: the next Write, Space, Tab or SingleIndent
// call forces a newline first.
func (w *Writer) MarkExpectNewLine() {
	w.expectNewLine = true
}

// StartIndent increases the indent level by one.
func (w *Writer) StartIndent() {
	w.indentLevel++
}

// FinishIndent decreases the indent level by one. An indent level that
// would go negative is a fatal logic error — an IR shape bug, not a
// recoverable condition — so it panics rather than clamping silently.
func (w *Writer) FinishIndent() {
	if w.indentLevel == 0 {
		panic("writer: FinishIndent with no matching StartIndent (indent underflow)")
	}
	w.indentLevel--
}

// StartIgnoringIndent increases the ignore-indent depth by one; while it is
// greater than zero, no ambient indent prefix is written at column zero.
func (w *Writer) StartIgnoringIndent() {
	w.ignoreIndentDepth++
}

// FinishIgnoringIndent decreases the ignore-indent depth by one.
func (w *Writer) FinishIgnoringIndent() {
	if w.ignoreIndentDepth == 0 {
		panic("writer: FinishIgnoringIndent with no matching StartIgnoringIndent")
	}
	w.ignoreIndentDepth--
}

// OnNewLine registers the single subscriber notified whenever a newline is
// committed, replacing any previously registered callback. The printer
// uses this to retire a stale possible-newline save point the moment a
// newline makes it moot.
func (w *Writer) OnNewLine(cb func()) {
	w.onNewLineCB = cb
}

// State is an opaque snapshot of every mutable Writer field, including the
// length of committed output. Restoring a State truncates all output
// appended since the snapshot was taken.
type State struct {
	bufLen                int
	lineNumber            int
	columnNumber          int
	indentLevel           int
	lineStartIndentLevel  int
	ignoreIndentDepth     int
	expectNewLine         bool
}

// GetState captures the writer's current mutable state.
func (w *Writer) GetState() State {
	return State{
		bufLen:               len(w.buf),
		lineNumber:           w.lineNumber,
		columnNumber:         w.columnNumber,
		indentLevel:          w.indentLevel,
		lineStartIndentLevel: w.lineStartIndentLevel,
		ignoreIndentDepth:    w.ignoreIndentDepth,
		expectNewLine:        w.expectNewLine,
	}
}

// SetState restores a previously captured State, truncating any output
// appended since it was taken. The onNewLine subscriber is not invoked by a
// restore: no newline is being committed, the writer is simply rewinding.
func (w *Writer) SetState(s State) {
	w.buf = w.buf[:s.bufLen]
	w.lineNumber = s.lineNumber
	w.columnNumber = s.columnNumber
	w.indentLevel = s.indentLevel
	w.lineStartIndentLevel = s.lineStartIndentLevel
	w.ignoreIndentDepth = s.ignoreIndentDepth
	w.expectNewLine = s.expectNewLine
}
