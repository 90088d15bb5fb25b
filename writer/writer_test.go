// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslang/printengine/writer"
)

func TestWriteAndSpace(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.Write("foo")
	w.Space()
	w.Write("bar")
	assert.Equal(t, "foo bar", w.String())
	assert.Equal(t, 7, w.LineColumn())
	assert.Equal(t, 1, w.LineNumber())
}

func TestWriteForbiddenCharacterPanicsWhenTesting(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2, IsTesting: true})
	assert.Panics(t, func() { w.Write("a\nb") })
}

func TestIndentPrefixAppliedAtColumnZero(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.StartIndent()
	w.NewLine()
	w.Write("x")
	assert.Equal(t, "\n  x", w.String())
}

func TestFinishIndentUnderflowPanics(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	assert.Panics(t, func() { w.FinishIndent() })
}

func TestFinishIgnoringIndentUnderflowPanics(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	assert.Panics(t, func() { w.FinishIgnoringIndent() })
}

func TestIgnoringIndentSuppressesPrefixAtColumnZero(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.StartIndent()
	w.NewLine()
	w.StartIgnoringIndent()
	w.Write("x")
	w.FinishIgnoringIndent()
	w.NewLine()
	w.Write("y")
	assert.Equal(t, "\nx\n  y", w.String())
}

// WriteRaw must not double-emit the newline embedded in its argument: one
// '\n' in, one committed newline out.
func TestWriteRawEmitsExactlyOneNewLinePerEmbedded(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.WriteRaw("a\nb\nc")
	assert.Equal(t, "a\nb\nc", w.String())
	assert.Equal(t, 3, w.LineNumber())
	assert.Equal(t, 1, w.LineColumn())
}

func TestWriteRawHonorsNewLineKind(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2, NewLineKind: "\r\n"})
	w.WriteRaw("a\nb")
	assert.Equal(t, "a\r\nb", w.String())
}

func TestTabAdvancesByIndentWidth(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 4})
	w.Tab()
	assert.Equal(t, 4, w.LineColumn())
}

func TestExpectNewLineForcesBreakBeforeNextContent(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.Write("x")
	w.MarkExpectNewLine()
	w.Write("y")
	assert.Equal(t, "x\ny", w.String())
}

func TestStateRoundTripTruncatesOutput(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	w.Write("abc")
	snap := w.GetState()
	w.Write("def")
	require.Equal(t, "abcdef", w.String())

	w.SetState(snap)
	assert.Equal(t, "abc", w.String())
	assert.Equal(t, 3, w.LineColumn())
}

func TestOnNewLineCallbackFiresOnCommittedNewLine(t *testing.T) {
	w := writer.New(writer.Options{IndentWidth: 2})
	calls := 0
	w.OnNewLine(func() { calls++ })
	w.NewLine()
	w.WriteRaw("a\nb")
	assert.Equal(t, 2, calls)
}
