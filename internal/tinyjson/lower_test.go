// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package tinyjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslang/printengine/internal/tinyjson"
	"github.com/crosslang/printengine/printer"
)

func format(t *testing.T, src string, maxWidth int) string {
	t.Helper()
	v, err := tinyjson.Parse(src)
	require.NoError(t, err)

	out, err := printer.Print(tinyjson.Lower(v), printer.Options{
		MaxWidth:    maxWidth,
		IndentWidth: 2,
		IsTesting:   true,
	})
	require.NoError(t, err)
	return out
}

func TestLowerArrayInlineWhenShort(t *testing.T) {
	got := format(t, `[1, 2, 3]`, 80)
	assert.Equal(t, "[1, 2, 3]", got)
}

func TestLowerArrayBreaksWhenLong(t *testing.T) {
	got := format(t, `["alpha", "bravo", "charlie", "delta", "echo", "foxtrot"]`, 20)
	want := "[\n" +
		"  \"alpha\",\n" +
		"  \"bravo\",\n" +
		"  \"charlie\",\n" +
		"  \"delta\",\n" +
		"  \"echo\",\n" +
		"  \"foxtrot\"\n" +
		"]"
	assert.Equal(t, want, got)
}

func TestLowerObjectInlineWhenShort(t *testing.T) {
	got := format(t, `{"a": 1, "b": 2}`, 80)
	assert.Equal(t, `{"a": 1, "b": 2}`, got)
}

func TestLowerObjectBreaksWhenLong(t *testing.T) {
	got := format(t, `{"alpha": 1, "bravo": 2, "charlie": 3, "delta": 4}`, 20)
	want := "{\n" +
		"  \"alpha\": 1,\n" +
		"  \"bravo\": 2,\n" +
		"  \"charlie\": 3,\n" +
		"  \"delta\": 4\n" +
		"}"
	assert.Equal(t, want, got)
}

func TestLowerNestedArrayOfObjects(t *testing.T) {
	got := format(t, `[{"x": 1}, {"y": 2}]`, 80)
	assert.Equal(t, `[{"x": 1}, {"y": 2}]`, got)
}

func TestLowerEmptyCollections(t *testing.T) {
	assert.Equal(t, "[]", format(t, `[]`, 80))
	assert.Equal(t, "{}", format(t, `{}`, 80))
}
