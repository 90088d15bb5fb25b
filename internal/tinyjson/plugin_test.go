// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package tinyjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslang/printengine/internal/tinyjson"
)

func TestShouldFormatFile(t *testing.T) {
	assert.True(t, tinyjson.ShouldFormatFile("doc.json"))
	assert.True(t, tinyjson.ShouldFormatFile("DOC.JSON"))
	assert.False(t, tinyjson.ShouldFormatFile("doc.txt"))
}

func TestParseFileIgnoreComment(t *testing.T) {
	items, ok, err := tinyjson.ParseFile("doc.json", "// tinyjson:ignore\n[1, 2]")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestParseFileSyntaxError(t *testing.T) {
	_, ok, err := tinyjson.ParseFile("doc.json", "[1, 2")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestParseFileOK(t *testing.T) {
	items, ok, err := tinyjson.ParseFile("doc.json", `[1, 2, 3]`)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, items)
}

func TestSetConfigLayering(t *testing.T) {
	global := tinyjson.GlobalConfig{MaxWidth: 80, IndentWidth: 2}
	width := 40
	local := tinyjson.PluginConfig{MaxWidth: &width}

	resolved, d := tinyjson.SetConfig(global, local)
	assert.True(t, d.Empty())
	assert.Equal(t, 40, resolved.MaxWidth)
	assert.Equal(t, 2, resolved.IndentWidth)
}

func TestSetConfigInvalidFallsBack(t *testing.T) {
	bad := -1
	resolved, d := tinyjson.SetConfig(tinyjson.GlobalConfig{}, tinyjson.PluginConfig{MaxWidth: &bad})
	assert.False(t, d.Empty())
	assert.Equal(t, 80, resolved.MaxWidth)
}
