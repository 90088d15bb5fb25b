// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package tinyjson

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/crosslang/printengine/diag"
	"github.com/crosslang/printengine/ir"
	"github.com/crosslang/printengine/position"
	"github.com/crosslang/printengine/printer"
)

// ignoreComment is the marker a document's first line can carry to opt out
// of formatting, mirroring the "skip file via ignore-comment" convention
// SPEC_FULL.md §6 describes for a real plugin's ParseFile.
const ignoreComment = "// tinyjson:ignore"

// ShouldFormatFile is this demo's Plugin API ShouldFormatFile: a cheap,
// content-blind filter the host runs before bothering to read a file at
// all. The heavier ignore-comment check lives in ParseFile, since it needs
// the file's text.
func ShouldFormatFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".json")
}

// ParseFile is this demo's Plugin API ParseFile. It returns the lowered
// print items and ok=true, or ok=false with a nil error if text opts out via
// ignoreComment, or a non-nil error if text is not valid tinyjson.
func ParseFile(path, text string) (items []ir.PrintItem, ok bool, err error) {
	if strings.HasPrefix(strings.TrimSpace(text), ignoreComment) {
		return nil, false, nil
	}

	v, err := Parse(text)
	if err != nil {
		return nil, false, errors.Wrapf(err, "tinyjson: parsing %s", path)
	}
	return Items(v), true, nil
}

// GlobalConfig is the host-wide layout defaults, the "globalConfig" half of
// the Plugin API's SetConfig (SPEC_FULL.md §6). A zero field means "no
// opinion"; PluginConfig's corresponding pointer field, when set, always
// wins.
type GlobalConfig struct {
	MaxWidth    int
	IndentWidth int
	UseTabs     bool
	NewLineKind string
}

// PluginConfig is this plugin's own overrides: a nil field defers to
// GlobalConfig, a non-nil one overrides it. cmd/printdemo carries its flags
// in GlobalConfig and passes an empty PluginConfig.
type PluginConfig struct {
	MaxWidth    *int
	IndentWidth *int
	UseTabs     *bool
	NewLineKind *string
}

// configPos stands in for the position a real plugin's config file or flag
// parser would attach to a diagnostic; this demo has no config file
// location worth naming, so every diagnostic points at the same synthetic
// position.
var configPos = position.Pos("<config>", 0, 0)

// SetConfig is this demo's Plugin API SetConfig: it layers local over
// global and validates the result, returning diagnostics rather than an
// error so the caller can decide whether a warning (falling back to a
// default) should still let formatting proceed.
func SetConfig(global GlobalConfig, local PluginConfig) (printer.Options, diag.Diags) {
	d := diag.New()

	resolved := printer.Options{
		MaxWidth:    global.MaxWidth,
		IndentWidth: global.IndentWidth,
		UseTabs:     global.UseTabs,
		NewLineKind: global.NewLineKind,
	}
	if local.MaxWidth != nil {
		resolved.MaxWidth = *local.MaxWidth
	}
	if local.IndentWidth != nil {
		resolved.IndentWidth = *local.IndentWidth
	}
	if local.UseTabs != nil {
		resolved.UseTabs = *local.UseTabs
	}
	if local.NewLineKind != nil {
		resolved.NewLineKind = *local.NewLineKind
	}

	if resolved.MaxWidth <= 0 {
		d.AddWarn(configPos, "maxWidth must be positive, falling back to 80")
		resolved.MaxWidth = 80
	}
	if resolved.IndentWidth <= 0 {
		d.AddWarn(configPos, "indentWidth must be positive, falling back to 2")
		resolved.IndentWidth = 2
	}
	if resolved.NewLineKind != "" && resolved.NewLineKind != "\n" && resolved.NewLineKind != "\r\n" {
		d.AddWarn(configPos, "newLineKind must be \\n or \\r\\n, falling back to \\n")
		resolved.NewLineKind = "\n"
	}

	return resolved, d
}
