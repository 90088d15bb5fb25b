// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crosslang/printengine/indentedwriter"
	"github.com/crosslang/printengine/internal/tinyjson"
	"github.com/crosslang/printengine/printer"
)

var formatCmd = &cobra.Command{
	Use:   "format <file.json>",
	Short: "Format a tinyjson document and print the result to stdout",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "printdemo: reading %s", path)
	}

	if !tinyjson.ShouldFormatFile(path) {
		logger.Info("skipping file, not a recognized extension", zap.String("path", path))
		return nil
	}

	items, ok, err := tinyjson.ParseFile(path, string(text))
	if err != nil {
		logger.Error("parse failed", zap.String("path", path), zap.Error(err))
		return err
	}
	if !ok {
		logger.Info("skipping file, opted out via ignore comment", zap.String("path", path))
		return nil
	}

	resolved, diags := tinyjson.SetConfig(globalConfig(), tinyjson.PluginConfig{})
	if !diags.Empty() {
		logger.Warn("config diagnostics", zap.String("path", path))
		section := indentedwriter.IndentedWriterOn(cmd.ErrOrStderr()).Section("config diagnostics:")
		section.Print(diags.String())
	}

	start := time.Now()
	out, err := printer.PrintItems(items, resolved)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("engine error", zap.String("path", path), zap.Error(err), zap.Duration("elapsed", elapsed))
		return err
	}

	logger.Info("formatted", zap.String("path", path), zap.Duration("elapsed", elapsed))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
