// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/crosslang/printengine/internal/tinyjson"
)

// flags holds the pflag-backed variables bound to rootCmd's persistent
// flags, mirroring the pointer-to-flag-variable convention the jarvis-term
// example's cmd.CommonFlags uses.
type flags struct {
	maxWidth    int
	indentWidth int
	useTabs     bool
	newLineKind string
	debug       bool
}

var f flags

var rootCmd = &cobra.Command{
	Use:           "printdemo",
	Short:         "Format a tinyjson document through the print engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	var pf *pflag.FlagSet = rootCmd.PersistentFlags()
	pf.IntVar(&f.maxWidth, "max-width", 80, "maximum line width before breaking")
	pf.IntVar(&f.indentWidth, "indent-width", 2, "columns per indent level")
	pf.BoolVar(&f.useTabs, "tabs", false, "indent with tabs instead of spaces")
	pf.StringVar(&f.newLineKind, "newline", "\n", `newline kind: "\n" or "\r\n"`)
	pf.BoolVar(&f.debug, "debug", false, "enable verbose zap logging")

	for _, name := range []string{"max-width", "indent-width", "tabs", "newline", "debug"} {
		if err := viper.BindPFlag(name, pf.Lookup(name)); err != nil {
			panic("printdemo: binding flag " + name + ": " + err.Error())
		}
	}

	rootCmd.AddCommand(formatCmd)
}

// initConfig layers an optional ~/.printdemo.yaml under the flags already
// bound above, the same flags-over-file-over-defaults shape grafana/agent
// uses for its own CLI config.
func initConfig() {
	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".printdemo")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "printdemo: reading config: %v\n", err)
		}
	}
}

// newLogger builds the zap logger the format command reports timing and
// engine errors through.
func newLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetBool("debug") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.DisableStacktrace = true
	}
	logger, err := cfg.Build()
	if err != nil {
		// zap itself failing to build is not recoverable; fall back to a
		// no-op logger rather than taking the whole CLI down over logging.
		return zap.NewNop()
	}
	return logger
}

// globalConfig reads the layered width/indent/tabs/newline settings back
// out of viper into the tinyjson Plugin API's GlobalConfig shape.
func globalConfig() tinyjson.GlobalConfig {
	return tinyjson.GlobalConfig{
		MaxWidth:    viper.GetInt("max-width"),
		IndentWidth: viper.GetInt("indent-width"),
		UseTabs:     viper.GetBool("tabs"),
		NewLineKind: viper.GetString("newline"),
	}
}
