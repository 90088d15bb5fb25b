// Copyright (c) 2022 Jonathan S. Shapiro. All rights reserved.
// Use of this source code is governed by terms that can be
// found in the LICENSE file.

// Command printdemo is a small host exercising the print engine against the
// toy tinyjson language (SPEC_FULL.md §6.1). It is demonstration and
// test-bed code, not a general-purpose formatter.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
