// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Podward Contributors

// Package main is the entry point for the podward CLI.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitIndeterminate is the exit code when access state cannot be
// determined, distinct from plain failure so scripts can branch on it.
const exitIndeterminate = 2

func formatVersion(version, commit, date string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func run() int {
	cmd := NewRootCmd()
	cmd.Version = formatVersion(version, commit, date)
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errIndeterminate) {
			return exitIndeterminate
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
