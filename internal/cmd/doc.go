// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for sandrun. It handles
// flag parsing, local configuration, error handling, and the mapping of
// run outcomes to the outer process exit code.
package cmd
