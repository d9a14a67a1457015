// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ProcessSpec is the complete description of a single child process run:
// binary path, argument list and channel bindings. It is handed to an
// [ExecuteFunc] for actual execution.
type ProcessSpec struct {
	Path   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ExtraFiles are inherited by the child process in addition to stdio,
	// starting at file descriptor 3.
	ExtraFiles []*os.File
}

// ExecuteFunc runs the process described by the given [ProcessSpec] to
// completion. It blocks until the process exited or failed to start.
type ExecuteFunc func(ctx context.Context, proc *ProcessSpec) error

var _ ExecuteFunc = Execute

// Execute is the default [ExecuteFunc] based on [os/exec].
//
// The process is terminated when the given context is canceled.
func Execute(ctx context.Context, proc *ProcessSpec) error {
	cmd := exec.CommandContext(ctx, proc.Path, proc.Args...)
	cmd.Stdin = proc.Stdin
	cmd.Stdout = proc.Stdout
	cmd.Stderr = proc.Stderr
	cmd.ExtraFiles = proc.ExtraFiles

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	return nil
}
