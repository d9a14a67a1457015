// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/sandrun/internal/exitcode"
	"github.com/aibor/sandrun/internal/sandbox"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func handleParseArgsError(err error) int {
	// ErrHelp is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// Parse already prints errors, so we just exit without logging again.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	if err == nil {
		return 0
	}

	// The guest halted without reporting a status. Report the fixed
	// sentinel code so the caller can tell this apart from a guest
	// reported failure.
	if errors.Is(err, sandbox.ErrNoExitCode) {
		slog.Warn("Guest halted without reporting an exit code",
			slog.Any("error", err))

		return sandbox.ProtocolExitCode
	}

	// Do not log in case the guest ran and properly communicated a
	// non-zero exit code. That is an expected outcome.
	if code, ok := exitcode.From(err); ok {
		return code
	}

	slog.Error(err.Error())

	return -1
}

func run(ctx context.Context, spec *sandbox.Spec, cfg IO) error {
	if spec.Kernel == "" {
		kernel, err := sandbox.DiscoverKernel()
		if err != nil {
			return err
		}

		spec.Kernel = kernel

		slog.Debug("Discovered kernel image",
			slog.String("path", spec.Kernel))
	}

	err := Validate(spec)
	if err != nil {
		return err
	}

	return sandbox.Run(ctx, spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)
}

// Run is the main entry point for the CLI command.
//
// The returned value is the outer process exit code: the guest's exit code
// for a completed run, [sandbox.ProtocolExitCode] if the guest did not
// report one, -1 for configuration and launch failures.
func Run(ctx context.Context, name string, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	spec := &sandbox.Spec{
		ResultPath: sandbox.StdoutResult,
	}

	err := ApplyLocalConfig(os.DirFS("."), localConfigFile, spec)
	if err != nil {
		slog.Error("Failed to read local config", slog.Any("error", err))
		return -1
	}

	flags := NewFlags(name, spec, cfg.Stderr)

	err = flags.Parse(append(EnvArgs(), args...))
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.Debug())

	if flags.Version() {
		err := flags.printVersionInformation()
		if err != nil {
			slog.Error(err.Error())
			return -1
		}

		return 0
	}

	return handleRunError(run(ctx, spec, cfg))
}
