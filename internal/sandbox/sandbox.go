// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/aibor/sandrun/internal/qemu"
)

// Spec describes a single [Run].
type Spec struct {
	// Payload is the path to the prebuilt boot payload used as initial
	// ramdisk. It must contain an init at /init that runs the guest
	// program, writes its stdout to the output channel and its exit code
	// to the status channel.
	Payload string

	// Kernel is the path to the kernel image to boot. Usually resolved
	// with [DiscoverKernel].
	Kernel string

	// QemuExecutable overrides the default qemu-system binary.
	QemuExecutable string

	// Machine and CPU override the QEMU machine and CPU types.
	Machine string
	CPU     string

	// SMP is the number of guest CPUs. Zero leaves it to QEMU.
	SMP uint64

	// Memory is the guest memory size in MiB. Zero means the size is
	// estimated from the payload size with [EstimateMemory].
	Memory uint64

	// TransportType selects the serial transport flavor.
	TransportType qemu.TransportType

	NoKVM   bool
	Verbose bool

	// InitArgs are passed to the guest init program.
	InitArgs []string

	// OutputSink and StatusSink are the host files backing the captured
	// serial channels. Empty values are replaced with unique per-run
	// paths in the temp directory. The files are left on disk after the
	// run.
	OutputSink string
	StatusSink string

	// ResultPath is the final destination of the promoted output.
	// [StdoutResult] selects the host's stdout.
	ResultPath string

	// executeFunc substitutes the virtualization process executor in
	// tests. Nil selects the default os/exec based executor.
	executeFunc qemu.ExecuteFunc
}

// Run runs with the given [Spec] and blocks until the guest halted.
//
// It returns nil only if the guest explicitly reported exit code 0 and the
// captured output was promoted to the result destination. A guest-reported
// failure is returned as [exitcode.Error], a missing status report as
// [ErrNoExitCode]. Errors launching the virtualization process surface as
// [qemu.CommandError] before any decode is attempted.
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	info, err := os.Stat(spec.Payload)
	if err != nil {
		return fmt.Errorf("stat boot payload: %w", err)
	}

	memory := spec.Memory
	if memory == 0 {
		memory = EstimateMemory(info.Size())

		slog.Debug("Estimated guest memory",
			slog.Int64("payloadSize", info.Size()),
			slog.Uint64("memoryMiB", memory))
	}

	spec.ensureSinks()

	cmdSpec := qemu.CommandSpec{
		Executable:    spec.QemuExecutable,
		Kernel:        spec.Kernel,
		Initramfs:     spec.Payload,
		Machine:       spec.Machine,
		CPU:           spec.CPU,
		SMP:           spec.SMP,
		Memory:        memory,
		NoKVM:         spec.NoKVM,
		TransportType: spec.TransportType,
		OutputSink:    spec.OutputSink,
		StatusSink:    spec.StatusSink,
		InitArgs:      spec.InitArgs,
		Verbose:       spec.Verbose,
		ExecuteFunc:   spec.executeFunc,
	}

	err = cmdSpec.AddDefaults()
	if err != nil {
		return fmt.Errorf("qemu defaults: %w", err)
	}

	cmd, err := qemu.NewCommand(cmdSpec)
	if err != nil {
		return fmt.Errorf("build command: %w", err)
	}

	slog.Debug("QEMU command", slog.String("command", cmd.String()))

	err = cmd.Run(ctx, stdin, stdout, stderr)
	if err != nil {
		return fmt.Errorf("qemu: %w", err)
	}

	return Decode(spec.StatusSink, spec.OutputSink, spec.ResultPath, stdout)
}

// ensureSinks fills empty sink paths with unique per-run files, so
// concurrent invocations never share capture files.
func (s *Spec) ensureSinks() {
	if s.OutputSink != "" && s.StatusSink != "" {
		return
	}

	base := filepath.Join(os.TempDir(), "sandrun-"+uuid.NewString())

	if s.OutputSink == "" {
		s.OutputSink = base + ".out"
	}

	if s.StatusSink == "" {
		s.StatusSink = base + ".status"
	}
}
