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
	"strings"

	"golang.org/x/sync/errgroup"
)

// Command is a single QEMU command that can be run once.
type Command struct {
	executable string
	args       []string
	sinks      []string
	execute    ExecuteFunc
}

// NewCommand validates the given spec and compiles it into a [Command].
func NewCommand(spec CommandSpec) (*Command, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	args, err := BuildArgumentStrings(spec.arguments())
	if err != nil {
		return nil, err
	}

	execute := spec.ExecuteFunc
	if execute == nil {
		execute = Execute
	}

	return &Command{
		executable: spec.Executable,
		args:       args,
		sinks:      []string{spec.OutputSink, spec.StatusSink},
		execute:    execute,
	}, nil
}

// String implements [fmt.Stringer].
//
// It returns the command line as it would be executed.
func (c *Command) String() string {
	return strings.Join(append([]string{c.executable}, c.args...), " ")
}

// Args returns a copy of the compiled QEMU argument list.
func (c *Command) Args() []string {
	args := make([]string, len(c.args))
	copy(args, c.args)

	return args
}

// Run starts the QEMU process and blocks until it terminated.
//
// The host's stdio is attached to the guest's interactive console. The
// output and status channels are persisted into their sink files. Run
// returns a [CommandError] if the process could not be run. The content of
// the sink files is not interpreted here; decoding the captured status is
// the caller's concern.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	// Resolve the binary before touching any sink files, so a missing
	// QEMU installation fails without side effects.
	path, err := exec.LookPath(c.executable)
	if err != nil {
		return &CommandError{
			Err: fmt.Errorf("%w: %w", ErrBinaryNotFound, err),
		}
	}

	captures := make([]*capture, 0, len(c.sinks))
	extraFiles := make([]*os.File, 0, len(c.sinks))

	defer func() {
		for _, capt := range captures {
			capt.close()
		}
	}()

	var group errgroup.Group

	for _, sink := range c.sinks {
		capt, err := newCapture(sink)
		if err != nil {
			return &CommandError{
				Err: fmt.Errorf("capture %s: %w", sink, err),
			}
		}

		captures = append(captures, capt)
		extraFiles = append(extraFiles, capt.writePipe)

		group.Go(capt.run)
	}

	proc := &ProcessSpec{
		Path:       path,
		Args:       c.args,
		Stdin:      stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		ExtraFiles: extraFiles,
	}

	runErr := c.execute(ctx, proc)

	// Close the parent's copies of the write ends so the captures see EOF
	// once the child is gone.
	for _, capt := range captures {
		capt.closeWrite()
	}

	captureErr := group.Wait()

	if runErr != nil {
		return &CommandError{Err: runErr}
	}

	return captureErr
}
