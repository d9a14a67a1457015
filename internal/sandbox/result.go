// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

import (
	"fmt"
	"io"
	"os"

	"github.com/aibor/sandrun/internal/exitcode"
)

// ProtocolExitCode is reported by the outer process if the guest halted
// without writing a well-formed exit code to the status channel.
const ProtocolExitCode = 99

// StdoutResult selects the host's stdout as result destination.
const StdoutResult = "-"

// Decode interprets the captured channels of a completed run.
//
// The status sink must contain a single integer line. If it does not,
// [ErrNoExitCode] is returned and the captured output is discarded. A
// nonzero code is returned as [exitcode.Error] and the captured output is
// discarded as well, since a failed guest's output is not trusted to be
// complete. Only on code 0 the output sink is read, its carriage returns
// are stripped and the result is written to resultPath, or to stdout if
// resultPath is [StdoutResult].
func Decode(
	statusSink, outputSink, resultPath string,
	stdout io.Writer,
) error {
	rawStatus, err := os.ReadFile(statusSink)
	if err != nil {
		return fmt.Errorf("read status sink: %w", err)
	}

	code, ok := exitcode.Parse(rawStatus)
	if !ok {
		return fmt.Errorf("%w: status sink %s", ErrNoExitCode, statusSink)
	}

	if code != 0 {
		return exitcode.Error(code)
	}

	rawOutput, err := os.ReadFile(outputSink)
	if err != nil {
		return fmt.Errorf("read output sink: %w", err)
	}

	output := exitcode.StripCR(rawOutput)

	if resultPath == StdoutResult {
		_, err = stdout.Write(output)
		if err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		return nil
	}

	err = os.WriteFile(resultPath, output, 0o644)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
