// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

import "errors"

var (
	// ErrNoExitCode is returned if the status channel is empty or does not
	// contain a single integer after a run that otherwise launched. It
	// usually means the guest crashed before its init could report. It is
	// a guest-level failure, not a host fault, and maps to
	// [ProtocolExitCode].
	ErrNoExitCode = errors.New("guest did not report an exit code")

	// ErrKernelNotFound is returned if no kernel image could be discovered
	// for the running kernel release.
	ErrKernelNotFound = errors.New("kernel image not found")
)
