// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package qemu provides utilities for composing and running QEMU system
// virtualization commands as needed by sandrun. It expects the required
// QEMU binary to be present on the system.
//
// Exactly three serial channels are wired. The first one is attached to
// the host's stdio and carries the guest kernel console and any
// interactive guest console. The second and third are write-only from the
// guest's point of view and are captured into host-side sink files. The
// guest program's stdout goes to the second channel, its exit code as a
// single integer line to the third.
package qemu
