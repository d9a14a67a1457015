// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package sandbox runs a prebuilt boot payload in a short lived QEMU guest
// and recovers the guest program's stdout and exit status from outside the
// machine, without any network or shared file system channel.
//
// A run flows strictly forward: the guest memory size is estimated from
// the payload size, the QEMU process is launched with a fixed three
// channel serial topology and awaited, then the captured status channel is
// decoded and the captured output is promoted only if the guest reported
// exit code 0.
package sandbox
