// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

// MinMemory is the guest memory floor in MiB. It is sufficient to boot the
// guest kernel with an empty boot payload.
const MinMemory = 128

const mib = 1 << 20

// EstimateMemory maps the boot payload size in bytes to the guest memory
// size in MiB.
//
// The guest kernel refuses to boot if the initial ramdisk occupies 50% of
// RAM or more. The estimate therefore scales the payload by 5/2, rounds up
// to whole MiB and adds [MinMemory] on top. The result always strictly
// exceeds twice the payload size, never falls below [MinMemory] and is
// monotonic in the payload size.
func EstimateMemory(payloadSize int64) uint64 {
	if payloadSize <= 0 {
		return MinMemory
	}

	scaled := uint64(payloadSize) * 5 / 2

	return MinMemory + (scaled+mib-1)/mib
}
