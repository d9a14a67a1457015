// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

import (
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// DiscoverKernel resolves the image of the kernel the host is currently
// running. The boot payload is built against the running kernel, so its
// image is the natural default for booting the guest.
func DiscoverKernel() (string, error) {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}

	return discoverKernel(os.DirFS("/"), unix.ByteSliceToString(uts.Release[:]))
}

func discoverKernel(fsys fs.FS, release string) (string, error) {
	candidates := []string{
		"boot/vmlinuz-" + release,
		"boot/vmlinux-" + release,
	}

	for _, candidate := range candidates {
		_, err := fs.Stat(fsys, candidate)
		if err == nil {
			return "/" + candidate, nil
		}
	}

	return "", fmt.Errorf("%w: release %s", ErrKernelNotFound, release)
}
