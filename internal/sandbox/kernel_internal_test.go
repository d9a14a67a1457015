// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sandbox

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverKernel(t *testing.T) {
	const release = "6.10.4-test"

	tests := []struct {
		name        string
		fsys        fstest.MapFS
		expected    string
		expectedErr error
	}{
		{
			name: "vmlinuz",
			fsys: fstest.MapFS{
				"boot/vmlinuz-" + release: &fstest.MapFile{},
			},
			expected: "/boot/vmlinuz-" + release,
		},
		{
			name: "vmlinux fallback",
			fsys: fstest.MapFS{
				"boot/vmlinux-" + release: &fstest.MapFile{},
			},
			expected: "/boot/vmlinux-" + release,
		},
		{
			name: "vmlinuz preferred over vmlinux",
			fsys: fstest.MapFS{
				"boot/vmlinuz-" + release: &fstest.MapFile{},
				"boot/vmlinux-" + release: &fstest.MapFile{},
			},
			expected: "/boot/vmlinuz-" + release,
		},
		{
			name: "other release only",
			fsys: fstest.MapFS{
				"boot/vmlinuz-5.4.0": &fstest.MapFile{},
			},
			expectedErr: ErrKernelNotFound,
		},
		{
			name:        "empty",
			fsys:        fstest.MapFS{},
			expectedErr: ErrKernelNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := discoverKernel(tt.fsys, release)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, path)
		})
	}
}
