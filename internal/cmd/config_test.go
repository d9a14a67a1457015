// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/sandrun/internal/cmd"
	"github.com/aibor/sandrun/internal/qemu"
	"github.com/aibor/sandrun/internal/sandbox"
)

func TestApplyLocalConfig(t *testing.T) {
	fsys := fstest.MapFS{
		".sandrun.yaml": &fstest.MapFile{
			Data: []byte(`
qemu-bin: qemu-system-x86_64
kernel: /boot/vmlinuz-test
machine: q35
cpu: max
memory: 512
smp: 4
nokvm: true
transport: pci
`),
		},
	}

	var spec sandbox.Spec

	err := cmd.ApplyLocalConfig(fsys, ".sandrun.yaml", &spec)
	require.NoError(t, err)

	assert.Equal(t, "qemu-system-x86_64", spec.QemuExecutable)
	assert.Equal(t, "/boot/vmlinuz-test", spec.Kernel)
	assert.Equal(t, "q35", spec.Machine)
	assert.Equal(t, "max", spec.CPU)
	assert.EqualValues(t, 512, spec.Memory)
	assert.EqualValues(t, 4, spec.SMP)
	assert.True(t, spec.NoKVM)
	assert.Equal(t, qemu.TransportTypePCI, spec.TransportType)
}

func TestApplyLocalConfigMissingFile(t *testing.T) {
	var spec sandbox.Spec

	err := cmd.ApplyLocalConfig(fstest.MapFS{}, ".sandrun.yaml", &spec)
	require.NoError(t, err)
	assert.Empty(t, spec.Kernel)
}

func TestApplyLocalConfigExpandsEnv(t *testing.T) {
	t.Setenv("SANDRUN_TEST_KERNEL", "/boot/vmlinuz-env")

	fsys := fstest.MapFS{
		".sandrun.yaml": &fstest.MapFile{
			Data: []byte("kernel: ${SANDRUN_TEST_KERNEL}\n"),
		},
	}

	var spec sandbox.Spec

	err := cmd.ApplyLocalConfig(fsys, ".sandrun.yaml", &spec)
	require.NoError(t, err)
	assert.Equal(t, "/boot/vmlinuz-env", spec.Kernel)
}

func TestApplyLocalConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "invalid yaml",
			data: "kernel: [\n",
		},
		{
			name: "invalid transport",
			data: "transport: token-ring\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				".sandrun.yaml": &fstest.MapFile{Data: []byte(tt.data)},
			}

			var spec sandbox.Spec

			err := cmd.ApplyLocalConfig(fsys, ".sandrun.yaml", &spec)
			assert.Error(t, err)
		})
	}
}

func TestEnvArgs(t *testing.T) {
	t.Setenv("SANDRUN_ARGS", "-nokvm  -memory 256")

	assert.Equal(t, []string{"-nokvm", "-memory", "256"}, cmd.EnvArgs())
}

func TestEnvArgsEmpty(t *testing.T) {
	t.Setenv("SANDRUN_ARGS", "")

	assert.Empty(t, cmd.EnvArgs())
}
