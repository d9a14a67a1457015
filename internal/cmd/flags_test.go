// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/sandrun/internal/cmd"
	"github.com/aibor/sandrun/internal/qemu"
	"github.com/aibor/sandrun/internal/sandbox"
)

func parseFlags(t *testing.T, args []string) (*sandbox.Spec, error) {
	t.Helper()

	spec := &sandbox.Spec{
		ResultPath: sandbox.StdoutResult,
	}

	flags := cmd.NewFlags("sandrun", spec, io.Discard)

	return spec, flags.Parse(args)
}

func TestFlagsParse(t *testing.T) {
	spec, err := parseFlags(t, []string{
		"-qemu-bin", "qemu-system-x86_64",
		"-kernel", "/boot/vmlinuz-test",
		"-machine", "q35",
		"-cpu", "max",
		"-memory", "256",
		"-smp", "2",
		"-nokvm",
		"-transport", "mmio",
		"-verbose",
		"payload.img",
		"-initflag", "initvalue",
	})
	require.NoError(t, err)

	assert.Equal(t, "qemu-system-x86_64", spec.QemuExecutable)
	assert.Equal(t, "/boot/vmlinuz-test", spec.Kernel)
	assert.Equal(t, "q35", spec.Machine)
	assert.Equal(t, "max", spec.CPU)
	assert.EqualValues(t, 256, spec.Memory)
	assert.EqualValues(t, 2, spec.SMP)
	assert.True(t, spec.NoKVM)
	assert.True(t, spec.Verbose)
	assert.Equal(t, qemu.TransportTypeMMIO, spec.TransportType)

	assert.True(t, filepath.IsAbs(spec.Payload))
	assert.Equal(t, "payload.img", filepath.Base(spec.Payload))
	assert.Equal(t, []string{"-initflag", "initvalue"}, spec.InitArgs)
}

func TestFlagsParseDefaults(t *testing.T) {
	spec, err := parseFlags(t, []string{"payload.img"})
	require.NoError(t, err)

	assert.Empty(t, spec.Kernel)
	assert.Zero(t, spec.Memory)
	assert.Empty(t, spec.InitArgs)
	assert.Equal(t, sandbox.StdoutResult, spec.ResultPath)
}

func TestFlagsParseMemoryZero(t *testing.T) {
	// Explicit zero restores memory estimation, even if a config file set
	// a fixed value before.
	spec, err := parseFlags(t, []string{"-memory", "0", "payload.img"})
	require.NoError(t, err)
	assert.Zero(t, spec.Memory)
}

func TestFlagsParseOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		spec, err := parseFlags(t, []string{"-output", "-", "payload.img"})
		require.NoError(t, err)
		assert.Equal(t, sandbox.StdoutResult, spec.ResultPath)
	})

	t.Run("file path is made absolute", func(t *testing.T) {
		spec, err := parseFlags(t, []string{
			"-output", "result.txt", "payload.img",
		})
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(spec.ResultPath))
		assert.Equal(t, "result.txt", filepath.Base(spec.ResultPath))
	})
}

func TestFlagsParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			name:        "no positional args",
			args:        []string{},
			expectedErr: cmd.ErrNoBootPayload,
		},
		{
			name: "memory below floor",
			args: []string{"-memory", "16", "payload.img"},
			// flag does not wrap Set errors, so only the generic parse
			// error is visible.
			expectedErr: &cmd.ParseArgsError{},
		},
		{
			name:        "smp above limit",
			args:        []string{"-smp", "1024", "payload.img"},
			expectedErr: &cmd.ParseArgsError{},
		},
		{
			name:        "invalid transport",
			args:        []string{"-transport", "carrier-pigeon", "payload.img"},
			expectedErr: &cmd.ParseArgsError{},
		},
		{
			name:        "help",
			args:        []string{"-h"},
			expectedErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(t, tt.args)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFlagsVersion(t *testing.T) {
	spec := &sandbox.Spec{}
	flags := cmd.NewFlags("sandrun", spec, io.Discard)

	require.NoError(t, flags.Parse([]string{"-version"}))
	assert.True(t, flags.Version())
}
