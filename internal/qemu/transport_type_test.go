// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aibor/sandrun/internal/qemu"
)

func TestTransportTypeMarshalText(t *testing.T) {
	tests := []struct {
		name          string
		transportType qemu.TransportType
		expected      string
		expectedErr   error
	}{
		{
			name:          "isa",
			transportType: qemu.TransportTypeISA,
			expected:      "isa",
		},
		{
			name:          "pci",
			transportType: qemu.TransportTypePCI,
			expected:      "pci",
		},
		{
			name:          "mmio",
			transportType: qemu.TransportTypeMMIO,
			expected:      "mmio",
		},
		{
			name:          "empty",
			transportType: qemu.TransportType(""),
			expectedErr:   qemu.ErrTransportTypeInvalid,
		},
		{
			name:          "unknown",
			transportType: qemu.TransportType("virtio-9p"),
			expectedErr:   qemu.ErrTransportTypeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.transportType.MarshalText()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(text))
		})
	}
}

func TestTransportTypeUnmarshalText(t *testing.T) {
	var transportType qemu.TransportType

	require.NoError(t, transportType.UnmarshalText([]byte("mmio")))
	assert.Equal(t, qemu.TransportTypeMMIO, transportType)

	err := transportType.UnmarshalText([]byte("bogus"))
	assert.ErrorIs(t, err, qemu.ErrTransportTypeInvalid)
	// Value is untouched on error.
	assert.Equal(t, qemu.TransportTypeMMIO, transportType)
}

func TestTransportTypeConsoleDeviceName(t *testing.T) {
	isa := qemu.TransportTypeISA
	assert.Equal(t, "ttyS0", isa.ConsoleDeviceName(0))
	assert.Equal(t, "ttyS2", isa.ConsoleDeviceName(2))

	mmio := qemu.TransportTypeMMIO
	assert.Equal(t, "hvc0", mmio.ConsoleDeviceName(0))
	assert.Equal(t, "hvc1", mmio.ConsoleDeviceName(1))
}
