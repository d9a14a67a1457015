// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrBinaryNotFound is returned if the QEMU binary cannot be resolved
	// on the host. It is a launch failure, the guest never ran.
	ErrBinaryNotFound = errors.New("qemu binary not found")
)

// ArgumentError indicates an issue with an input argument.
type ArgumentError struct {
	msg string
}

// Error implements the [error] interface.
func (e *ArgumentError) Error() string {
	return "argument error: " + e.msg
}

// Is implements the [errors.Is] interface.
func (*ArgumentError) Is(other error) bool {
	_, ok := other.(*ArgumentError)
	return ok
}

// CommandError wraps any error occurred while launching or running the
// virtualization process. The guest never reported a result when it is
// returned.
type CommandError struct {
	Err error
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "qemu command: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// CaptureError wraps any error occurring while persisting a serial channel
// into its sink file.
type CaptureError struct {
	Name string
	Err  error
}

// Error implements the [error] interface.
func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s: %v", e.Name, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CaptureError) Is(other error) bool {
	_, ok := other.(*CaptureError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CaptureError) Unwrap() error {
	return e.Err
}
