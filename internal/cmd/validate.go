// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"

	"github.com/aibor/sandrun/internal/sandbox"
)

// Validate checks the file parameters of the given [sandbox.Spec].
//
// Configuration issues must be caught here, before any launch attempt, so
// a misconfigured invocation never leaves a partial run behind.
func Validate(spec *sandbox.Spec) error {
	err := ValidateFilePath(spec.Kernel)
	if err != nil {
		return fmt.Errorf("kernel file: %w", err)
	}

	err = ValidateFilePath(spec.Payload)
	if err != nil {
		return fmt.Errorf("boot payload: %w", err)
	}

	return nil
}
