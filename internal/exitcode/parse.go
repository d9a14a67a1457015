// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"bytes"
	"strconv"
)

// Parse parses the raw status channel content.
//
// The expected content is a single integer in ASCII notation, optionally
// followed by line ending characters. Carriage returns introduced by the
// serial transport are stripped anywhere in the input. Returns the exit
// code and whether the input was well-formed. Empty input is not
// well-formed.
func Parse(raw []byte) (int, bool) {
	normalized := StripCR(raw)
	normalized = bytes.TrimRight(normalized, "\n")

	if len(normalized) == 0 {
		return 0, false
	}

	exitCode, err := strconv.Atoi(string(normalized))
	if err != nil {
		return 0, false
	}

	return exitCode, true
}

// StripCR removes all carriage return characters from the given input.
//
// Stripping is idempotent, CR-free input is returned unchanged.
func StripCR(raw []byte) []byte {
	if !bytes.ContainsRune(raw, '\r') {
		return raw
	}

	return bytes.ReplaceAll(raw, []byte{'\r'}, nil)
}
