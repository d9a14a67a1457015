// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

// filePathValue is a [flag.Value] that resolves the given path to an
// absolute path when set.
type filePathValue struct {
	path *string
}

func (v filePathValue) String() string {
	if v.path == nil {
		return ""
	}

	return *v.path
}

func (v filePathValue) Set(s string) error {
	path, err := AbsoluteFilePath(s)
	if err != nil {
		return err
	}

	*v.path = path

	return nil
}

// resultPathValue is like [filePathValue] but passes "-" through
// unchanged, selecting stdout as result destination.
type resultPathValue struct {
	path *string
}

func (v resultPathValue) String() string {
	if v.path == nil {
		return ""
	}

	return *v.path
}

func (v resultPathValue) Set(s string) error {
	if s == "-" {
		*v.path = s
		return nil
	}

	path, err := AbsoluteFilePath(s)
	if err != nil {
		return err
	}

	*v.path = path

	return nil
}

// AbsoluteFilePath resolves the given path to an absolute path. Empty
// paths are rejected.
func AbsoluteFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}

// ValidateFilePath checks that the given path points to an existing
// regular file.
func ValidateFilePath(name string) error {
	stat, err := os.Stat(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}
