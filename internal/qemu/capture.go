// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// capture persists one write-only serial channel into a host-side sink
// file. The write end of its pipe is handed to the child process as an
// additional file descriptor, the read end is drained into the sink file
// until EOF.
type capture struct {
	path      string
	readPipe  *os.File
	writePipe *os.File
	sink      *os.File
}

// newCapture creates a new capture for the given sink path.
//
// Any pre-existing file at the sink path is removed first so a partial
// prior run cannot leak into the current one.
func newCapture(path string) (*capture, error) {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale sink: %w", err)
	}

	readPipe, writePipe, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("pipe: %w", err)
	}

	sink, err := os.Create(path)
	if err != nil {
		_ = readPipe.Close()
		_ = writePipe.Close()

		return nil, fmt.Errorf("create sink: %w", err)
	}

	return &capture{
		path:      path,
		readPipe:  readPipe,
		writePipe: writePipe,
		sink:      sink,
	}, nil
}

// run drains the read end of the pipe into the sink file. It blocks and
// returns once the last write end of the pipe is closed.
func (c *capture) run() error {
	_, err := io.Copy(c.sink, c.readPipe)
	if err != nil {
		return &CaptureError{Name: c.path, Err: err}
	}

	return nil
}

// closeWrite closes the parent's copy of the write end. Once the child
// process exited as well, run terminates.
func (c *capture) closeWrite() {
	_ = c.writePipe.Close()
}

// close closes all remaining file descriptors.
func (c *capture) close() {
	_ = c.writePipe.Close()
	_ = c.readPipe.Close()
	_ = c.sink.Close()
}
