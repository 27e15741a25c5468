// SPDX-License-Identifier: MIT

package meshio

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen indicates that a file could not be opened or created.
	ErrOpen = errors.New("meshio: cannot open file")

	// ErrFileFormat indicates malformed file content.
	ErrFileFormat = errors.New("meshio: file format error")
)

// formatError wraps ErrFileFormat with the file name and 1-based line number.
// line <= 0 omits the line.
func formatError(name string, line int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		return fmt.Errorf("%w: %s:%d: %s", ErrFileFormat, name, line, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrFileFormat, name, msg)
}

func openError(err error) error {
	return fmt.Errorf("%w: %w", ErrOpen, err)
}
