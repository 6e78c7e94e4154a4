// Copyright (c) 2025 Neomantra Corp

package bytesource

import "fmt"

var (
	// ErrTooShort is returned when the capture file is shorter than 2
	// bytes, the minimum needed to hold a single frame length prefix.
	ErrTooShort = fmt.Errorf("capture file is shorter than 2 bytes")

	// ErrIoError wraps an underlying os/syscall failure encountered while
	// opening, stat'ing, or mapping the capture file.
	ErrIoError = fmt.Errorf("byte source io error")
)

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrIoError, op, err)
}
