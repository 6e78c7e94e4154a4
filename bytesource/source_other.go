// Copyright (c) 2025 Neomantra Corp

//go:build !unix

package bytesource

import (
	"io"
	"os"
)

// openMapped falls back to a single full read for platforms without an
// mmap syscall wired in.
func openMapped(f *os.File, size int64) (*Source, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, ioError("read", err)
	}
	s := &Source{path: f.Name(), data: data}
	s.closer = func() error { return nil }
	return s, nil
}
