// Copyright (c) 2025 Neomantra Corp

// Package bytesource opens a capture file and exposes its contents as a
// single borrowed byte slice, backed by an mmap on platforms that support
// it and by a plain read otherwise. Nothing above this package ever copies
// the mapped bytes; frame and message decoders slice directly into the
// returned buffer.
package bytesource

import (
	"os"
)

// Source is a memory-mapped (or read-in) capture file. Callers must call
// Close when done to unmap (or release) the capture data; the file
// descriptor itself is already closed by the time Open returns.
type Source struct {
	path   string
	data   []byte
	closer func() error
}

// Open maps path into memory for reading. On platforms without an mmap
// implementation wired in (anything outside unix), it falls back to
// reading the whole file into a heap buffer, trading the zero-copy
// guarantee for portability.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, ioError("stat", err)
	}
	if info.Size() < 2 {
		return nil, ErrTooShort
	}

	return openMapped(f, info.Size())
}

// Bytes returns the full borrowed byte slice of the capture file. The
// slice is valid until Close is called.
func (s *Source) Bytes() []byte {
	return s.data
}

// Len returns the length in bytes of the capture.
func (s *Source) Len() int {
	return len(s.data)
}

// Path returns the path the Source was opened from.
func (s *Source) Path() string {
	return s.path
}

// Close unmaps (or releases) the underlying capture data. A Source must
// not be used after Close.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	s.data = nil
	return closer()
}
