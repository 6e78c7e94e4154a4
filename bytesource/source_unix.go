// Copyright (c) 2025 Neomantra Corp

//go:build unix

package bytesource

import (
	"os"

	"golang.org/x/sys/unix"
)

// openMapped mmaps the file read-only and advises the kernel that access
// will be sequential, which matches how the frame decoder walks the
// capture from byte zero to EOF.
func openMapped(f *os.File, size int64) (*Source, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, ioError("mmap", err)
	}
	if err := unix.Madvise(data, unix.MADV_SEQUENTIAL); err != nil {
		// Advisory only; a failure here doesn't affect correctness.
		_ = err
	}

	s := &Source{path: f.Name(), data: data}
	s.closer = func() error {
		if err := unix.Munmap(data); err != nil {
			return ioError("munmap", err)
		}
		return nil
	}
	return s, nil
}
