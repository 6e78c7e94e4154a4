// Copyright (c) 2025 Neomantra Corp

package bytesource

import (
	"io"

	"github.com/nimblemarkets-labs/itch-lob-go/internal/compressedio"
)

// OpenCompressed decompresses path (zstd, per its ".zst"/".zstd" suffix or
// useZstd) fully into a heap buffer and exposes it the same way Open
// exposes an uncompressed capture. Compressed captures cannot be mapped
// zero-copy, so this always pays the one full read/decompress pass up
// front rather than streaming.
func OpenCompressed(path string, useZstd bool) (*Source, error) {
	r, closer, err := compressedio.MakeReader(path, useZstd)
	if err != nil {
		return nil, ioError("open", err)
	}
	defer closer.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("read", err)
	}
	if len(data) < 2 {
		return nil, ErrTooShort
	}

	s := &Source{path: path, data: data}
	s.closer = func() error { return nil }
	return s, nil
}
