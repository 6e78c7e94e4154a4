// Copyright (c) 2025 Neomantra Corp
// Reader/Writer compression helpers.
//
// Adapted from Neomantra's Gist, simplified to only support zstd:
// https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802

// Package compressedio opens output sinks and (optionally) compressed
// capture inputs, transparently zstd-wrapping either side when the path
// carries a .zst/.zstd suffix.
package compressedio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// MakeWriter returns an io.Writer for filename, or os.Stdout if filename
// is "-". Also returns a closing function to defer and any error. If
// filename ends in ".zst" or ".zstd", or useZstd is true, the writer
// zstd-compresses the output.
func MakeWriter(filename string, useZstd bool) (io.Writer, func(), error) {
	var writer io.Writer
	var closer io.Closer
	fileCloser := func() {
		if closer != nil {
			closer.Close()
		}
	}

	if filename != "-" {
		file, err := os.Create(filename)
		if err != nil {
			return nil, nil, err
		}
		writer, closer = file, file
	} else {
		writer, closer = os.Stdout, nil
	}

	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			fileCloser()
			return nil, nil, err
		}
		zstdCloser := func() {
			zstdWriter.Close()
			fileCloser()
		}
		return zstdWriter, zstdCloser, nil
	}
	return writer, fileCloser, nil
}

// MakeReader returns an io.Reader for filename's bytes, mapping ".zst"/
// ".zstd" suffixed inputs (or useZstd) through a streaming zstd decoder.
// This wraps a plain file reader; callers that want the capture mapped
// zero-copy should use bytesource.Open for uncompressed captures instead
// and reserve MakeReader for the compressed path.
func MakeReader(filename string, useZstd bool) (io.Reader, io.Closer, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader = file
	if useZstd || strings.HasSuffix(filename, ".zst") || strings.HasSuffix(filename, ".zstd") {
		zr, err := zstd.NewReader(reader)
		if err != nil {
			file.Close()
			return nil, nil, err
		}
		return zr, zstdReadCloser{zr: zr, f: file}, nil
	}
	return reader, file, nil
}

// zstdReadCloser closes the zstd decoder before the underlying file.
type zstdReadCloser struct {
	zr *zstd.Decoder
	f  *os.File
}

func (c zstdReadCloser) Close() error {
	c.zr.Close()
	return c.f.Close()
}
