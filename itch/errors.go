// Copyright (c) 2025 Neomantra Corp

package itch

import "fmt"

var (
	// ErrShortFrame is returned when a frame body is shorter than the fixed
	// length demanded by its message type. Fatal: frame lengths are
	// feed-defined and a short frame means the capture is corrupt.
	ErrShortFrame = fmt.Errorf("frame shorter than the message's fixed length")

	// ErrMalformedRecord names a decoded field that is internally
	// inconsistent. None of the fixed-layout decoders in this package
	// return it; they fail only with ErrShortFrame.
	ErrMalformedRecord = fmt.Errorf("malformed record")
)

// shortFrameError reports a decoder that demanded more bytes than the frame held.
func shortFrameError(tag Tag, got int, want int) error {
	return fmt.Errorf("%w: %s needs %d bytes, frame has %d", ErrShortFrame, tag, want, got)
}
