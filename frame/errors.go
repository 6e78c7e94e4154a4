// Copyright (c) 2025 Neomantra Corp

package frame

import "fmt"

var (
	// ErrTruncatedFrame is returned when a 2-byte length prefix announces
	// more body bytes than remain in the capture. Fatal: it means the
	// capture was cut off mid-message.
	ErrTruncatedFrame = fmt.Errorf("truncated frame at end of capture")

	// ErrZeroLengthFrame is returned for a length prefix of zero, which
	// never occurs in a well-formed capture.
	ErrZeroLengthFrame = fmt.Errorf("zero-length frame")

	// ErrNoFrame describes the state before the first successful call to
	// Next. The Decoder does not return it: Tag, Body and Offset report
	// zero values in that state instead.
	ErrNoFrame = fmt.Errorf("no current frame")
)
