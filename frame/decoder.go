// Copyright (c) 2025 Neomantra Corp

// Package frame walks a capture buffer's 2-byte-length-prefixed message
// frames, handing out zero-copy (tag, body) pairs. It never interprets a
// body beyond its first byte; message-layout decoding lives in the itch
// package.
package frame

import (
	"encoding/binary"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// Decoder walks a capture buffer frame by frame with a bool-returning
// Next and a separate Err accessor, over an already-mapped slice instead
// of an io.Reader: frame bodies borrow directly from the backing buffer.
type Decoder struct {
	buf    []byte
	offset int // offset of the frame currently exposed by Body/Tag
	next   int // offset to resume Next() from
	body   []byte
	err    error

	unknownCount int
}

// NewDecoder returns a Decoder over buf. buf is retained, not copied; the
// caller must keep it alive (and unmodified) for the Decoder's lifetime.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Next advances to the next frame, returning false at EOF or on error.
// Call Err to distinguish clean EOF (nil) from a truncated capture.
func (d *Decoder) Next() bool {
	if d.err != nil {
		return false
	}
	if d.next >= len(d.buf) {
		return false // clean EOF
	}
	if d.next+2 > len(d.buf) {
		d.err = ErrTruncatedFrame
		return false
	}

	length := int(binary.BigEndian.Uint16(d.buf[d.next : d.next+2]))
	if length == 0 {
		d.err = ErrZeroLengthFrame
		return false
	}

	bodyStart := d.next + 2
	bodyEnd := bodyStart + length
	if bodyEnd > len(d.buf) {
		d.err = ErrTruncatedFrame
		return false
	}

	d.offset = d.next
	d.body = d.buf[bodyStart:bodyEnd]
	d.next = bodyEnd

	if len(d.body) == 0 || !itch.Tag(d.body[0]).Known() {
		d.unknownCount++
	}
	return true
}

// Tag returns the current frame's message type discriminant. Valid only
// after Next returns true.
func (d *Decoder) Tag() itch.Tag {
	if len(d.body) == 0 {
		return 0
	}
	return itch.Tag(d.body[0])
}

// Body returns the current frame's body, a zero-copy slice into the
// backing buffer. Valid only after Next returns true.
func (d *Decoder) Body() []byte {
	return d.body
}

// Offset returns the byte offset of the current frame's 2-byte length
// prefix within the capture.
func (d *Decoder) Offset() int {
	return d.offset
}

// Err returns the error that stopped iteration, or nil on clean EOF.
func (d *Decoder) Err() error {
	return d.err
}

// UnknownCount returns the number of frames seen so far whose tag isn't
// one of the 23 known message types. These are skipped, not fatal.
func (d *Decoder) UnknownCount() int {
	return d.unknownCount
}
