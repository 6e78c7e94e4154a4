// Copyright (c) 2025 Neomantra Corp

package itch

import "encoding/binary"

// MessageHeader is the common prefix shared by every ITCH 5.0 message body
// after the one-byte type tag: stock locate, tracking number, and the
// 48-bit nanosecond timestamp, zero-extended into a uint64.
type MessageHeader struct {
	StockLocate    uint16 `json:"stock_locate"`
	TrackingNumber uint16 `json:"tracking_number"`
	Timestamp      uint64 `json:"timestamp_ns"` // nanoseconds since midnight ET, 48-bit on the wire
}

// MessageHeaderSize is the byte length of MessageHeader, including the
// leading type tag (offset 0) that every decoder slices past before calling
// FillMessageHeader_Raw.
const MessageHeaderSize = 11

// FillMessageHeader_Raw decodes a MessageHeader from a frame body whose
// first byte is the type tag at b[0].
func FillMessageHeader_Raw(b []byte, h *MessageHeader) {
	h.StockLocate = binary.BigEndian.Uint16(b[1:3])
	h.TrackingNumber = binary.BigEndian.Uint16(b[3:5])
	h.Timestamp = uint48(b[5:11])
}

// uint48 zero-extends a 6-byte big-endian field into a uint64.
func uint48(b []byte) uint64 {
	return uint64(b[0])<<40 | uint64(b[1])<<32 | uint64(b[2])<<24 |
		uint64(b[3])<<16 | uint64(b[4])<<8 | uint64(b[5])
}
