// Copyright (c) 2025 Neomantra Corp

package sink

import (
	"bufio"
	"io"

	json "github.com/segmentio/encoding/json"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
)

// JSONLSink writes one JSON object per line, mirroring the teacher's
// WriteAsJson helper. Each line is book.Snapshot marshaled as-is (nested
// bids/asks arrays), not the flat per-level columns of the broadcaster's
// wire frames. It uses the same faster segmentio encoder as the
// broadcaster for the higher per-record rate a file sink sees versus a
// single WebSocket fan-out.
type JSONLSink struct {
	w *bufio.Writer
}

// NewJSONLSink wraps w.
func NewJSONLSink(w io.Writer) *JSONLSink {
	return &JSONLSink{w: bufio.NewWriter(w)}
}

// Accept implements book.Sink.
func (s *JSONLSink) Accept(snap book.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := s.w.Write(data); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

// Flush flushes any buffered output.
func (s *JSONLSink) Flush() error {
	return s.w.Flush()
}
