// Copyright (c) 2025 Neomantra Corp

// Package sink provides the concrete book.Sink implementations named as
// external collaborators in the core's design: a CSV file sink and a
// JSONL alternative.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// CSVSink writes one row per Snapshot to the wrapped writer, per §6's
// fixed header. It is not safe for concurrent use; the engine thread
// drives it exclusively.
type CSVSink struct {
	w     *bufio.Writer
	depth int
}

// NewCSVSink wraps w and writes the fixed header immediately. depth is K,
// the number of levels per side.
func NewCSVSink(w io.Writer, depth int) (*CSVSink, error) {
	s := &CSVSink{w: bufio.NewWriter(w), depth: depth}
	if err := s.writeHeader(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *CSVSink) writeHeader() error {
	if _, err := s.w.WriteString("timestamp_ns"); err != nil {
		return err
	}
	for side := 0; side < 2; side++ {
		prefix := "bid"
		if side == 1 {
			prefix = "ask"
		}
		for i := 1; i <= s.depth; i++ {
			fmt.Fprintf(s.w, ",%s_px_%d,%s_sz_%d,%s_cnt_%d", prefix, i, prefix, i, prefix, i)
		}
	}
	_, err := s.w.WriteString("\n")
	return err
}

// Accept implements book.Sink.
func (s *CSVSink) Accept(snap book.Snapshot) error {
	s.w.WriteString(strconv.FormatUint(snap.TimestampNs, 10))
	writeSide(s.w, snap.Bids, s.depth)
	writeSide(s.w, snap.Asks, s.depth)
	_, err := s.w.WriteString("\n")
	return err
}

func writeSide(w *bufio.Writer, levels []book.LevelView, depth int) {
	for i := 0; i < depth; i++ {
		var lv book.LevelView
		if i < len(levels) {
			lv = levels[i]
		}
		px := "0"
		if lv.Price != itch.NoPrice {
			px = lv.Price.String()
		}
		fmt.Fprintf(w, ",%s,%d,%d", px, lv.Quantity, lv.OrderCount)
	}
}

// Flush flushes any buffered output. Callers must call Flush before the
// run ends.
func (s *CSVSink) Flush() error {
	return s.w.Flush()
}
