// Copyright (c) 2025 Neomantra Corp

// Package runsummary accumulates and prints the end-of-run counters the
// CLI reports on completion: records parsed, a per-message-type
// histogram, unknown and recoverable-drop counts, and throughput.
package runsummary

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// Summary accumulates run counters as the capture is parsed.
type Summary struct {
	start time.Time

	totalFrames   uint64
	byTag         map[itch.Tag]uint64
	unknownTags   uint64
	snapshots     uint64
	subscriberDrops uint64
}

// New returns a Summary whose throughput clock starts now.
func New() *Summary {
	return &Summary{
		start: time.Now(),
		byTag: make(map[itch.Tag]uint64),
	}
}

// ObserveFrame records one successfully decoded frame of the given tag.
func (s *Summary) ObserveFrame(tag itch.Tag) {
	s.totalFrames++
	s.byTag[tag]++
}

// ObserveUnknownTag records one skipped, unrecognized frame.
func (s *Summary) ObserveUnknownTag() {
	s.unknownTags++
}

// ObserveSnapshot records one emitted book-update snapshot.
func (s *Summary) ObserveSnapshot() {
	s.snapshots++
}

// ObserveSubscriberDrops adds n to the total count of broadcaster frames
// dropped for slow subscribers.
func (s *Summary) ObserveSubscriberDrops(n uint64) {
	s.subscriberDrops += n
}

// WriteReport prints a human-readable completion summary to w, mirroring
// the teacher CLI's humanize.Comma/humanize.Bytes completion messages.
func (s *Summary) WriteReport(w io.Writer) {
	elapsed := time.Since(s.start)
	rate := float64(s.totalFrames) / elapsed.Seconds()

	fmt.Fprintf(w, "parsed %s records in %s (%s records/sec)\n",
		humanize.Comma(int64(s.totalFrames)), elapsed.Round(time.Millisecond),
		humanize.Comma(int64(rate)))
	fmt.Fprintf(w, "emitted %s snapshots\n", humanize.Comma(int64(s.snapshots)))
	if s.unknownTags > 0 {
		fmt.Fprintf(w, "skipped %s frames with unknown tags\n", humanize.Comma(int64(s.unknownTags)))
	}
	if s.subscriberDrops > 0 {
		fmt.Fprintf(w, "dropped %s broadcaster frames for slow subscribers\n", humanize.Comma(int64(s.subscriberDrops)))
	}
	for tag, count := range s.byTag {
		fmt.Fprintf(w, "  %-24s %s\n", tag.String(), humanize.Comma(int64(count)))
	}
}
