// Copyright (c) 2025 Neomantra Corp

package runsummary

import (
	"bytes"
	"testing"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRunsummary(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "runsummary suite")
}

var _ = Describe("Summary", func() {
	It("accumulates observed counters", func() {
		s := New()
		s.ObserveFrame(itch.TagAddOrder)
		s.ObserveFrame(itch.TagAddOrder)
		s.ObserveFrame(itch.TagOrderDelete)
		s.ObserveUnknownTag()
		s.ObserveSnapshot()
		s.ObserveSnapshot()
		s.ObserveSubscriberDrops(3)

		Expect(s.totalFrames).To(Equal(uint64(3)))
		Expect(s.byTag[itch.TagAddOrder]).To(Equal(uint64(2)))
		Expect(s.byTag[itch.TagOrderDelete]).To(Equal(uint64(1)))
		Expect(s.unknownTags).To(Equal(uint64(1)))
		Expect(s.snapshots).To(Equal(uint64(2)))
		Expect(s.subscriberDrops).To(Equal(uint64(3)))
	})

	It("renders a report mentioning counted sections only when non-zero", func() {
		quiet := New()
		quiet.ObserveFrame(itch.TagTrade)
		quiet.ObserveSnapshot()

		var buf bytes.Buffer
		quiet.WriteReport(&buf)
		out := buf.String()

		Expect(out).To(ContainSubstring("parsed 1 records"))
		Expect(out).To(ContainSubstring("emitted 1 snapshots"))
		Expect(out).NotTo(ContainSubstring("unknown tags"))
		Expect(out).NotTo(ContainSubstring("slow subscribers"))

		noisy := New()
		noisy.ObserveFrame(itch.TagTrade)
		noisy.ObserveUnknownTag()
		noisy.ObserveSubscriberDrops(5)

		buf.Reset()
		noisy.WriteReport(&buf)
		out = buf.String()

		Expect(out).To(ContainSubstring("skipped 1 frames with unknown tags"))
		Expect(out).To(ContainSubstring("dropped 5 broadcaster frames for slow subscribers"))
		Expect(out).To(ContainSubstring("Trade"))
	})
})
