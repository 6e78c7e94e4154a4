// Copyright (c) 2025 Neomantra Corp

package replay

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestReplay(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "replay suite")
}

// fakeClock drives a deterministic now()/sleep() pair: sleep advances the
// fake wall clock instead of blocking the test.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }
func (f *fakeClock) Sleep(d time.Duration) {
	f.t = f.t.Add(d)
}

func newTestClock(catchup time.Duration, fc *fakeClock) *Clock {
	return NewClock(Config{
		CatchupThreshold: catchup,
		now:              fc.Now,
		sleep:            fc.Sleep,
	})
}

var _ = Describe("Clock", func() {
	It("anchors on the first call without sleeping", func() {
		fc := &fakeClock{t: time.Unix(1000, 0)}
		c := newTestClock(time.Second, fc)

		start := fc.t
		c.WaitFor(1_000_000_000)
		Expect(fc.t).To(Equal(start))
	})

	It("sleeps until the scheduled deadline for a later event", func() {
		fc := &fakeClock{t: time.Unix(1000, 0)}
		c := newTestClock(time.Second, fc)

		c.WaitFor(0)
		c.WaitFor(500_000_000) // 500ms later in event time

		Expect(fc.t).To(Equal(time.Unix(1000, 0).Add(500 * time.Millisecond)))
	})

	It("re-anchors instead of trying to catch up past the threshold", func() {
		fc := &fakeClock{t: time.Unix(1000, 0)}
		c := newTestClock(100*time.Millisecond, fc)

		c.WaitFor(0)
		// Wall clock runs far ahead of the event schedule (simulating a
		// stall): advance it manually before the next WaitFor call.
		fc.t = fc.t.Add(5 * time.Second)

		before := fc.t
		c.WaitFor(1_000_000_000) // 1s of event time has "passed"
		// No sleep should occur: the clock re-anchors instead.
		Expect(fc.t).To(Equal(before))

		// Confirm the re-anchor took effect: the next small event delta
		// produces a proportionally small sleep from the new anchor.
		c.WaitFor(1_010_000_000)
		Expect(fc.t).To(Equal(before.Add(10 * time.Millisecond)))
	})
})
