// Copyright (c) 2025 Neomantra Corp

package broadcast

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBroadcast(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "broadcast suite")
}

var _ = Describe("ring", func() {
	It("drains items in FIFO order", func() {
		r := newRing(3)
		r.push([]byte("a"))
		r.push([]byte("b"))

		got := r.drain()
		Expect(got).To(Equal([][]byte{[]byte("a"), []byte("b")}))
		Expect(r.drain()).To(BeNil())
	})

	It("drops the oldest entry once full, keeping freshness", func() {
		r := newRing(2)
		r.push([]byte("a"))
		r.push([]byte("b"))
		r.push([]byte("c")) // drops "a"

		Expect(r.drain()).To(Equal([][]byte{[]byte("b"), []byte("c")}))
		Expect(r.droppedCount()).To(Equal(uint64(1)))
	})
})
