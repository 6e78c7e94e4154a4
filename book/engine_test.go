// Copyright (c) 2025 Neomantra Corp

package book_test

import (
	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine", func() {
	var e *book.Engine

	BeforeEach(func() {
		e = book.NewEngine(book.Config{})
	})

	It("add then delete empties the book", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000000)).To(Succeed())
		snap := e.Snapshot(1, 5)
		Expect(snap.Bids[0].Price).To(Equal(itch.Price(1000000)))
		Expect(snap.Bids[0].Quantity).To(Equal(itch.Quantity(100)))
		Expect(snap.Bids[0].OrderCount).To(Equal(1))

		Expect(e.ApplyDelete(1)).To(Succeed())
		snap = e.Snapshot(2, 5)
		Expect(snap.Bids[0]).To(Equal(book.LevelView{}))
		Expect(snap.Asks[0]).To(Equal(book.LevelView{}))
		Expect(e.OrderCount()).To(Equal(0))
	})

	It("add then partial execute leaves the residual quantity", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 500, 1000000)).To(Succeed())
		Expect(e.ApplyExecute(1, 200)).To(Succeed())

		snap := e.Snapshot(1, 1)
		Expect(snap.Bids[0].Price).To(Equal(itch.Price(1000000)))
		Expect(snap.Bids[0].Quantity).To(Equal(itch.Quantity(300)))
		Expect(snap.Bids[0].OrderCount).To(Equal(1))
	})

	It("replace lowers price onto a fresh level and retires the old one", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000000)).To(Succeed())
		Expect(e.ApplyReplace(1, 2, 100, 999900)).To(Succeed())

		snap := e.Snapshot(1, 2)
		Expect(snap.Bids[0].Price).To(Equal(itch.Price(999900)))
		Expect(snap.Bids[1]).To(Equal(book.LevelView{}))
		Expect(e.OrderCount()).To(Equal(1))
	})

	It("fails with ErrOverCancel naming the offending ref", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000000)).To(Succeed())
		err := e.ApplyCancel(1, 150)
		Expect(err).To(MatchError(book.ErrOverCancel))
		Expect(err.Error()).To(ContainSubstring("ref=1"))
	})

	It("silently discards a delete for an unknown ref", func() {
		Expect(e.ApplyDelete(42)).To(Succeed())
		Expect(e.OrderCount()).To(Equal(0))
	})

	It("fails with ErrDuplicateOrderRef on a colliding add", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000000)).To(Succeed())
		err := e.ApplyAdd(1, itch.SideSell, 50, 1000100)
		Expect(err).To(MatchError(book.ErrDuplicateOrderRef))
	})

	It("fails with ErrOverExecute naming the offending ref", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000000)).To(Succeed())
		err := e.ApplyExecute(1, 500)
		Expect(err).To(MatchError(book.ErrOverExecute))
		Expect(err.Error()).To(ContainSubstring("ref=1"))
	})

	It("reports crossed books without erroring", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 1000100)).To(Succeed())
		Expect(e.ApplyAdd(2, itch.SideSell, 100, 1000000)).To(Succeed())

		snap := e.Snapshot(1, 1)
		Expect(snap.Crossed).To(BeTrue())
	})

	It("iterates bids descending and asks ascending", func() {
		Expect(e.ApplyAdd(1, itch.SideBuy, 100, 990000)).To(Succeed())
		Expect(e.ApplyAdd(2, itch.SideBuy, 100, 1000000)).To(Succeed())
		Expect(e.ApplyAdd(3, itch.SideBuy, 100, 995000)).To(Succeed())
		Expect(e.ApplyAdd(4, itch.SideSell, 100, 1010000)).To(Succeed())
		Expect(e.ApplyAdd(5, itch.SideSell, 100, 1005000)).To(Succeed())

		snap := e.Snapshot(1, 3)
		Expect(snap.Bids[0].Price).To(Equal(itch.Price(1000000)))
		Expect(snap.Bids[1].Price).To(Equal(itch.Price(995000)))
		Expect(snap.Bids[2].Price).To(Equal(itch.Price(990000)))

		Expect(snap.Asks[0].Price).To(Equal(itch.Price(1005000)))
		Expect(snap.Asks[1].Price).To(Equal(itch.Price(1010000)))
	})
})
