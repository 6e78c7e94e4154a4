// Copyright (c) 2025 Neomantra Corp

package book_test

import (
	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ladder ordering under many levels", func() {
	It("keeps bids strictly descending and asks strictly ascending after heavy churn", func() {
		e := book.NewEngine(book.Config{})

		prices := []itch.Price{100, 250, 50, 300, 10, 400, 175, 225, 5, 1000, 900, 850}
		var ref itch.OrderRef = 1
		for _, p := range prices {
			Expect(e.ApplyAdd(ref, itch.SideBuy, 10, p)).To(Succeed())
			ref++
			Expect(e.ApplyAdd(ref, itch.SideSell, 10, p+100000)).To(Succeed())
			ref++
		}

		snap := e.Snapshot(1, len(prices))
		for i := 1; i < len(snap.Bids); i++ {
			if snap.Bids[i] == (book.LevelView{}) {
				break
			}
			Expect(snap.Bids[i].Price < snap.Bids[i-1].Price).To(BeTrue())
		}
		for i := 1; i < len(snap.Asks); i++ {
			if snap.Asks[i] == (book.LevelView{}) {
				break
			}
			Expect(snap.Asks[i].Price > snap.Asks[i-1].Price).To(BeTrue())
		}

		// Delete every other bid (odd refs are bids) and check ordering
		// still holds on the bids that remain.
		for i := itch.OrderRef(1); i < ref; i += 4 {
			Expect(e.ApplyDelete(i)).To(Succeed())
		}
		snap = e.Snapshot(2, len(prices))
		for i := 1; i < len(snap.Bids); i++ {
			if snap.Bids[i] == (book.LevelView{}) {
				break
			}
			Expect(snap.Bids[i].Price < snap.Bids[i-1].Price).To(BeTrue())
		}
	})
})
