// Copyright (c) 2025 Neomantra Corp

package locate_test

import (
	"testing"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"
	"github.com/nimblemarkets-labs/itch-lob-go/locate"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLocate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "locate suite")
}

var _ = Describe("Filter", func() {
	It("stays unresolved until the target symbol's StockDirectory arrives", func() {
		f := locate.NewFilter("AAPL")
		Expect(f.Resolved()).To(BeFalse())

		other := &itch.StockDirectoryMsg{Stock: itch.SymbolFromString("MSFT")}
		other.StockLocate = 9
		Expect(f.ObserveStockDirectory(other)).To(BeFalse())
		Expect(f.Resolved()).To(BeFalse())

		mine := &itch.StockDirectoryMsg{Stock: itch.SymbolFromString("AAPL")}
		mine.StockLocate = 42
		Expect(f.ObserveStockDirectory(mine)).To(BeTrue())
		Expect(f.Resolved()).To(BeTrue())

		locateVal, ok := f.Locate()
		Expect(ok).To(BeTrue())
		Expect(locateVal).To(Equal(itch.StockLocate(42)))
	})

	It("resolves only once even if the symbol repeats", func() {
		f := locate.NewFilter("AAPL")
		first := &itch.StockDirectoryMsg{Stock: itch.SymbolFromString("AAPL")}
		first.StockLocate = 1
		Expect(f.ObserveStockDirectory(first)).To(BeTrue())

		second := &itch.StockDirectoryMsg{Stock: itch.SymbolFromString("AAPL")}
		second.StockLocate = 2
		Expect(f.ObserveStockDirectory(second)).To(BeFalse())

		locateVal, _ := f.Locate()
		Expect(locateVal).To(Equal(itch.StockLocate(1)))
	})

	It("accepts explicit-locate messages only for the resolved locate", func() {
		f := locate.NewFilter("AAPL")
		mine := &itch.StockDirectoryMsg{Stock: itch.SymbolFromString("AAPL")}
		mine.StockLocate = 7
		f.ObserveStockDirectory(mine)

		Expect(f.AcceptsLocate(7)).To(BeTrue())
		Expect(f.AcceptsLocate(8)).To(BeFalse())
	})

	It("routes locate-less order messages by tracked OrderRef membership", func() {
		f := locate.NewFilter("AAPL")
		Expect(f.AcceptsOrder(100)).To(BeFalse())

		f.TrackOrder(100)
		Expect(f.AcceptsOrder(100)).To(BeTrue())
		Expect(f.TrackedOrderCount()).To(Equal(1))

		f.ForgetOrder(100)
		Expect(f.AcceptsOrder(100)).To(BeFalse())
		Expect(f.TrackedOrderCount()).To(Equal(0))
	})
})
