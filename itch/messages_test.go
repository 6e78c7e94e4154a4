// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"encoding/binary"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// putUint48 writes the low 48 bits of v as big-endian into b.
func putUint48(b []byte, v uint64) {
	b[0] = byte(v >> 40)
	b[1] = byte(v >> 32)
	b[2] = byte(v >> 24)
	b[3] = byte(v >> 16)
	b[4] = byte(v >> 8)
	b[5] = byte(v)
}

// buildHeader writes the type tag and common MessageHeader into a buffer of
// the given total size and returns it.
func buildHeader(tag itch.Tag, locate, tracking uint16, ts uint64, size int) []byte {
	b := make([]byte, size)
	b[0] = byte(tag)
	binary.BigEndian.PutUint16(b[1:3], locate)
	binary.BigEndian.PutUint16(b[3:5], tracking)
	putUint48(b[5:11], ts)
	return b
}

var _ = Describe("message decoders", func() {
	It("decodes AddOrderMsg", func() {
		b := buildHeader(itch.TagAddOrder, 7, 42, 123456789, itch.AddOrderMsg_Size)
		binary.BigEndian.PutUint64(b[11:19], 1001)
		b[19] = byte(itch.SideBuy)
		binary.BigEndian.PutUint32(b[20:24], 500)
		copy(b[24:32], []byte("AAPL    "))
		binary.BigEndian.PutUint32(b[32:36], 1000000)

		var m itch.AddOrderMsg
		Expect(m.Fill_Raw(b)).To(Succeed())
		Expect(m.StockLocate).To(Equal(uint16(7)))
		Expect(m.Timestamp).To(Equal(uint64(123456789)))
		Expect(m.OrderRef).To(Equal(itch.OrderRef(1001)))
		Expect(m.Side).To(Equal(itch.SideBuy))
		Expect(m.Shares).To(Equal(itch.Quantity(500)))
		Expect(m.Stock.String()).To(Equal("AAPL"))
		Expect(m.Price).To(Equal(itch.Price(1000000)))
	})

	It("rejects a short AddOrderMsg frame", func() {
		b := buildHeader(itch.TagAddOrder, 1, 1, 1, itch.AddOrderMsg_Size-1)
		var m itch.AddOrderMsg
		Expect(m.Fill_Raw(b)).To(MatchError(itch.ErrShortFrame))
	})

	It("decodes OrderDeleteMsg", func() {
		b := buildHeader(itch.TagOrderDelete, 1, 1, 1, itch.OrderDeleteMsg_Size)
		binary.BigEndian.PutUint64(b[11:19], 777)

		var m itch.OrderDeleteMsg
		Expect(m.Fill_Raw(b)).To(Succeed())
		Expect(m.OrderRef).To(Equal(itch.OrderRef(777)))
	})

	It("decodes OrderReplaceMsg", func() {
		b := buildHeader(itch.TagOrderReplace, 1, 1, 1, itch.OrderReplaceMsg_Size)
		binary.BigEndian.PutUint64(b[11:19], 1)
		binary.BigEndian.PutUint64(b[19:27], 2)
		binary.BigEndian.PutUint32(b[27:31], 100)
		binary.BigEndian.PutUint32(b[31:35], 999900)

		var m itch.OrderReplaceMsg
		Expect(m.Fill_Raw(b)).To(Succeed())
		Expect(m.OriginalOrderRef).To(Equal(itch.OrderRef(1)))
		Expect(m.NewOrderRef).To(Equal(itch.OrderRef(2)))
		Expect(m.Price).To(Equal(itch.Price(999900)))
	})

	It("decodes StockDirectoryMsg and strips symbol padding", func() {
		b := buildHeader(itch.TagStockDirectory, 3, 1, 1, itch.StockDirectoryMsg_Size)
		copy(b[11:19], []byte("MSFT    "))
		b[19] = byte(itch.MarketNasdaqGlobalSelect)

		var m itch.StockDirectoryMsg
		Expect(m.Fill_Raw(b)).To(Succeed())
		Expect(m.Stock.String()).To(Equal("MSFT"))
		Expect(m.Stock.Equal("MSFT")).To(BeTrue())
	})

	It("decodes NOIIMsg preserving the wide Price8 fields", func() {
		b := buildHeader(itch.TagNOII, 1, 1, 1, itch.NOIIMsg_Size)
		binary.BigEndian.PutUint64(b[36:44], 123400000000)

		var m itch.NOIIMsg
		Expect(m.Fill_Raw(b)).To(Succeed())
		Expect(m.FarPrice).To(Equal(itch.Price8(123400000000)))
		Expect(m.FarPrice.Float64()).To(BeNumerically("~", 1234.0, 0.0001))
	})

	It("dispatches via Visit to the right handler", func() {
		b := buildHeader(itch.TagOrderCancel, 1, 1, 1, itch.OrderCancelMsg_Size)
		binary.BigEndian.PutUint64(b[11:19], 55)
		binary.BigEndian.PutUint32(b[19:23], 20)

		var seen *itch.OrderCancelMsg
		v := &captureVisitor{onOrderCancel: func(m *itch.OrderCancelMsg) error {
			seen = m
			return nil
		}}
		Expect(itch.Visit(b, v)).To(Succeed())
		Expect(seen).ToNot(BeNil())
		Expect(seen.CancelledShares).To(Equal(itch.Quantity(20)))
	})

	It("routes unknown tags to OnUnknownTag", func() {
		var gotTag byte
		v := &captureVisitor{onUnknownTag: func(tag byte) error {
			gotTag = tag
			return nil
		}}
		Expect(itch.Visit([]byte{'Z', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, v)).To(Succeed())
		Expect(gotTag).To(Equal(byte('Z')))
	})
})

// captureVisitor embeds NullVisitor and overrides only the handlers a test
// cares about.
type captureVisitor struct {
	itch.NullVisitor
	onOrderCancel func(*itch.OrderCancelMsg) error
	onUnknownTag  func(byte) error
}

func (v *captureVisitor) OnOrderCancel(m *itch.OrderCancelMsg) error {
	if v.onOrderCancel != nil {
		return v.onOrderCancel(m)
	}
	return nil
}

func (v *captureVisitor) OnUnknownTag(tag byte) error {
	if v.onUnknownTag != nil {
		return v.onUnknownTag(tag)
	}
	return nil
}
