// Copyright (c) 2025 Neomantra Corp

package itch_test

import (
	"encoding/json"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Symbol", func() {
	It("round-trips through JSON as a trimmed string", func() {
		sym := itch.SymbolFromString("AAPL")

		data, err := json.Marshal(sym)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"AAPL"`))

		var decoded itch.Symbol
		Expect(json.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded.String()).To(Equal("AAPL"))
	})
})

var _ = Describe("Tag.Known", func() {
	It("reports true for every message type the decoder handles", func() {
		Expect(itch.TagAddOrder.Known()).To(BeTrue())
		Expect(itch.TagNOII.Known()).To(BeTrue())
		Expect(itch.TagDLCR.Known()).To(BeTrue())
	})

	It("reports false for a tag outside the 23 known types", func() {
		Expect(itch.Tag('Z').Known()).To(BeFalse())
	})
})
