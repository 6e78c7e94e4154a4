// Copyright (c) 2025 Neomantra Corp

package broadcast_test

import (
	json "github.com/segmentio/encoding/json"

	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/broadcast"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BuildFrame", func() {
	It("flattens a Snapshot into the CSV-equivalent JSON columns plus symbol", func() {
		snap := book.Snapshot{
			TimestampNs: 123,
			Bids:        []book.LevelView{{Price: 1000000, Quantity: 100, OrderCount: 2}},
			Asks:        []book.LevelView{{Price: 1000100, Quantity: 50, OrderCount: 1}},
		}

		data, err := broadcast.BuildFrame(snap, "AAPL", 1)
		Expect(err).NotTo(HaveOccurred())

		var obj map[string]any
		Expect(json.Unmarshal(data, &obj)).To(Succeed())

		Expect(obj["symbol"]).To(Equal("AAPL"))
		Expect(obj["timestamp_ns"]).To(BeNumerically("==", 123))
		Expect(obj["bid_px_1"]).To(BeNumerically("~", itch.Price(1000000).Float64(), 0.0001))
		Expect(obj["bid_sz_1"]).To(BeNumerically("==", 100))
		Expect(obj["ask_cnt_1"]).To(BeNumerically("==", 1))
	})

	It("pads missing levels as zero-valued columns", func() {
		snap := book.Snapshot{TimestampNs: 1}
		data, err := broadcast.BuildFrame(snap, "AAPL", 2)
		Expect(err).NotTo(HaveOccurred())

		var obj map[string]any
		Expect(json.Unmarshal(data, &obj)).To(Succeed())
		Expect(obj["bid_px_2"]).To(BeNumerically("==", 0))
		Expect(obj["ask_sz_2"]).To(BeNumerically("==", 0))
	})
})
