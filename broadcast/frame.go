// Copyright (c) 2025 Neomantra Corp

package broadcast

import (
	"fmt"

	"github.com/nimblemarkets-labs/itch-lob-go/book"

	json "github.com/segmentio/encoding/json"
)

// BuildFrame renders a Snapshot as the wire format in §6: a flat JSON
// object with the same columns as the CSV sink's row, plus "symbol" and
// "crossed". One frame per snapshot, no subscription protocol.
func BuildFrame(snap book.Snapshot, symbol string, depth int) ([]byte, error) {
	obj := make(map[string]any, 2+6*depth)
	obj["timestamp_ns"] = snap.TimestampNs
	obj["symbol"] = symbol
	obj["crossed"] = snap.Crossed

	for i := 0; i < depth; i++ {
		bid := levelAt(snap.Bids, i)
		obj[fmt.Sprintf("bid_px_%d", i+1)] = bid.Price.Float64()
		obj[fmt.Sprintf("bid_sz_%d", i+1)] = bid.Quantity
		obj[fmt.Sprintf("bid_cnt_%d", i+1)] = bid.OrderCount

		ask := levelAt(snap.Asks, i)
		obj[fmt.Sprintf("ask_px_%d", i+1)] = ask.Price.Float64()
		obj[fmt.Sprintf("ask_sz_%d", i+1)] = ask.Quantity
		obj[fmt.Sprintf("ask_cnt_%d", i+1)] = ask.OrderCount
	}

	return json.Marshal(obj)
}

func levelAt(levels []book.LevelView, i int) book.LevelView {
	if i < len(levels) {
		return levels[i]
	}
	return book.LevelView{}
}
