// Copyright (c) 2025 Neomantra Corp

package book

import "github.com/nimblemarkets-labs/itch-lob-go/itch"

// LevelView is one row of a Snapshot's top-K ladder view. An empty slot
// (fewer than K live levels) is the zero value, per §4.6.
type LevelView struct {
	Price      itch.Price    `json:"price"`
	Quantity   itch.Quantity `json:"quantity"`
	OrderCount int           `json:"order_count"`
}

// Snapshot is a point-in-time, top-K view of both ladders, produced after
// every applied book-mutating event on the tracked symbol.
type Snapshot struct {
	TimestampNs uint64      `json:"timestamp_ns"`
	Bids        []LevelView `json:"bids"`
	Asks        []LevelView `json:"asks"`
	// Crossed is true when the best bid price is not strictly less than
	// the best ask price. Not an error (I3 tolerates it) but surfaced so
	// subscribers can observe transient crossed states around auctions.
	Crossed bool `json:"crossed"`
}

// Sink is the abstract, append-only destination for snapshot records. It
// must accept records at engine rate; a CSV or JSONL file sink and the
// broadcaster are both Sinks.
type Sink interface {
	Accept(Snapshot) error
}

// Snapshot builds a top-K view of both ladders as of timestampNs. depth is
// K; levels beyond the live ladder depth are left as zero-value
// LevelViews, per §4.6's padding rule.
func (e *Engine) Snapshot(timestampNs uint64, depth int) Snapshot {
	snap := Snapshot{
		TimestampNs: timestampNs,
		Bids:        make([]LevelView, depth),
		Asks:        make([]LevelView, depth),
	}

	fill(e.bids, snap.Bids)
	fill(e.asks, snap.Asks)

	bestBid := e.bids.Best()
	bestAsk := e.asks.Best()
	if bestBid != nil && bestAsk != nil && bestBid.price >= bestAsk.price {
		snap.Crossed = true
	}

	return snap
}

// fill walks l best-first, writing up to len(out) levels.
func fill(l *ladder, out []LevelView) {
	i := 0
	l.ForEachBest(func(lvl *priceLevel) bool {
		if i >= len(out) {
			return false
		}
		out[i] = LevelView{Price: lvl.price, Quantity: lvl.totalQty, OrderCount: lvl.count}
		i++
		return true
	})
}
