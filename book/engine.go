// Copyright (c) 2025 Neomantra Corp

// Package book maintains bid/ask price ladders and a global order index
// for a single symbol, applying ITCH's add/execute/cancel/delete/replace
// event stream under the invariants in itch-lob-go's order book contract.
package book

import (
	"log/slog"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// Engine owns the two ladders and the order index for one symbol. It is
// not safe for concurrent use: the parser and engine run on a single
// thread by design, so no internal locking is done.
type Engine struct {
	bids *ladder
	asks *ladder
	idx  map[itch.OrderRef]*order

	logger *slog.Logger
}

// Config configures a new Engine.
type Config struct {
	// Logger receives structured diagnostics ("component", "book"). Falls
	// back to slog.Default() if nil.
	Logger *slog.Logger
}

// NewEngine returns an empty Engine.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		bids:   newLadder(true),
		asks:   newLadder(false),
		idx:    make(map[itch.OrderRef]*order),
		logger: logger.With("component", "book"),
	}
}

func (e *Engine) ladderFor(side itch.Side) *ladder {
	if side == itch.SideBuy {
		return e.bids
	}
	return e.asks
}

// OrderCount returns the number of live orders in the index, for
// diagnostics and tests.
func (e *Engine) OrderCount() int {
	return len(e.idx)
}

// Contains reports whether ref is currently live in the index. Callers
// that maintain their own order-routing bookkeeping (e.g. a locate filter
// tracking which refs belong to a symbol) use this to learn when an order
// has been fully removed by an execute or cancel down to zero quantity.
func (e *Engine) Contains(ref itch.OrderRef) bool {
	_, ok := e.idx[ref]
	return ok
}

// ApplyAdd handles AddOrder/AddOrderMPID. Returns ErrDuplicateOrderRef if
// ref is already live, per I5.
func (e *Engine) ApplyAdd(ref itch.OrderRef, side itch.Side, qty itch.Quantity, price itch.Price) error {
	if _, exists := e.idx[ref]; exists {
		return duplicateOrderRefError(ref)
	}

	lvl := e.ladderFor(side).GetOrCreate(price)
	o := &order{ref: ref, side: side, remaining: qty}
	lvl.pushBack(o)
	e.idx[ref] = o
	return nil
}

// ApplyExecute handles OrderExecuted. Absent refs are discarded silently
// (not our symbol, per §4.4). Returns ErrOverExecute if execQty exceeds
// the order's remaining quantity, per I4.
func (e *Engine) ApplyExecute(ref itch.OrderRef, execQty itch.Quantity) error {
	o, ok := e.idx[ref]
	if !ok {
		return nil
	}
	if execQty > o.remaining {
		return overExecuteError(ref, o.remaining, execQty)
	}
	e.shrink(o, execQty)
	return nil
}

// ApplyExecuteWithPrice handles OrderExecutedWithPrice. The execution
// price is reported by the caller/emitter layer; it never changes the
// resting order's own price, only its remaining quantity, identical to
// ApplyExecute.
func (e *Engine) ApplyExecuteWithPrice(ref itch.OrderRef, execQty itch.Quantity) error {
	return e.ApplyExecute(ref, execQty)
}

// ApplyCancel handles OrderCancel. Absent refs are discarded silently.
// Returns ErrOverCancel if cancelledQty exceeds the order's remaining
// quantity.
func (e *Engine) ApplyCancel(ref itch.OrderRef, cancelledQty itch.Quantity) error {
	o, ok := e.idx[ref]
	if !ok {
		return nil
	}
	if cancelledQty > o.remaining {
		return overCancelError(ref, o.remaining, cancelledQty)
	}
	e.shrink(o, cancelledQty)
	return nil
}

// shrink decrements o's remaining quantity by delta, removing the order
// (and its level, if now empty) once remaining reaches zero. delta must
// already be bounds-checked against o.remaining by the caller.
func (e *Engine) shrink(o *order, delta itch.Quantity) {
	lvl := o.level
	lvl.adjustQty(o, delta, true)
	if o.remaining == 0 {
		lvl.remove(o)
		delete(e.idx, o.ref)
		if lvl.empty() {
			e.ladderFor(o.side).Remove(lvl)
		}
	}
}

// ApplyDelete handles OrderDelete. Absent refs are discarded silently.
func (e *Engine) ApplyDelete(ref itch.OrderRef) error {
	o, ok := e.idx[ref]
	if !ok {
		return nil
	}
	lvl := o.level
	lvl.remove(o)
	delete(e.idx, ref)
	if lvl.empty() {
		e.ladderFor(o.side).Remove(lvl)
	}
	return nil
}

// ApplyReplace handles OrderReplace: an atomic delete of oldRef followed
// by an add of newRef at the original order's side. If oldRef is absent
// the whole replace is discarded and newRef must not be inserted, per
// §4.5. Returns ErrDuplicateOrderRef if newRef is already live.
func (e *Engine) ApplyReplace(oldRef, newRef itch.OrderRef, qty itch.Quantity, price itch.Price) error {
	o, ok := e.idx[oldRef]
	if !ok {
		return nil
	}
	if _, exists := e.idx[newRef]; exists {
		return duplicateOrderRefError(newRef)
	}

	side := o.side
	lvl := o.level
	lvl.remove(o)
	delete(e.idx, oldRef)
	if lvl.empty() {
		e.ladderFor(side).Remove(lvl)
	}

	return e.ApplyAdd(newRef, side, qty, price)
}
