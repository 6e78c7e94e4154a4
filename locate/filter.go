// Copyright (c) 2025 Neomantra Corp

// Package locate resolves a target stock symbol to its feed-assigned
// StockLocate and decides which subsequent messages belong to it. Most
// message types carry an explicit StockLocate in their header; the
// order-lifecycle messages (OrderExecuted, OrderExecutedWithPrice,
// OrderCancel, OrderDelete, OrderReplace) do not and are instead routed by
// whether their OrderRef was previously seen on an AddOrder/AddOrderMPID
// for the resolved locate.
package locate

import (
	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

// Filter tracks the resolution state for a single target symbol across a
// capture. Resolution is permanent: once a StockDirectory message for the
// target symbol is seen, its locate is fixed for the rest of the run, per
// the one-symbol-per-trading-day contract ITCH capture files guarantee.
type Filter struct {
	symbol   string
	resolved bool
	locate   itch.StockLocate

	// orders tracks OrderRefs confirmed to belong to the resolved locate,
	// so that locate-less order-lifecycle messages can be routed by
	// membership alone.
	orders map[itch.OrderRef]struct{}
}

// NewFilter returns a Filter for the given target symbol. Matching is
// exact after space-stripping, per itch.Symbol.Equal.
func NewFilter(symbol string) *Filter {
	return &Filter{
		symbol: symbol,
		orders: make(map[itch.OrderRef]struct{}),
	}
}

// Symbol returns the target symbol this Filter was constructed for.
func (f *Filter) Symbol() string {
	return f.symbol
}

// Resolved reports whether the target symbol's locate has been learned
// yet.
func (f *Filter) Resolved() bool {
	return f.resolved
}

// Locate returns the resolved StockLocate and true, or zero and false if
// resolution hasn't happened yet.
func (f *Filter) Locate() (itch.StockLocate, bool) {
	return f.locate, f.resolved
}

// ObserveStockDirectory inspects a StockDirectory message and resolves the
// filter if it names the target symbol and resolution hasn't already
// happened. Returns true exactly once, on the message that performs
// resolution.
func (f *Filter) ObserveStockDirectory(msg *itch.StockDirectoryMsg) bool {
	if f.resolved || !msg.Stock.Equal(f.symbol) {
		return false
	}
	f.resolved = true
	f.locate = itch.StockLocate(msg.StockLocate)
	return true
}

// AcceptsLocate reports whether a message carrying an explicit
// StockLocate belongs to the target symbol.
func (f *Filter) AcceptsLocate(locate uint16) bool {
	return f.resolved && itch.StockLocate(locate) == f.locate
}

// TrackOrder records that orderRef was added under the target locate, so
// that later locate-less messages referencing it route correctly. Callers
// should only call this after confirming AcceptsLocate on the add.
func (f *Filter) TrackOrder(orderRef itch.OrderRef) {
	f.orders[orderRef] = struct{}{}
}

// ForgetOrder drops orderRef from the tracked set, called once an order
// is fully deleted or replaced away. Bounds the set's memory to the
// book's live order count rather than the whole capture's order count.
func (f *Filter) ForgetOrder(orderRef itch.OrderRef) {
	delete(f.orders, orderRef)
}

// AcceptsOrder reports whether orderRef was previously tracked as
// belonging to the target locate. Used to route OrderExecuted,
// OrderExecutedWithPrice, OrderCancel, OrderDelete and the OriginalOrderRef
// half of OrderReplace, none of which carry an explicit locate.
func (f *Filter) AcceptsOrder(orderRef itch.OrderRef) bool {
	_, ok := f.orders[orderRef]
	return ok
}

// TrackedOrderCount returns the number of orders currently tracked as
// belonging to the target locate, for diagnostics.
func (f *Filter) TrackedOrderCount() int {
	return len(f.orders)
}
