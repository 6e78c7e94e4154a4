// Copyright (c) 2025 Neomantra Corp

package main

import (
	"github.com/nimblemarkets-labs/itch-lob-go/book"
	"github.com/nimblemarkets-labs/itch-lob-go/internal/runsummary"
	"github.com/nimblemarkets-labs/itch-lob-go/itch"
	"github.com/nimblemarkets-labs/itch-lob-go/locate"
)

// bookVisitor drives the symbol filter and order book engine from the
// decoded message stream, emitting a snapshot to every sink after each
// applied book-mutating event. It implements itch.Visitor directly;
// reference/administrative messages it doesn't care about fall through to
// the embedded NullVisitor.
type bookVisitor struct {
	itch.NullVisitor

	filter *locate.Filter
	engine *book.Engine
	sinks  []book.Sink
	depth  int

	summary *runsummary.Summary
}

func (v *bookVisitor) emit(timestampNs uint64) error {
	snap := v.engine.Snapshot(timestampNs, v.depth)
	v.summary.ObserveSnapshot()
	for _, s := range v.sinks {
		if err := s.Accept(snap); err != nil {
			return err
		}
	}
	return nil
}

func (v *bookVisitor) OnStockDirectory(msg *itch.StockDirectoryMsg) error {
	v.filter.ObserveStockDirectory(msg)
	return nil
}

func (v *bookVisitor) OnAddOrder(msg *itch.AddOrderMsg) error {
	return v.applyAdd(msg.StockLocate, msg.Timestamp, msg.OrderRef, msg.Side, msg.Shares, msg.Price)
}

func (v *bookVisitor) OnAddOrderMPID(msg *itch.AddOrderMPIDMsg) error {
	a := msg.AsAddOrder()
	return v.applyAdd(msg.StockLocate, msg.Timestamp, a.OrderRef, a.Side, a.Shares, a.Price)
}

func (v *bookVisitor) applyAdd(locateID uint16, timestampNs uint64, ref itch.OrderRef, side itch.Side, qty itch.Quantity, price itch.Price) error {
	if !v.filter.AcceptsLocate(locateID) {
		return nil
	}
	if err := v.engine.ApplyAdd(ref, side, qty, price); err != nil {
		return err
	}
	v.filter.TrackOrder(ref)
	return v.emit(timestampNs)
}

func (v *bookVisitor) OnOrderExecuted(msg *itch.OrderExecutedMsg) error {
	return v.applyShrink(msg.Timestamp, msg.OrderRef, msg.ExecutedShares, v.engine.ApplyExecute)
}

func (v *bookVisitor) OnOrderExecutedWithPrice(msg *itch.OrderExecutedWithPriceMsg) error {
	return v.applyShrink(msg.Timestamp, msg.OrderRef, msg.ExecutedShares, v.engine.ApplyExecuteWithPrice)
}

func (v *bookVisitor) OnOrderCancel(msg *itch.OrderCancelMsg) error {
	return v.applyShrink(msg.Timestamp, msg.OrderRef, msg.CancelledShares, v.engine.ApplyCancel)
}

func (v *bookVisitor) applyShrink(timestampNs uint64, ref itch.OrderRef, qty itch.Quantity, apply func(itch.OrderRef, itch.Quantity) error) error {
	if !v.filter.AcceptsOrder(ref) {
		return nil
	}
	if err := apply(ref, qty); err != nil {
		return err
	}
	if !v.engine.Contains(ref) {
		v.filter.ForgetOrder(ref)
	}
	return v.emit(timestampNs)
}

func (v *bookVisitor) OnOrderDelete(msg *itch.OrderDeleteMsg) error {
	if !v.filter.AcceptsOrder(msg.OrderRef) {
		return nil
	}
	if err := v.engine.ApplyDelete(msg.OrderRef); err != nil {
		return err
	}
	v.filter.ForgetOrder(msg.OrderRef)
	return v.emit(msg.Timestamp)
}

func (v *bookVisitor) OnOrderReplace(msg *itch.OrderReplaceMsg) error {
	if !v.filter.AcceptsOrder(msg.OriginalOrderRef) {
		return nil
	}
	if err := v.engine.ApplyReplace(msg.OriginalOrderRef, msg.NewOrderRef, msg.Shares, msg.Price); err != nil {
		return err
	}
	v.filter.ForgetOrder(msg.OriginalOrderRef)
	v.filter.TrackOrder(msg.NewOrderRef)
	return v.emit(msg.Timestamp)
}

func (v *bookVisitor) OnUnknownTag(tag byte) error {
	v.summary.ObserveUnknownTag()
	return nil
}
