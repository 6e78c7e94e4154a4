// Copyright (c) 2025 Neomantra Corp

package book

import "github.com/nimblemarkets-labs/itch-lob-go/itch"

// order is a single resting order, intrusively linked into its price
// level's FIFO queue. The global index points directly at these nodes so
// that Cancel/Execute/Delete run in O(1) once the index lookup resolves.
type order struct {
	ref       itch.OrderRef
	side      itch.Side
	remaining itch.Quantity

	next, prev *order
	level      *priceLevel
}

// priceLevel aggregates every live order at one price on one side. It is
// also an AVL tree node: Left/Right/Parent/Balance make priceLevel the
// tree's own node type rather than a boxed payload, avoiding a second
// allocation per level.
type priceLevel struct {
	price    itch.Price
	totalQty itch.Quantity
	count    int

	head, tail *order

	left, right, parent *priceLevel
	balance              int
}

// pushBack appends o to the level's FIFO order queue and updates
// aggregates, maintaining I1.
func (l *priceLevel) pushBack(o *order) {
	o.level = l
	o.prev = l.tail
	o.next = nil
	if l.tail != nil {
		l.tail.next = o
	} else {
		l.head = o
	}
	l.tail = o
	l.count++
	l.totalQty += o.remaining
}

// remove unlinks o from the level's FIFO queue and updates aggregates.
// Does not touch the tree; callers remove an emptied level separately.
func (l *priceLevel) remove(o *order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.next, o.prev, o.level = nil, nil, nil
	l.count--
	l.totalQty -= o.remaining
}

// adjustQty changes o.remaining by delta (negative on execute/cancel) and
// keeps the level's aggregate in lock-step, per I1.
func (l *priceLevel) adjustQty(o *order, delta itch.Quantity, negative bool) {
	if negative {
		o.remaining -= delta
		l.totalQty -= delta
	} else {
		o.remaining += delta
		l.totalQty += delta
	}
}

// empty reports whether the level has no resting orders left.
func (l *priceLevel) empty() bool {
	return l.count == 0
}
