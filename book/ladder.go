// Copyright (c) 2025 Neomantra Corp

package book

import "github.com/nimblemarkets-labs/itch-lob-go/itch"

// ladder is a self-balancing ordered map from Price to *priceLevel, one
// per book side. Bids order descending (best bid first); asks order
// ascending (best ask first). Insert and Find run in O(log L) where L is
// the number of live levels. Remove is not O(log L): it recomputes each
// ancestor's balance factor from full subtree heights, which visits every
// level below that ancestor, so a removal can cost O(L).
type ladder struct {
	root       *priceLevel
	size       int
	descending bool
}

func newLadder(descending bool) *ladder {
	return &ladder{descending: descending}
}

func (t *ladder) Len() int {
	return t.size
}

// compare orders a against b per the ladder's direction: negative means a
// sorts before b.
func (t *ladder) compare(a, b itch.Price) int {
	if t.descending {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Best returns the best (first-iterated) level, or nil if the ladder is
// empty.
func (t *ladder) Best() *priceLevel {
	if t.root == nil {
		return nil
	}
	node := t.root
	for node.left != nil {
		node = node.left
	}
	return node
}

// Find returns the level at price, or nil.
func (t *ladder) Find(price itch.Price) *priceLevel {
	node := t.root
	for node != nil {
		switch t.compare(price, node.price) {
		case 0:
			return node
		case -1:
			node = node.left
		default:
			node = node.right
		}
	}
	return nil
}

// GetOrCreate returns the level at price, inserting an empty one first if
// none exists.
func (t *ladder) GetOrCreate(price itch.Price) *priceLevel {
	if l := t.Find(price); l != nil {
		return l
	}
	l := &priceLevel{price: price}
	t.insert(l)
	return l
}

func (t *ladder) insert(level *priceLevel) {
	if t.root == nil {
		t.root = level
		t.size++
		return
	}

	parent := t.root
	var isLeft bool
	for {
		if t.compare(level.price, parent.price) < 0 {
			if parent.left == nil {
				parent.left = level
				level.parent = parent
				isLeft = true
				break
			}
			parent = parent.left
		} else {
			if parent.right == nil {
				parent.right = level
				level.parent = parent
				isLeft = false
				break
			}
			parent = parent.right
		}
	}

	t.size++
	t.rebalanceInsert(level, parent, isLeft)
}

// Remove excises level from the tree entirely. Callers must ensure level
// is already empty (no live orders) before calling.
func (t *ladder) Remove(level *priceLevel) {
	if level == nil {
		return
	}

	var replacement, parent *priceLevel

	switch {
	case level.left == nil && level.right == nil:
		replacement = nil
		parent = level.parent
	case level.left == nil:
		replacement = level.right
		parent = level.parent
	case level.right == nil:
		replacement = level.left
		parent = level.parent
	default:
		successor := level.right
		for successor.left != nil {
			successor = successor.left
		}

		level.price = successor.price
		level.totalQty = successor.totalQty
		level.count = successor.count
		level.head = successor.head
		level.tail = successor.tail
		for o := level.head; o != nil; o = o.next {
			o.level = level
		}

		if successor.parent == level {
			level.right = successor.right
			if successor.right != nil {
				successor.right.parent = level
			}
			parent = level
		} else {
			successor.parent.left = successor.right
			if successor.right != nil {
				successor.right.parent = successor.parent
			}
			parent = successor.parent
		}
		t.size--
		t.rebalanceRemove(parent)
		return
	}

	if parent == nil {
		t.root = replacement
	} else if parent.left == level {
		parent.left = replacement
	} else {
		parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = parent
	}

	t.size--
	if parent != nil {
		t.rebalanceRemove(parent)
	}
}

func (t *ladder) rebalanceInsert(node, parent *priceLevel, isLeft bool) {
	for parent != nil {
		if isLeft {
			parent.balance--
		} else {
			parent.balance++
		}

		if parent.balance == 0 {
			break
		}
		if parent.balance == -2 || parent.balance == 2 {
			t.rebalance(parent)
			break
		}

		node = parent
		parent = node.parent
		if parent != nil {
			isLeft = parent.left == node
		}
	}
}

func (t *ladder) rebalanceRemove(node *priceLevel) {
	for node != nil {
		oldBalance := node.balance
		node.balance = t.height(node.right) - t.height(node.left)

		if node.balance == -2 || node.balance == 2 {
			node = t.rebalance(node)
			if node.balance == -1 || node.balance == 1 {
				break
			}
		} else if oldBalance == 0 {
			break
		}
		node = node.parent
	}
}

func (t *ladder) height(node *priceLevel) int {
	if node == nil {
		return 0
	}
	l, r := t.height(node.left), t.height(node.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (t *ladder) rebalance(node *priceLevel) *priceLevel {
	if node.balance == -2 {
		if node.left.balance <= 0 {
			return t.rotateRight(node)
		}
		t.rotateLeft(node.left)
		return t.rotateRight(node)
	}
	if node.balance == 2 {
		if node.right.balance >= 0 {
			return t.rotateLeft(node)
		}
		t.rotateRight(node.right)
		return t.rotateLeft(node)
	}
	return node
}

func (t *ladder) rotateLeft(node *priceLevel) *priceLevel {
	pivot := node.right
	parent := node.parent

	node.right = pivot.left
	if node.right != nil {
		node.right.parent = node
	}
	pivot.left = node
	node.parent = pivot

	pivot.parent = parent
	if parent == nil {
		t.root = pivot
	} else if parent.left == node {
		parent.left = pivot
	} else {
		parent.right = pivot
	}

	node.balance = node.balance - 1 - maxInt(0, pivot.balance)
	pivot.balance = pivot.balance - 1 + minInt(0, node.balance)
	return pivot
}

func (t *ladder) rotateRight(node *priceLevel) *priceLevel {
	pivot := node.left
	parent := node.parent

	node.left = pivot.right
	if node.left != nil {
		node.left.parent = node
	}
	pivot.right = node
	node.parent = pivot

	pivot.parent = parent
	if parent == nil {
		t.root = pivot
	} else if parent.left == node {
		parent.left = pivot
	} else {
		parent.right = pivot
	}

	node.balance = node.balance + 1 - minInt(0, pivot.balance)
	pivot.balance = pivot.balance + 1 + maxInt(0, node.balance)
	return pivot
}

// ForEachBest walks the ladder best-first, stopping early if fn returns
// false. Used by the emitter to fill the top-K snapshot without
// allocating a full sorted slice of levels.
func (t *ladder) ForEachBest(fn func(*priceLevel) bool) {
	node := t.Best()
	for node != nil && fn(node) {
		node = t.successor(node)
	}
}

// successor returns the next level in iteration order after node.
func (t *ladder) successor(node *priceLevel) *priceLevel {
	if node.right != nil {
		n := node.right
		for n.left != nil {
			n = n.left
		}
		return n
	}
	n, parent := node, node.parent
	for parent != nil && n == parent.right {
		n = parent
		parent = parent.parent
	}
	return parent
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
