// Copyright (c) 2025 Neomantra Corp

package book

import (
	"fmt"

	"github.com/nimblemarkets-labs/itch-lob-go/itch"
)

var (
	// ErrOverExecute is returned when OrderExecuted/OrderExecutedWithPrice
	// reports executed shares greater than an order's remaining quantity.
	// Fatal: it indicates either feed corruption or a gap in the capture.
	ErrOverExecute = fmt.Errorf("execution exceeds order's remaining quantity")

	// ErrOverCancel is returned when OrderCancel reports cancelled shares
	// greater than an order's remaining quantity. Fatal for the same reason
	// as ErrOverExecute.
	ErrOverCancel = fmt.Errorf("cancellation exceeds order's remaining quantity")

	// ErrDuplicateOrderRef is returned when AddOrder/AddOrderMPID/OrderReplace
	// would insert an OrderRef already live in the index, violating I5.
	ErrDuplicateOrderRef = fmt.Errorf("order reference already live")
)

func overExecuteError(ref itch.OrderRef, remaining, executed itch.Quantity) error {
	return fmt.Errorf("%w: ref=%d remaining=%d executed=%d", ErrOverExecute, ref, remaining, executed)
}

func overCancelError(ref itch.OrderRef, remaining, cancelled itch.Quantity) error {
	return fmt.Errorf("%w: ref=%d remaining=%d cancelled=%d", ErrOverCancel, ref, remaining, cancelled)
}

func duplicateOrderRefError(ref itch.OrderRef) error {
	return fmt.Errorf("%w: ref=%d", ErrDuplicateOrderRef, ref)
}
