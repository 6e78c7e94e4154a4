// Copyright (c) 2025 Neomantra Corp
//
// Order-book-mutating ITCH 5.0 messages (component C decoders for the
// messages component E actually applies). These never carry a Stock symbol
// after AddOrder/AddOrderMPID — X, D, E, C, U are routed by OrderRef lookup
// alone, per spec §4.4.

package itch

import "encoding/binary"

///////////////////////////////////////////////////////////////////////////////

// AddOrderMsg ('A') adds a new order to the book, with no attribution.
type AddOrderMsg struct {
	MessageHeader
	OrderRef OrderRef `json:"order_ref"`
	Side     Side     `json:"side"`
	Shares   Quantity `json:"shares"`
	Stock    Symbol   `json:"stock"`
	Price    Price    `json:"price"`
}

const AddOrderMsg_Size = MessageHeaderSize + 25

func (m *AddOrderMsg) Fill_Raw(b []byte) error {
	if len(b) < AddOrderMsg_Size {
		return shortFrameError(TagAddOrder, len(b), AddOrderMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.Side = Side(b[19])
	m.Shares = Quantity(binary.BigEndian.Uint32(b[20:24]))
	m.Stock = symbolFromBytes(b[24:32])
	m.Price = Price(binary.BigEndian.Uint32(b[32:36]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// AddOrderMPIDMsg ('F') adds a new order to the book with the submitting
// market participant's attribution.
type AddOrderMPIDMsg struct {
	MessageHeader
	OrderRef    OrderRef `json:"order_ref"`
	Side        Side     `json:"side"`
	Shares      Quantity `json:"shares"`
	Stock       Symbol   `json:"stock"`
	Price       Price    `json:"price"`
	Attribution [4]byte  `json:"attribution"`
}

const AddOrderMPIDMsg_Size = MessageHeaderSize + 29

func (m *AddOrderMPIDMsg) Fill_Raw(b []byte) error {
	if len(b) < AddOrderMPIDMsg_Size {
		return shortFrameError(TagAddOrderMPID, len(b), AddOrderMPIDMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.Side = Side(b[19])
	m.Shares = Quantity(binary.BigEndian.Uint32(b[20:24]))
	m.Stock = symbolFromBytes(b[24:32])
	m.Price = Price(binary.BigEndian.Uint32(b[32:36]))
	copy(m.Attribution[:], b[36:40])
	return nil
}

// AsAddOrder returns the AddOrderMsg view shared with the plain AddOrder
// path, dropping attribution. The engine treats 'A' and 'F' identically.
func (m *AddOrderMPIDMsg) AsAddOrder() AddOrderMsg {
	return AddOrderMsg{
		MessageHeader: m.MessageHeader,
		OrderRef:      m.OrderRef,
		Side:          m.Side,
		Shares:        m.Shares,
		Stock:         m.Stock,
		Price:         m.Price,
	}
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecutedMsg ('E') reports a full or partial execution against a
// resting order, at the order's own price.
type OrderExecutedMsg struct {
	MessageHeader
	OrderRef       OrderRef `json:"order_ref"`
	ExecutedShares Quantity `json:"executed_shares"`
	MatchNumber    uint64   `json:"match_number"`
}

const OrderExecutedMsg_Size = MessageHeaderSize + 20

func (m *OrderExecutedMsg) Fill_Raw(b []byte) error {
	if len(b) < OrderExecutedMsg_Size {
		return shortFrameError(TagOrderExecuted, len(b), OrderExecutedMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.ExecutedShares = Quantity(binary.BigEndian.Uint32(b[19:23]))
	m.MatchNumber = binary.BigEndian.Uint64(b[23:31])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderExecutedWithPriceMsg ('C') reports an execution at a price possibly
// different from the resting order's displayed price. The resting order's
// price is never altered by this message; only its remaining quantity.
type OrderExecutedWithPriceMsg struct {
	MessageHeader
	OrderRef        OrderRef `json:"order_ref"`
	ExecutedShares  Quantity `json:"executed_shares"`
	MatchNumber     uint64   `json:"match_number"`
	Printable       bool     `json:"printable"`
	ExecutionPrice  Price    `json:"execution_price"`
}

const OrderExecutedWithPriceMsg_Size = MessageHeaderSize + 25

func (m *OrderExecutedWithPriceMsg) Fill_Raw(b []byte) error {
	if len(b) < OrderExecutedWithPriceMsg_Size {
		return shortFrameError(TagOrderExecutedWithPrice, len(b), OrderExecutedWithPriceMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.ExecutedShares = Quantity(binary.BigEndian.Uint32(b[19:23]))
	m.MatchNumber = binary.BigEndian.Uint64(b[23:31])
	m.Printable = b[31] == 'Y'
	m.ExecutionPrice = Price(binary.BigEndian.Uint32(b[32:36]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderCancelMsg ('X') partially or fully cancels a resting order's
// remaining quantity.
type OrderCancelMsg struct {
	MessageHeader
	OrderRef         OrderRef `json:"order_ref"`
	CancelledShares  Quantity `json:"cancelled_shares"`
}

const OrderCancelMsg_Size = MessageHeaderSize + 12

func (m *OrderCancelMsg) Fill_Raw(b []byte) error {
	if len(b) < OrderCancelMsg_Size {
		return shortFrameError(TagOrderCancel, len(b), OrderCancelMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.CancelledShares = Quantity(binary.BigEndian.Uint32(b[19:23]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderDeleteMsg ('D') removes a resting order entirely, regardless of its
// remaining quantity.
type OrderDeleteMsg struct {
	MessageHeader
	OrderRef OrderRef `json:"order_ref"`
}

const OrderDeleteMsg_Size = MessageHeaderSize + 8

func (m *OrderDeleteMsg) Fill_Raw(b []byte) error {
	if len(b) < OrderDeleteMsg_Size {
		return shortFrameError(TagOrderDelete, len(b), OrderDeleteMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OrderReplaceMsg ('U') atomically deletes OriginalOrderRef and adds
// NewOrderRef at a new price/quantity, inheriting the original order's side.
type OrderReplaceMsg struct {
	MessageHeader
	OriginalOrderRef OrderRef `json:"original_order_ref"`
	NewOrderRef      OrderRef `json:"new_order_ref"`
	Shares           Quantity `json:"shares"`
	Price            Price    `json:"price"`
}

const OrderReplaceMsg_Size = MessageHeaderSize + 24

func (m *OrderReplaceMsg) Fill_Raw(b []byte) error {
	if len(b) < OrderReplaceMsg_Size {
		return shortFrameError(TagOrderReplace, len(b), OrderReplaceMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.OriginalOrderRef = OrderRef(binary.BigEndian.Uint64(b[11:19]))
	m.NewOrderRef = OrderRef(binary.BigEndian.Uint64(b[19:27]))
	m.Shares = Quantity(binary.BigEndian.Uint32(b[27:31]))
	m.Price = Price(binary.BigEndian.Uint32(b[31:35]))
	return nil
}
