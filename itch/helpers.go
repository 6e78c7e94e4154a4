// Copyright (c) 2025 Neomantra Corp

package itch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Price is a fixed-point price, 4 implied decimal places (ten-thousandths
// of a dollar). Zero is the "no price" sentinel and is never a live order
// price.
type Price uint32

// NoPrice is the sentinel value for "no price", used by certain reference
// messages.
const NoPrice Price = 0

// Float64 returns the price as a float64 dollar amount.
func (p Price) Float64() float64 {
	return float64(p) / 10000.0
}

// String formats the price with 4 implied decimal places, e.g. 1234567 ->
// "123.4567".
func (p Price) String() string {
	return fmt.Sprintf("%d.%04d", uint32(p)/10000, uint32(p)%10000)
}

// Price8 is a fixed-point price with 8 implied decimal places, used by the
// wider price fields of NOII, IPO quoting and MWCB decline-level records
// (see spec's open question on preserving the wider width end-to-end).
type Price8 uint64

// Float64 returns the price as a float64 dollar amount.
func (p Price8) Float64() float64 {
	return float64(p) / 1e8
}

// Quantity is a share count.
type Quantity uint32

// OrderRef is the exchange-assigned unique identifier for a resting order,
// unique within the trading day across all symbols and sides.
type OrderRef uint64

// StockLocate is the feed-assigned numeric alias for a symbol for the
// trading day.
type StockLocate uint16

///////////////////////////////////////////////////////////////////////////////

// Symbol is an 8-byte right-space-padded ASCII stock symbol, as it appears
// on the wire.
type Symbol [8]byte

// String trims the trailing padding spaces.
func (s Symbol) String() string {
	return string(bytes.TrimRight(s[:], " "))
}

// Equal compares a Symbol against a plain string after space-stripping,
// per spec's symbol-equality contract.
func (s Symbol) Equal(sym string) bool {
	return s.String() == sym
}

// MarshalJSON renders a Symbol as its trimmed string form rather than the
// raw byte array, so decoded messages read naturally in JSON output.
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a Symbol back from its trimmed string form.
func (s *Symbol) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	*s = SymbolFromString(str)
	return nil
}

// symbolFromBytes copies a borrowed 8-byte slice into a Symbol value. This
// is the only copy permitted by the zero-copy contract: decoders never
// retain their source frame slice beyond field extraction.
func symbolFromBytes(b []byte) Symbol {
	var s Symbol
	copy(s[:], b)
	return s
}

// SymbolFromString right-pads sym with spaces to 8 bytes, for constructing
// synthetic frames in tests.
func SymbolFromString(sym string) Symbol {
	var s Symbol
	for i := range s {
		s[i] = ' '
	}
	copy(s[:], sym)
	return s
}
