// Copyright (c) 2025 Neomantra Corp

package itch

// Visitor receives every decoded ITCH message in file order. Implementations
// that only care about the book-mutating subset (A, F, E, C, X, D, U)
// should embed NullVisitor and override the handlers they need.
type Visitor interface {
	OnSystemEvent(msg *SystemEventMsg) error
	OnStockDirectory(msg *StockDirectoryMsg) error
	OnStockTradingAction(msg *StockTradingActionMsg) error
	OnRegSHO(msg *RegSHOMsg) error
	OnMarketParticipantPosition(msg *MarketParticipantPositionMsg) error
	OnMWCBDeclineLevel(msg *MWCBDeclineLevelMsg) error
	OnMWCBStatus(msg *MWCBStatusMsg) error
	OnIPOQuoting(msg *IPOQuotingMsg) error
	OnLULDAuctionCollar(msg *LULDAuctionCollarMsg) error
	OnOperationalHalt(msg *OperationalHaltMsg) error

	OnAddOrder(msg *AddOrderMsg) error
	OnAddOrderMPID(msg *AddOrderMPIDMsg) error
	OnOrderExecuted(msg *OrderExecutedMsg) error
	OnOrderExecutedWithPrice(msg *OrderExecutedWithPriceMsg) error
	OnOrderCancel(msg *OrderCancelMsg) error
	OnOrderDelete(msg *OrderDeleteMsg) error
	OnOrderReplace(msg *OrderReplaceMsg) error

	OnTrade(msg *TradeMsg) error
	OnCrossTrade(msg *CrossTradeMsg) error
	OnBrokenTrade(msg *BrokenTradeMsg) error
	OnNOII(msg *NOIIMsg) error
	OnRPII(msg *RPIIMsg) error
	OnDLCR(msg *DLCRMsg) error

	OnUnknownTag(tag byte) error
	OnStreamEnd() error
}
