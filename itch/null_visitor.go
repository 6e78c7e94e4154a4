// Copyright (c) 2025 Neomantra Corp

package itch

// NullVisitor is a no-op implementation of Visitor, useful for embedding
// when only a subset of message types is of interest.
type NullVisitor struct{}

func (v *NullVisitor) OnSystemEvent(msg *SystemEventMsg) error                     { return nil }
func (v *NullVisitor) OnStockDirectory(msg *StockDirectoryMsg) error               { return nil }
func (v *NullVisitor) OnStockTradingAction(msg *StockTradingActionMsg) error       { return nil }
func (v *NullVisitor) OnRegSHO(msg *RegSHOMsg) error                               { return nil }
func (v *NullVisitor) OnMarketParticipantPosition(msg *MarketParticipantPositionMsg) error {
	return nil
}
func (v *NullVisitor) OnMWCBDeclineLevel(msg *MWCBDeclineLevelMsg) error     { return nil }
func (v *NullVisitor) OnMWCBStatus(msg *MWCBStatusMsg) error                 { return nil }
func (v *NullVisitor) OnIPOQuoting(msg *IPOQuotingMsg) error                 { return nil }
func (v *NullVisitor) OnLULDAuctionCollar(msg *LULDAuctionCollarMsg) error   { return nil }
func (v *NullVisitor) OnOperationalHalt(msg *OperationalHaltMsg) error       { return nil }

func (v *NullVisitor) OnAddOrder(msg *AddOrderMsg) error                         { return nil }
func (v *NullVisitor) OnAddOrderMPID(msg *AddOrderMPIDMsg) error                 { return nil }
func (v *NullVisitor) OnOrderExecuted(msg *OrderExecutedMsg) error               { return nil }
func (v *NullVisitor) OnOrderExecutedWithPrice(msg *OrderExecutedWithPriceMsg) error {
	return nil
}
func (v *NullVisitor) OnOrderCancel(msg *OrderCancelMsg) error   { return nil }
func (v *NullVisitor) OnOrderDelete(msg *OrderDeleteMsg) error   { return nil }
func (v *NullVisitor) OnOrderReplace(msg *OrderReplaceMsg) error { return nil }

func (v *NullVisitor) OnTrade(msg *TradeMsg) error            { return nil }
func (v *NullVisitor) OnCrossTrade(msg *CrossTradeMsg) error  { return nil }
func (v *NullVisitor) OnBrokenTrade(msg *BrokenTradeMsg) error { return nil }
func (v *NullVisitor) OnNOII(msg *NOIIMsg) error              { return nil }
func (v *NullVisitor) OnRPII(msg *RPIIMsg) error              { return nil }
func (v *NullVisitor) OnDLCR(msg *DLCRMsg) error              { return nil }

func (v *NullVisitor) OnUnknownTag(tag byte) error { return nil }
func (v *NullVisitor) OnStreamEnd() error          { return nil }
