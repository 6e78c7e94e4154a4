// Copyright (c) 2025 Neomantra Corp

package itch

// Visit decodes a single frame body (whose first byte is tag) and dispatches
// it to the matching Visitor method. Unknown tags call OnUnknownTag rather
// than returning an error, matching spec's "recoverable, counted" policy for
// unknown message types (the frame decoder already knows the length and has
// skipped correctly; by the time a body reaches here its length has been
// honored either way).
func Visit(body []byte, visitor Visitor) error {
	if len(body) == 0 {
		return ErrShortFrame
	}
	tag := Tag(body[0])
	switch tag {
	case TagSystemEvent:
		var m SystemEventMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnSystemEvent(&m)
	case TagStockDirectory:
		var m StockDirectoryMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnStockDirectory(&m)
	case TagStockTradingAction:
		var m StockTradingActionMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnStockTradingAction(&m)
	case TagRegSHO:
		var m RegSHOMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnRegSHO(&m)
	case TagMarketParticipantPosition:
		var m MarketParticipantPositionMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnMarketParticipantPosition(&m)
	case TagMWCBDeclineLevel:
		var m MWCBDeclineLevelMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnMWCBDeclineLevel(&m)
	case TagMWCBStatus:
		var m MWCBStatusMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnMWCBStatus(&m)
	case TagIPOQuotingPeriod:
		var m IPOQuotingMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnIPOQuoting(&m)
	case TagLULDAuctionCollar:
		var m LULDAuctionCollarMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnLULDAuctionCollar(&m)
	case TagOperationalHalt:
		var m OperationalHaltMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOperationalHalt(&m)

	case TagAddOrder:
		var m AddOrderMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnAddOrder(&m)
	case TagAddOrderMPID:
		var m AddOrderMPIDMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnAddOrderMPID(&m)
	case TagOrderExecuted:
		var m OrderExecutedMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOrderExecuted(&m)
	case TagOrderExecutedWithPrice:
		var m OrderExecutedWithPriceMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOrderExecutedWithPrice(&m)
	case TagOrderCancel:
		var m OrderCancelMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOrderCancel(&m)
	case TagOrderDelete:
		var m OrderDeleteMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOrderDelete(&m)
	case TagOrderReplace:
		var m OrderReplaceMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnOrderReplace(&m)

	case TagTrade:
		var m TradeMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnTrade(&m)
	case TagCrossTrade:
		var m CrossTradeMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnCrossTrade(&m)
	case TagBrokenTrade:
		var m BrokenTradeMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnBrokenTrade(&m)
	case TagNOII:
		var m NOIIMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnNOII(&m)
	case TagRPII:
		var m RPIIMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnRPII(&m)
	case TagDLCR:
		var m DLCRMsg
		if err := m.Fill_Raw(body); err != nil {
			return err
		}
		return visitor.OnDLCR(&m)

	default:
		return visitor.OnUnknownTag(body[0])
	}
}
