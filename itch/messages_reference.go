// Copyright (c) 2025 Neomantra Corp
//
// Reference/administrative ITCH 5.0 messages: none of these mutate the
// order book, but their lengths must be honored by the frame decoder to
// stay framed, and StockDirectory (R) is how the symbol filter (component D)
// resolves a stock locate.

package itch

import "encoding/binary"

///////////////////////////////////////////////////////////////////////////////

// SystemEventMsg ('S') announces a market-wide event.
type SystemEventMsg struct {
	MessageHeader
	EventCode EventCode `json:"event_code"`
}

const SystemEventMsg_Size = MessageHeaderSize + 1

func (m *SystemEventMsg) Fill_Raw(b []byte) error {
	if len(b) < SystemEventMsg_Size {
		return shortFrameError(TagSystemEvent, len(b), SystemEventMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.EventCode = EventCode(b[11])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// StockDirectoryMsg ('R') is the feed's per-symbol reference record. The
// first one whose Stock equals the target symbol fixes that symbol's
// StockLocate for the rest of the run (component D).
type StockDirectoryMsg struct {
	MessageHeader
	Stock                   Symbol                   `json:"stock"`
	MarketCategory          MarketCategory           `json:"market_category"`
	FinancialStatus         FinancialStatusIndicator `json:"financial_status"`
	RoundLotSize            uint32                   `json:"round_lot_size"`
	RoundLotsOnly           bool                     `json:"round_lots_only"`
	IssueClassification     IssueClassification      `json:"issue_classification"`
	IssueSubType            [2]byte                  `json:"issue_sub_type"`
	Authenticity            byte                     `json:"authenticity"`
	ShortSaleThreshold      bool                     `json:"short_sale_threshold"`
	IPOFlag                 byte                     `json:"ipo_flag"`
	LULDReferencePriceTier  byte                     `json:"luld_reference_price_tier"`
	ETPFlag                 bool                     `json:"etp_flag"`
	ETPLeverageFactor       uint32                   `json:"etp_leverage_factor"`
	InverseIndicator        bool                     `json:"inverse_indicator"`
}

const StockDirectoryMsg_Size = MessageHeaderSize + 28

func (m *StockDirectoryMsg) Fill_Raw(b []byte) error {
	if len(b) < StockDirectoryMsg_Size {
		return shortFrameError(TagStockDirectory, len(b), StockDirectoryMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.MarketCategory = MarketCategory(b[19])
	m.FinancialStatus = FinancialStatusIndicator(b[20])
	m.RoundLotSize = binary.BigEndian.Uint32(b[21:25])
	m.RoundLotsOnly = b[25] == 'Y'
	m.IssueClassification = IssueClassification(b[26])
	copy(m.IssueSubType[:], b[27:29])
	m.Authenticity = b[29]
	m.ShortSaleThreshold = b[30] == 'Y'
	m.IPOFlag = b[31]
	m.LULDReferencePriceTier = b[32]
	m.ETPFlag = b[33] == 'Y'
	m.ETPLeverageFactor = binary.BigEndian.Uint32(b[34:38])
	m.InverseIndicator = b[38] == 'Y'
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// StockTradingActionMsg ('H') reports a trading state change for a symbol.
type StockTradingActionMsg struct {
	MessageHeader
	Stock        Symbol       `json:"stock"`
	TradingState TradingState `json:"trading_state"`
	Reason       [4]byte      `json:"reason"`
}

const StockTradingActionMsg_Size = MessageHeaderSize + 14

func (m *StockTradingActionMsg) Fill_Raw(b []byte) error {
	if len(b) < StockTradingActionMsg_Size {
		return shortFrameError(TagStockTradingAction, len(b), StockTradingActionMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.TradingState = TradingState(b[19])
	// b[20] is reserved
	copy(m.Reason[:], b[21:25])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// RegSHOMsg ('Y') reports a Reg SHO short-sale price test restriction.
type RegSHOMsg struct {
	MessageHeader
	Stock  Symbol       `json:"stock"`
	Action RegSHOAction `json:"action"`
}

const RegSHOMsg_Size = MessageHeaderSize + 9

func (m *RegSHOMsg) Fill_Raw(b []byte) error {
	if len(b) < RegSHOMsg_Size {
		return shortFrameError(TagRegSHO, len(b), RegSHOMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.Action = RegSHOAction(b[19])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// MarketParticipantPositionMsg ('L') reports a market maker's registration.
type MarketParticipantPositionMsg struct {
	MessageHeader
	MPID                   [4]byte                `json:"mpid"`
	Stock                  Symbol                  `json:"stock"`
	PrimaryMarketMaker     bool                    `json:"primary_market_maker"`
	MarketMakerMode        MarketMakerMode         `json:"market_maker_mode"`
	MarketParticipantState MarketParticipantState  `json:"market_participant_state"`
}

const MarketParticipantPositionMsg_Size = MessageHeaderSize + 15

func (m *MarketParticipantPositionMsg) Fill_Raw(b []byte) error {
	if len(b) < MarketParticipantPositionMsg_Size {
		return shortFrameError(TagMarketParticipantPosition, len(b), MarketParticipantPositionMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	copy(m.MPID[:], b[11:15])
	m.Stock = symbolFromBytes(b[15:23])
	m.PrimaryMarketMaker = b[23] == 'Y'
	m.MarketMakerMode = MarketMakerMode(b[24])
	m.MarketParticipantState = MarketParticipantState(b[25])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// MWCBDeclineLevelMsg ('V') reports the day's three market-wide circuit
// breaker decline levels, as wide Price8 values per spec's NOII/IPO width
// carve-out.
type MWCBDeclineLevelMsg struct {
	MessageHeader
	Level1 Price8 `json:"level1"`
	Level2 Price8 `json:"level2"`
	Level3 Price8 `json:"level3"`
}

const MWCBDeclineLevelMsg_Size = MessageHeaderSize + 24

func (m *MWCBDeclineLevelMsg) Fill_Raw(b []byte) error {
	if len(b) < MWCBDeclineLevelMsg_Size {
		return shortFrameError(TagMWCBDeclineLevel, len(b), MWCBDeclineLevelMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Level1 = Price8(binary.BigEndian.Uint64(b[11:19]))
	m.Level2 = Price8(binary.BigEndian.Uint64(b[19:27]))
	m.Level3 = Price8(binary.BigEndian.Uint64(b[27:35]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// MWCBStatusMsg ('W') reports which circuit breaker level has been breached.
type MWCBStatusMsg struct {
	MessageHeader
	BreachedLevel byte `json:"breached_level"`
}

const MWCBStatusMsg_Size = MessageHeaderSize + 1

func (m *MWCBStatusMsg) Fill_Raw(b []byte) error {
	if len(b) < MWCBStatusMsg_Size {
		return shortFrameError(TagMWCBStatus, len(b), MWCBStatusMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.BreachedLevel = b[11]
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// IPOQuotingMsg ('K') updates an IPO's expected quotation release.
type IPOQuotingMsg struct {
	MessageHeader
	Stock               Symbol              `json:"stock"`
	ReleaseTime         uint32              `json:"release_time"` // seconds since midnight
	ReleaseQualifier    IPOReleaseQualifier `json:"release_qualifier"`
	IPOPrice            Price8              `json:"ipo_price"` // wide per spec's NOII/IPO width carve-out
}

const IPOQuotingMsg_Size = MessageHeaderSize + 21

func (m *IPOQuotingMsg) Fill_Raw(b []byte) error {
	if len(b) < IPOQuotingMsg_Size {
		return shortFrameError(TagIPOQuotingPeriod, len(b), IPOQuotingMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.ReleaseTime = binary.BigEndian.Uint32(b[19:23])
	m.ReleaseQualifier = IPOReleaseQualifier(b[23])
	m.IPOPrice = Price8(binary.BigEndian.Uint64(b[24:32]))
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// LULDAuctionCollarMsg ('J') reports the price collars around a LULD
// auction.
type LULDAuctionCollarMsg struct {
	MessageHeader
	Stock                  Symbol `json:"stock"`
	ReferencePrice         Price  `json:"reference_price"`
	UpperAuctionCollar     Price  `json:"upper_auction_collar"`
	LowerAuctionCollar     Price  `json:"lower_auction_collar"`
	AuctionCollarExtension uint32 `json:"auction_collar_extension"`
}

const LULDAuctionCollarMsg_Size = MessageHeaderSize + 24

func (m *LULDAuctionCollarMsg) Fill_Raw(b []byte) error {
	if len(b) < LULDAuctionCollarMsg_Size {
		return shortFrameError(TagLULDAuctionCollar, len(b), LULDAuctionCollarMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.ReferencePrice = Price(binary.BigEndian.Uint32(b[19:23]))
	m.UpperAuctionCollar = Price(binary.BigEndian.Uint32(b[23:27]))
	m.LowerAuctionCollar = Price(binary.BigEndian.Uint32(b[27:31]))
	m.AuctionCollarExtension = binary.BigEndian.Uint32(b[31:35])
	return nil
}

///////////////////////////////////////////////////////////////////////////////

// OperationalHaltMsg ('h') reports an operational (non-regulatory) halt.
type OperationalHaltMsg struct {
	MessageHeader
	Stock      Symbol                `json:"stock"`
	MarketCode byte                  `json:"market_code"`
	Action     OperationalHaltAction `json:"action"`
}

const OperationalHaltMsg_Size = MessageHeaderSize + 10

func (m *OperationalHaltMsg) Fill_Raw(b []byte) error {
	if len(b) < OperationalHaltMsg_Size {
		return shortFrameError(TagOperationalHalt, len(b), OperationalHaltMsg_Size)
	}
	FillMessageHeader_Raw(b, &m.MessageHeader)
	m.Stock = symbolFromBytes(b[11:19])
	m.MarketCode = b[19]
	m.Action = OperationalHaltAction(b[20])
	return nil
}
