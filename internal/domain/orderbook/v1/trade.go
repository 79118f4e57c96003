package orderbookv1

// TradeInfo is one side of an executed trade: the resting order's id, the
// price it was resting at when the cross happened, and the filled quantity.
type TradeInfo struct {
	OrderID  OrderID  `json:"orderID"`
	Price    Price    `json:"price"`
	Quantity Quantity `json:"quantity"`
}

// Trade pairs the bid and ask sides of one fill. Both sides carry the same
// quantity; prices may differ because each side reports its own resting
// price.
type Trade struct {
	Bid TradeInfo `json:"bid"`
	Ask TradeInfo `json:"ask"`
}

// Trades is the sequence of trades produced by one book operation.
type Trades []Trade

// LevelInfo is one aggregated price level: the price and the sum of
// remaining quantities resting there.
type LevelInfo struct {
	Price    Price    `json:"price"`
	Quantity Quantity `json:"quantity"`
}

// LevelInfos is a ladder of aggregated levels in the ladder's natural order.
type LevelInfos []LevelInfo

// LevelsSnapshot is a consistent view of both ladders: bids best (highest)
// first, asks best (lowest) first.
type LevelsSnapshot struct {
	Bids LevelInfos `json:"bids"`
	Asks LevelInfos `json:"asks"`
}
