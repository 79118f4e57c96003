// Package tradingpb holds the wire types for the trading.v1.TradingEngine
// gRPC service. The types are maintained by hand as a mirror of
// proto/trading/v1/trading.proto; the protobuf struct tags drive marshaling
// through the golang/protobuf runtime, so no generated code is checked in.
package tradingpb

import (
	"github.com/golang/protobuf/proto"
)

// Side is the wire form of an order side.
type Side int32

const (
	SideUnspecified Side = 0
	SideBuy         Side = 1
	SideSell        Side = 2
)

var sideName = map[int32]string{
	0: "SIDE_UNSPECIFIED",
	1: "SIDE_BUY",
	2: "SIDE_SELL",
}

func (x Side) String() string {
	return proto.EnumName(sideName, int32(x))
}

// OrderType is the wire form of an order's execution style.
type OrderType int32

const (
	OrderTypeUnspecified    OrderType = 0
	OrderTypeGoodTillCancel OrderType = 1
	OrderTypeGoodForDay     OrderType = 2
	OrderTypeMarket         OrderType = 3
	OrderTypeFillAndKill    OrderType = 4
	OrderTypeFillOrKill     OrderType = 5
)

var orderTypeName = map[int32]string{
	0: "ORDER_TYPE_UNSPECIFIED",
	1: "GOOD_TILL_CANCEL",
	2: "GOOD_FOR_DAY",
	3: "MARKET",
	4: "FILL_AND_KILL",
	5: "FILL_OR_KILL",
}

func (x OrderType) String() string {
	return proto.EnumName(orderTypeName, int32(x))
}

// OrderStatus reports the outcome of an add or modify call.
type OrderStatus int32

const (
	OrderStatusUnspecified OrderStatus = 0
	// OrderStatusAccepted: the order was processed and produced no trades.
	OrderStatusAccepted OrderStatus = 1
	// OrderStatusFilled: the order produced at least one trade.
	OrderStatusFilled OrderStatus = 2
	// OrderStatusRejected: the order referenced an unknown id.
	OrderStatusRejected OrderStatus = 3
)

var orderStatusName = map[int32]string{
	0: "ORDER_STATUS_UNSPECIFIED",
	1: "ACCEPTED",
	2: "FILLED",
	3: "REJECTED",
}

func (x OrderStatus) String() string {
	return proto.EnumName(orderStatusName, int32(x))
}

// AddOrderRequest submits a new order to the book.
type AddOrderRequest struct {
	OrderId   uint64    `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side      Side      `protobuf:"varint,2,opt,name=side,proto3,enum=trading.v1.Side" json:"side,omitempty"`
	OrderType OrderType `protobuf:"varint,3,opt,name=order_type,json=orderType,proto3,enum=trading.v1.OrderType" json:"order_type,omitempty"`
	// Price is ignored for market orders; the engine reprices them to the
	// worst resting contra level on admission.
	Price    int32  `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Quantity uint32 `protobuf:"varint,5,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *AddOrderRequest) Reset()         { *m = AddOrderRequest{} }
func (m *AddOrderRequest) String() string { return proto.CompactTextString(m) }
func (*AddOrderRequest) ProtoMessage()    {}

func (m *AddOrderRequest) GetOrderId() uint64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

func (m *AddOrderRequest) GetSide() Side {
	if m != nil {
		return m.Side
	}
	return SideUnspecified
}

func (m *AddOrderRequest) GetOrderType() OrderType {
	if m != nil {
		return m.OrderType
	}
	return OrderTypeUnspecified
}

func (m *AddOrderRequest) GetPrice() int32 {
	if m != nil {
		return m.Price
	}
	return 0
}

func (m *AddOrderRequest) GetQuantity() uint32 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

// CancelOrderRequest cancels an order by id.
type CancelOrderRequest struct {
	OrderId uint64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
}

func (m *CancelOrderRequest) Reset()         { *m = CancelOrderRequest{} }
func (m *CancelOrderRequest) String() string { return proto.CompactTextString(m) }
func (*CancelOrderRequest) ProtoMessage()    {}

func (m *CancelOrderRequest) GetOrderId() uint64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

// CancelOrderResponse acknowledges a cancel. Cancels are idempotent, so
// success is always true.
type CancelOrderResponse struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (m *CancelOrderResponse) Reset()         { *m = CancelOrderResponse{} }
func (m *CancelOrderResponse) String() string { return proto.CompactTextString(m) }
func (*CancelOrderResponse) ProtoMessage()    {}

func (m *CancelOrderResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

// ModifyOrderRequest replaces an active order's side, price and quantity.
// The original order type is retained by the engine.
type ModifyOrderRequest struct {
	OrderId     uint64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Side        Side   `protobuf:"varint,2,opt,name=side,proto3,enum=trading.v1.Side" json:"side,omitempty"`
	NewPrice    int32  `protobuf:"varint,3,opt,name=new_price,json=newPrice,proto3" json:"new_price,omitempty"`
	NewQuantity uint32 `protobuf:"varint,4,opt,name=new_quantity,json=newQuantity,proto3" json:"new_quantity,omitempty"`
}

func (m *ModifyOrderRequest) Reset()         { *m = ModifyOrderRequest{} }
func (m *ModifyOrderRequest) String() string { return proto.CompactTextString(m) }
func (*ModifyOrderRequest) ProtoMessage()    {}

func (m *ModifyOrderRequest) GetOrderId() uint64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

func (m *ModifyOrderRequest) GetSide() Side {
	if m != nil {
		return m.Side
	}
	return SideUnspecified
}

func (m *ModifyOrderRequest) GetNewPrice() int32 {
	if m != nil {
		return m.NewPrice
	}
	return 0
}

func (m *ModifyOrderRequest) GetNewQuantity() uint32 {
	if m != nil {
		return m.NewQuantity
	}
	return 0
}

// TradeInfo is one side of an executed trade. Price is the resting price of
// that side's order at the moment of the cross; for a repriced market order
// this is the promoted (worst contra) price.
type TradeInfo struct {
	OrderId  uint64 `protobuf:"varint,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Price    int32  `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
	Quantity uint32 `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *TradeInfo) Reset()         { *m = TradeInfo{} }
func (m *TradeInfo) String() string { return proto.CompactTextString(m) }
func (*TradeInfo) ProtoMessage()    {}

func (m *TradeInfo) GetOrderId() uint64 {
	if m != nil {
		return m.OrderId
	}
	return 0
}

func (m *TradeInfo) GetPrice() int32 {
	if m != nil {
		return m.Price
	}
	return 0
}

func (m *TradeInfo) GetQuantity() uint32 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

// Trade pairs the bid and ask sides of one fill.
type Trade struct {
	Bid *TradeInfo `protobuf:"bytes,1,opt,name=bid,proto3" json:"bid,omitempty"`
	Ask *TradeInfo `protobuf:"bytes,2,opt,name=ask,proto3" json:"ask,omitempty"`
}

func (m *Trade) Reset()         { *m = Trade{} }
func (m *Trade) String() string { return proto.CompactTextString(m) }
func (*Trade) ProtoMessage()    {}

func (m *Trade) GetBid() *TradeInfo {
	if m != nil {
		return m.Bid
	}
	return nil
}

func (m *Trade) GetAsk() *TradeInfo {
	if m != nil {
		return m.Ask
	}
	return nil
}

// TradeResponse reports the outcome of an add or modify call together with
// any trades it produced.
type TradeResponse struct {
	Status OrderStatus `protobuf:"varint,1,opt,name=status,proto3,enum=trading.v1.OrderStatus" json:"status,omitempty"`
	Trades []*Trade    `protobuf:"bytes,2,rep,name=trades,proto3" json:"trades,omitempty"`
}

func (m *TradeResponse) Reset()         { *m = TradeResponse{} }
func (m *TradeResponse) String() string { return proto.CompactTextString(m) }
func (*TradeResponse) ProtoMessage()    {}

func (m *TradeResponse) GetStatus() OrderStatus {
	if m != nil {
		return m.Status
	}
	return OrderStatusUnspecified
}

func (m *TradeResponse) GetTrades() []*Trade {
	if m != nil {
		return m.Trades
	}
	return nil
}

// Level is one aggregated price level of the book.
type Level struct {
	Price    int32  `protobuf:"varint,1,opt,name=price,proto3" json:"price,omitempty"`
	Quantity uint64 `protobuf:"varint,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
}

func (m *Level) Reset()         { *m = Level{} }
func (m *Level) String() string { return proto.CompactTextString(m) }
func (*Level) ProtoMessage()    {}

func (m *Level) GetPrice() int32 {
	if m != nil {
		return m.Price
	}
	return 0
}

func (m *Level) GetQuantity() uint64 {
	if m != nil {
		return m.Quantity
	}
	return 0
}

// GetOrderbookRequest asks for the aggregated book snapshot.
type GetOrderbookRequest struct{}

func (m *GetOrderbookRequest) Reset()         { *m = GetOrderbookRequest{} }
func (m *GetOrderbookRequest) String() string { return proto.CompactTextString(m) }
func (*GetOrderbookRequest) ProtoMessage()    {}

// GetOrderbookResponse carries both ladders in natural order: bids highest
// price first, asks lowest price first.
type GetOrderbookResponse struct {
	Bids []*Level `protobuf:"bytes,1,rep,name=bids,proto3" json:"bids,omitempty"`
	Asks []*Level `protobuf:"bytes,2,rep,name=asks,proto3" json:"asks,omitempty"`
}

func (m *GetOrderbookResponse) Reset()         { *m = GetOrderbookResponse{} }
func (m *GetOrderbookResponse) String() string { return proto.CompactTextString(m) }
func (*GetOrderbookResponse) ProtoMessage()    {}

func (m *GetOrderbookResponse) GetBids() []*Level {
	if m != nil {
		return m.Bids
	}
	return nil
}

func (m *GetOrderbookResponse) GetAsks() []*Level {
	if m != nil {
		return m.Asks
	}
	return nil
}
