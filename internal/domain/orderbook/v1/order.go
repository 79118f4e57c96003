package orderbookv1

import "fmt"

// Order is a single order in the book. Identity fields are fixed at
// construction; remaining quantity only decreases through Fill, and the
// type/price pair changes at most once, when a market order is repriced
// during admission.
type Order struct {
	orderType         OrderType
	id                OrderID
	side              Side
	price             Price
	initialQuantity   Quantity
	remainingQuantity Quantity
}

// NewOrder creates a priced order.
func NewOrder(orderType OrderType, id OrderID, side Side, price Price, quantity Quantity) *Order {
	return &Order{
		orderType:         orderType,
		id:                id,
		side:              side,
		price:             price,
		initialQuantity:   quantity,
		remainingQuantity: quantity,
	}
}

// NewMarketOrder creates an unpriced market order.
func NewMarketOrder(id OrderID, side Side, quantity Quantity) *Order {
	return NewOrder(Market, id, side, PriceInvalid, quantity)
}

// ID returns the order id.
func (o *Order) ID() OrderID { return o.id }

// Side returns the order side.
func (o *Order) Side() Side { return o.side }

// Price returns the order price.
func (o *Order) Price() Price { return o.price }

// Type returns the order type.
func (o *Order) Type() OrderType { return o.orderType }

// InitialQuantity returns the quantity the order was created with.
func (o *Order) InitialQuantity() Quantity { return o.initialQuantity }

// RemainingQuantity returns the quantity still unfilled.
func (o *Order) RemainingQuantity() Quantity { return o.remainingQuantity }

// FilledQuantity returns the quantity filled so far.
func (o *Order) FilledQuantity() Quantity { return o.initialQuantity - o.remainingQuantity }

// IsFilled reports whether no quantity remains.
func (o *Order) IsFilled() bool { return o.remainingQuantity == 0 }

// Fill consumes quantity from the order. Filling beyond the remaining
// quantity is a bug in the caller, not an input condition, and panics.
func (o *Order) Fill(quantity Quantity) {
	if quantity > o.remainingQuantity {
		panic(fmt.Sprintf("order %d: fill %d exceeds remaining %d", o.id, quantity, o.remainingQuantity))
	}
	o.remainingQuantity -= quantity
}

// ToGoodTillCancel reprices a market order and promotes it to
// GoodTillCancel. Only market orders may be repriced; anything else panics.
func (o *Order) ToGoodTillCancel(price Price) {
	if o.orderType != Market {
		panic(fmt.Sprintf("order %d: only market orders can be repriced", o.id))
	}
	o.price = price
	o.orderType = GoodTillCancel
}

// OrderModify carries the replacement values for an in-place modify. The
// order type is not part of the request; the book reuses the original type.
type OrderModify struct {
	ID       OrderID
	Side     Side
	Price    Price
	Quantity Quantity
}

// ToOrder builds the replacement order with the given type.
func (m OrderModify) ToOrder(orderType OrderType) *Order {
	return NewOrder(orderType, m.ID, m.Side, m.Price, m.Quantity)
}
