package orderbook

import (
	"container/list"

	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
)

// priceLevelsBTreeDegree is the branching factor for the bid/ask ladders.
const priceLevelsBTreeDegree = 32

// priceLevel is the FIFO queue of orders resting at one price on one side.
// Orders are *orderbookv1.Order values; the *list.Element returned by
// PushBack is the stable handle held in the order index, valid across
// unrelated insertions and removals.
type priceLevel struct {
	price  orderbookv1.Price
	orders *list.List
}

func newPriceLevel(price orderbookv1.Price) *priceLevel {
	return &priceLevel{price: price, orders: list.New()}
}

// front returns the head order of the level, nil when empty.
func (l *priceLevel) front() *orderbookv1.Order {
	elem := l.orders.Front()
	if elem == nil {
		return nil
	}
	return elem.Value.(*orderbookv1.Order)
}

func (l *priceLevel) empty() bool {
	return l.orders.Len() == 0
}

// info aggregates the level's remaining quantity for the snapshot query.
func (l *priceLevel) info() orderbookv1.LevelInfo {
	var quantity orderbookv1.Quantity
	for elem := l.orders.Front(); elem != nil; elem = elem.Next() {
		quantity += elem.Value.(*orderbookv1.Order).RemainingQuantity()
	}
	return orderbookv1.LevelInfo{Price: l.price, Quantity: quantity}
}

// Ladder comparators. Bids iterate highest price first, asks lowest first,
// so Min() is always the best level and Max() the worst.
func bidLess(a, b *priceLevel) bool { return a.price > b.price }
func askLess(a, b *priceLevel) bool { return a.price < b.price }

// levelData is the aggregated per-price summary: how many orders rest at
// the price and the sum of their remaining quantities. An entry exists in
// its side's table iff count > 0.
type levelData struct {
	count    int
	quantity orderbookv1.Quantity
}

// levelAction describes how an order event changes a level's aggregates.
type levelAction int

const (
	// levelActionAdd: a new order rests at the price.
	levelActionAdd levelAction = iota
	// levelActionRemove: an order leaves the price entirely.
	levelActionRemove
	// levelActionMatch: an order at the price is partially filled.
	levelActionMatch
)
