package orderbook

import (
	"container/list"
	"sync"

	"github.com/google/btree"
	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

// orderEntry pairs an active order with the handle locating it inside its
// price level's queue.
type orderEntry struct {
	order *orderbookv1.Order
	elem  *list.Element
}

// Orderbook is the matching engine for a single instrument: price-ordered
// bid and ask ladders of FIFO levels, an id index with O(1) erase handles,
// per-side aggregated level statistics, and a background task cancelling
// good-for-day orders at the daily cutoff.
//
// One mutex serialises every public operation; matching runs synchronously
// on the caller's goroutine while holding it.
type Orderbook struct {
	mu sync.RWMutex

	bids *btree.BTreeG[*priceLevel]
	asks *btree.BTreeG[*priceLevel]

	orders map[orderbookv1.OrderID]*orderEntry

	bidLevels map[orderbookv1.Price]*levelData
	askLevels map[orderbookv1.Price]*levelData

	goodForDay map[orderbookv1.OrderID]struct{}

	opts      Options
	log       logger.Interface
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates an Orderbook and starts its expiry task. Pass nil opts for
// the defaults.
func New(log logger.Interface, opts *Options) *Orderbook {
	if opts == nil {
		opts = DefaultOptions()
	}
	ob := &Orderbook{
		bids:       btree.NewG(priceLevelsBTreeDegree, bidLess),
		asks:       btree.NewG(priceLevelsBTreeDegree, askLess),
		orders:     make(map[orderbookv1.OrderID]*orderEntry),
		bidLevels:  make(map[orderbookv1.Price]*levelData),
		askLevels:  make(map[orderbookv1.Price]*levelData),
		goodForDay: make(map[orderbookv1.OrderID]struct{}),
		opts:       *opts,
		log:        log,
		quit:       make(chan struct{}),
	}

	ob.wg.Add(1)
	go ob.pruneGoodForDayOrders()

	return ob
}

// Close stops the expiry task and waits for it to exit. In-flight public
// calls complete normally; the book remains usable afterwards but day
// orders will no longer expire.
func (ob *Orderbook) Close() {
	ob.closeOnce.Do(func() {
		close(ob.quit)
		ob.wg.Wait()
	})
}

// AddOrder admits the order and matches it against the book, returning the
// trades produced. Invalid input (nil order, zero quantity, out-of-range
// price, duplicate active id, or a failed admission policy) is rejected
// silently with an empty trade list and an unchanged book.
func (ob *Orderbook) AddOrder(order *orderbookv1.Order) orderbookv1.Trades {
	if order == nil {
		return nil
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	return ob.addOrderLocked(order)
}

func (ob *Orderbook) addOrderLocked(order *orderbookv1.Order) orderbookv1.Trades {
	if order.InitialQuantity() == 0 {
		return nil
	}
	if order.Type() != orderbookv1.Market &&
		(order.Price() < 0 || order.Price() > orderbookv1.MaxPrice) {
		return nil
	}
	if _, active := ob.orders[order.ID()]; active {
		ob.log.Debug("order rejected: duplicate id",
			logger.Field{Key: "orderID", Value: order.ID()},
		)
		return nil
	}

	if order.Type() == orderbookv1.Market {
		worst, ok := ob.worstContraPrice(order.Side())
		if !ok {
			ob.log.Debug("market order rejected: empty contra ladder",
				logger.Field{Key: "orderID", Value: order.ID()},
				logger.Field{Key: "side", Value: order.Side().String()},
			)
			return nil
		}
		// Crossing the worst resting contra level guarantees the order
		// sweeps everything in front of it.
		order.ToGoodTillCancel(worst)
	}

	if order.Type() == orderbookv1.GoodForDay {
		ob.goodForDay[order.ID()] = struct{}{}
	}

	if order.Type() == orderbookv1.FillAndKill && !ob.canMatch(order.Side(), order.Price()) {
		ob.log.Debug("fill-and-kill rejected: nothing crossable",
			logger.Field{Key: "orderID", Value: order.ID()},
		)
		return nil
	}

	if order.Type() == orderbookv1.FillOrKill &&
		!ob.canFullyFill(order.Side(), order.Price(), order.InitialQuantity()) {
		ob.log.Debug("fill-or-kill rejected: cannot fill fully",
			logger.Field{Key: "orderID", Value: order.ID()},
			logger.Field{Key: "quantity", Value: order.InitialQuantity()},
		)
		return nil
	}

	level := ob.levelFor(order.Side(), order.Price())
	elem := level.orders.PushBack(order)
	ob.orders[order.ID()] = &orderEntry{order: order, elem: elem}
	ob.onOrderAdded(order)

	return ob.matchOrders()
}

// CancelOrder removes the order with the given id. Unknown ids are a no-op;
// the call never fails.
func (ob *Orderbook) CancelOrder(id orderbookv1.OrderID) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.cancelOrderLocked(id)
}

// ModifyOrder cancels the identified order and re-adds it with the caller's
// side, price and quantity, keeping the original order type. An unknown id
// returns an empty trade list and changes nothing.
func (ob *Orderbook) ModifyOrder(modify orderbookv1.OrderModify) orderbookv1.Trades {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	entry, ok := ob.orders[modify.ID]
	if !ok {
		return nil
	}
	orderType := entry.order.Type()

	ob.cancelOrderLocked(modify.ID)
	return ob.addOrderLocked(modify.ToOrder(orderType))
}

// OrderExists reports whether an order with the given id is active.
func (ob *Orderbook) OrderExists(id orderbookv1.OrderID) bool {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	_, ok := ob.orders[id]
	return ok
}

// Size returns the number of orders currently resting in the book.
func (ob *Orderbook) Size() int {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return len(ob.orders)
}

// Levels materialises both ladders as aggregated {price, quantity} levels,
// bids highest first and asks lowest first, at one serialized point in time.
func (ob *Orderbook) Levels() orderbookv1.LevelsSnapshot {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	snapshot := orderbookv1.LevelsSnapshot{
		Bids: make(orderbookv1.LevelInfos, 0, ob.bids.Len()),
		Asks: make(orderbookv1.LevelInfos, 0, ob.asks.Len()),
	}
	ob.bids.Ascend(func(level *priceLevel) bool {
		snapshot.Bids = append(snapshot.Bids, level.info())
		return true
	})
	ob.asks.Ascend(func(level *priceLevel) bool {
		snapshot.Asks = append(snapshot.Asks, level.info())
		return true
	})
	return snapshot
}

// ---- internals, callers hold ob.mu ----

func (ob *Orderbook) ladderFor(side orderbookv1.Side) *btree.BTreeG[*priceLevel] {
	if side == orderbookv1.Buy {
		return ob.bids
	}
	return ob.asks
}

func (ob *Orderbook) aggregatesFor(side orderbookv1.Side) map[orderbookv1.Price]*levelData {
	if side == orderbookv1.Buy {
		return ob.bidLevels
	}
	return ob.askLevels
}

// levelFor returns the side's level at the price, creating it on first use.
func (ob *Orderbook) levelFor(side orderbookv1.Side, price orderbookv1.Price) *priceLevel {
	ladder := ob.ladderFor(side)
	if level, ok := ladder.Get(&priceLevel{price: price}); ok {
		return level
	}
	level := newPriceLevel(price)
	ladder.ReplaceOrInsert(level)
	return level
}

// worstContraPrice is the price a market order must cross to sweep the
// whole contra ladder: the highest ask for a buy, the lowest bid for a
// sell.
func (ob *Orderbook) worstContraPrice(side orderbookv1.Side) (orderbookv1.Price, bool) {
	level, ok := ob.ladderFor(side.Opposite()).Max()
	if !ok {
		return 0, false
	}
	return level.price, true
}

// canMatch reports whether an order at the price would cross the contra
// side's best level.
func (ob *Orderbook) canMatch(side orderbookv1.Side, price orderbookv1.Price) bool {
	best, ok := ob.ladderFor(side.Opposite()).Min()
	if !ok {
		return false
	}
	if side == orderbookv1.Buy {
		return price >= best.price
	}
	return price <= best.price
}

// canFullyFill walks the contra side's aggregated levels from the best
// price inward and reports whether the cumulative quantity within the
// order's limit covers the required quantity.
func (ob *Orderbook) canFullyFill(side orderbookv1.Side, price orderbookv1.Price, quantity orderbookv1.Quantity) bool {
	if !ob.canMatch(side, price) {
		return false
	}

	contra := side.Opposite()
	aggregates := ob.aggregatesFor(contra)
	fillable := false
	ob.ladderFor(contra).Ascend(func(level *priceLevel) bool {
		if side == orderbookv1.Buy && level.price > price {
			return false
		}
		if side == orderbookv1.Sell && level.price < price {
			return false
		}
		data := aggregates[level.price]
		if quantity <= data.quantity {
			fillable = true
			return false
		}
		quantity -= data.quantity
		return true
	})
	return fillable
}

// matchOrders drains crossable top-of-book pairs under price-time priority
// and returns the trades produced. Each trade carries both resting prices
// and the shared fill quantity.
func (ob *Orderbook) matchOrders() orderbookv1.Trades {
	var trades orderbookv1.Trades

	for {
		bestBid, ok := ob.bids.Min()
		if !ok {
			break
		}
		bestAsk, ok := ob.asks.Min()
		if !ok {
			break
		}
		if bestBid.price < bestAsk.price {
			break
		}

		for !bestBid.empty() && !bestAsk.empty() {
			bid := bestBid.front()
			ask := bestAsk.front()

			quantity := min(bid.RemainingQuantity(), ask.RemainingQuantity())
			bid.Fill(quantity)
			ask.Fill(quantity)

			if bid.IsFilled() {
				bestBid.orders.Remove(bestBid.orders.Front())
				delete(ob.orders, bid.ID())
				delete(ob.goodForDay, bid.ID())
			}
			if ask.IsFilled() {
				bestAsk.orders.Remove(bestAsk.orders.Front())
				delete(ob.orders, ask.ID())
				delete(ob.goodForDay, ask.ID())
			}

			trades = append(trades, orderbookv1.Trade{
				Bid: orderbookv1.TradeInfo{OrderID: bid.ID(), Price: bid.Price(), Quantity: quantity},
				Ask: orderbookv1.TradeInfo{OrderID: ask.ID(), Price: ask.Price(), Quantity: quantity},
			})

			ob.onOrderMatched(orderbookv1.Buy, bid.Price(), quantity, bid.IsFilled())
			ob.onOrderMatched(orderbookv1.Sell, ask.Price(), quantity, ask.IsFilled())
		}

		// Drop cleared levels from the ladder and the aggregate table. The
		// incremental update above already erased the aggregate entry when
		// its count reached zero; the second erase keeps the two paths from
		// ever diverging.
		if bestBid.empty() {
			ob.bids.Delete(bestBid)
			delete(ob.bidLevels, bestBid.price)
		}
		if bestAsk.empty() {
			ob.asks.Delete(bestAsk)
			delete(ob.askLevels, bestAsk.price)
		}
	}

	// A fill-and-kill order passed admission because its price crossed, but
	// it may still hold a remainder once the far side ran dry. It must not
	// rest, and it can only be at the head of its ladder.
	if best, ok := ob.bids.Min(); ok {
		if order := best.front(); order != nil && order.Type() == orderbookv1.FillAndKill {
			ob.cancelOrderLocked(order.ID())
		}
	}
	if best, ok := ob.asks.Min(); ok {
		if order := best.front(); order != nil && order.Type() == orderbookv1.FillAndKill {
			ob.cancelOrderLocked(order.ID())
		}
	}

	return trades
}

func (ob *Orderbook) cancelOrderLocked(id orderbookv1.OrderID) {
	entry, ok := ob.orders[id]
	if !ok {
		return
	}
	delete(ob.orders, id)

	order := entry.order
	if order.Type() == orderbookv1.GoodForDay {
		delete(ob.goodForDay, id)
	}

	ladder := ob.ladderFor(order.Side())
	level, ok := ladder.Get(&priceLevel{price: order.Price()})
	if !ok {
		panic("orderbook: indexed order has no price level")
	}
	level.orders.Remove(entry.elem)
	if level.empty() {
		ladder.Delete(level)
	}

	ob.onOrderCancelled(order)
}

// ---- aggregate level statistics ----

func (ob *Orderbook) onOrderAdded(order *orderbookv1.Order) {
	ob.updateLevelData(order.Side(), order.Price(), order.InitialQuantity(), levelActionAdd)
}

func (ob *Orderbook) onOrderCancelled(order *orderbookv1.Order) {
	ob.updateLevelData(order.Side(), order.Price(), order.RemainingQuantity(), levelActionRemove)
}

func (ob *Orderbook) onOrderMatched(side orderbookv1.Side, price orderbookv1.Price, quantity orderbookv1.Quantity, fullyFilled bool) {
	action := levelActionMatch
	if fullyFilled {
		action = levelActionRemove
	}
	ob.updateLevelData(side, price, quantity, action)
}

func (ob *Orderbook) updateLevelData(side orderbookv1.Side, price orderbookv1.Price, quantity orderbookv1.Quantity, action levelAction) {
	aggregates := ob.aggregatesFor(side)
	data := aggregates[price]
	if data == nil {
		data = &levelData{}
		aggregates[price] = data
	}

	switch action {
	case levelActionAdd:
		data.count++
		data.quantity += quantity
	case levelActionRemove:
		data.count--
		data.quantity -= quantity
	case levelActionMatch:
		data.quantity -= quantity
	}

	if data.count == 0 {
		delete(aggregates, price)
	}
}
