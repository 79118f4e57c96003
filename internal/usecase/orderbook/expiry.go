package orderbook

import (
	"time"

	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

// pruneGoodForDayOrders sleeps until the next daily cutoff and cancels
// every registered good-for-day order. The engine mutex is never held
// across the wait; a clock jump is absorbed by recomputing the deadline on
// the next iteration.
func (ob *Orderbook) pruneGoodForDayOrders() {
	defer ob.wg.Done()

	for {
		now := ob.opts.Clock()
		next := time.Date(now.Year(), now.Month(), now.Day(), ob.opts.ExpiryHour, 0, 0, 0, now.Location())
		if !now.Before(next) {
			next = next.AddDate(0, 0, 1)
		}

		timer := time.NewTimer(next.Sub(now) + ob.opts.ExpirySlack)
		select {
		case <-ob.quit:
			timer.Stop()
			return
		case <-timer.C:
		}

		ob.cancelDayOrders()
	}
}

// cancelDayOrders snapshots the day-order set and cancels each id in one
// lock acquisition.
func (ob *Orderbook) cancelDayOrders() {
	ob.mu.Lock()

	ids := make([]orderbookv1.OrderID, 0, len(ob.goodForDay))
	for id := range ob.goodForDay {
		ids = append(ids, id)
	}
	for _, id := range ids {
		ob.cancelOrderLocked(id)
	}

	ob.mu.Unlock()

	if len(ids) > 0 {
		ob.log.Info("good-for-day orders expired",
			logger.Field{Key: "cancelled", Value: len(ids)},
		)
	}
}
