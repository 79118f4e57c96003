package orderbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

func TestOrderbook_CancelDayOrders(t *testing.T) {
	book := newTestBook(t)

	book.AddOrder(orderbookv1.NewOrder(orderbookv1.GoodForDay, 1, orderbookv1.Buy, 100, 500))
	book.AddOrder(orderbookv1.NewOrder(orderbookv1.GoodForDay, 2, orderbookv1.Sell, 120, 300))
	book.AddOrder(gtc(3, orderbookv1.Buy, 90, 200))

	book.cancelDayOrders()

	assert.False(t, book.OrderExists(1))
	assert.False(t, book.OrderExists(2))
	assert.True(t, book.OrderExists(3))
	assert.Equal(t, 1, book.Size())

	book.mu.RLock()
	assert.Empty(t, book.goodForDay)
	book.mu.RUnlock()
	checkInvariants(t, book)
}

func TestOrderbook_ExpiryTaskSweepsAtCutoff(t *testing.T) {
	// A clock frozen 100ms before the cutoff makes the task's first wait
	// roughly cutoff distance plus slack.
	clock := func() time.Time {
		return time.Date(2025, 3, 4, 15, 59, 59, 900_000_000, time.Local)
	}
	book := New(logger.NewNop(), &Options{
		ExpiryHour:  16,
		ExpirySlack: 10 * time.Millisecond,
		Clock:       clock,
	})
	t.Cleanup(book.Close)

	book.AddOrder(orderbookv1.NewOrder(orderbookv1.GoodForDay, 1, orderbookv1.Buy, 100, 500))
	book.AddOrder(gtc(2, orderbookv1.Sell, 120, 300))

	assert.Eventually(t, func() bool {
		return !book.OrderExists(1)
	}, 2*time.Second, 20*time.Millisecond, "day order should be swept at the cutoff")

	assert.True(t, book.OrderExists(2))
}

func TestOrderbook_ExpiryTaskPastCutoffWaitsForTomorrow(t *testing.T) {
	// Past the cutoff the next sweep is tomorrow; nothing may fire now.
	clock := func() time.Time {
		return time.Date(2025, 3, 4, 16, 0, 1, 0, time.Local)
	}
	book := New(logger.NewNop(), &Options{
		ExpiryHour:  16,
		ExpirySlack: 10 * time.Millisecond,
		Clock:       clock,
	})
	t.Cleanup(book.Close)

	book.AddOrder(orderbookv1.NewOrder(orderbookv1.GoodForDay, 1, orderbookv1.Buy, 100, 500))

	time.Sleep(200 * time.Millisecond)
	assert.True(t, book.OrderExists(1))
}

func TestOrderbook_CloseStopsExpiryTask(t *testing.T) {
	book := New(logger.NewNop(), nil)

	done := make(chan struct{})
	go func() {
		book.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not stop the expiry task")
	}

	// Close is safe to call again.
	require.NotPanics(t, book.Close)
}
