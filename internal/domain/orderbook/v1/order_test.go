package orderbookv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	order := NewOrder(GoodTillCancel, 1, Buy, 100, 500)

	assert.Equal(t, OrderID(1), order.ID())
	assert.Equal(t, Buy, order.Side())
	assert.Equal(t, Price(100), order.Price())
	assert.Equal(t, GoodTillCancel, order.Type())
	assert.Equal(t, Quantity(500), order.InitialQuantity())
	assert.Equal(t, Quantity(500), order.RemainingQuantity())
	assert.Equal(t, Quantity(0), order.FilledQuantity())
	assert.False(t, order.IsFilled())
}

func TestNewMarketOrder(t *testing.T) {
	order := NewMarketOrder(7, Sell, 250)

	assert.Equal(t, Market, order.Type())
	assert.Equal(t, PriceInvalid, order.Price())
	assert.Equal(t, Quantity(250), order.InitialQuantity())
}

func TestOrder_Fill(t *testing.T) {
	order := NewOrder(GoodTillCancel, 1, Buy, 100, 500)

	order.Fill(200)
	assert.Equal(t, Quantity(300), order.RemainingQuantity())
	assert.Equal(t, Quantity(200), order.FilledQuantity())
	assert.False(t, order.IsFilled())

	order.Fill(300)
	assert.Equal(t, Quantity(0), order.RemainingQuantity())
	assert.True(t, order.IsFilled())
}

func TestOrder_FillBeyondRemainingPanics(t *testing.T) {
	order := NewOrder(GoodTillCancel, 1, Buy, 100, 10)

	require.Panics(t, func() {
		order.Fill(11)
	})
}

func TestOrder_ToGoodTillCancel(t *testing.T) {
	order := NewMarketOrder(3, Buy, 100)

	order.ToGoodTillCancel(210)

	assert.Equal(t, GoodTillCancel, order.Type())
	assert.Equal(t, Price(210), order.Price())

	// The promotion is one-shot: the order is no longer a market order.
	require.Panics(t, func() {
		order.ToGoodTillCancel(220)
	})
}

func TestOrder_ToGoodTillCancelNonMarketPanics(t *testing.T) {
	order := NewOrder(GoodForDay, 4, Sell, 150, 50)

	require.Panics(t, func() {
		order.ToGoodTillCancel(140)
	})
}

func TestOrderModify_ToOrder(t *testing.T) {
	modify := OrderModify{ID: 9, Side: Sell, Price: 120, Quantity: 75}

	order := modify.ToOrder(GoodForDay)

	assert.Equal(t, OrderID(9), order.ID())
	assert.Equal(t, Sell, order.Side())
	assert.Equal(t, Price(120), order.Price())
	assert.Equal(t, Quantity(75), order.InitialQuantity())
	assert.Equal(t, GoodForDay, order.Type())
}

func TestSide_Opposite(t *testing.T) {
	assert.Equal(t, Sell, Buy.Opposite())
	assert.Equal(t, Buy, Sell.Opposite())
}

func TestOrderType_String(t *testing.T) {
	assert.Equal(t, "good_till_cancel", GoodTillCancel.String())
	assert.Equal(t, "good_for_day", GoodForDay.String())
	assert.Equal(t, "market", Market.String())
	assert.Equal(t, "fill_and_kill", FillAndKill.String())
	assert.Equal(t, "fill_or_kill", FillOrKill.String())
}
