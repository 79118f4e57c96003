package rpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quantgrid/trading-engine/api/tradingpb"
	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/internal/usecase/orderbook"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

type capturingPublisher struct {
	published []orderbookv1.Trades
	err       error
}

func (p *capturingPublisher) PublishTrades(_ context.Context, trades orderbookv1.Trades) error {
	p.published = append(p.published, trades)
	return p.err
}

func newTestService(t *testing.T, publisher TradePublisher) *Service {
	t.Helper()
	book := orderbook.New(logger.NewNop(), nil)
	t.Cleanup(book.Close)
	return NewService(book, publisher, logger.NewNop())
}

func addOrderRequest(id uint64, side tradingpb.Side, price int32, quantity uint32) *tradingpb.AddOrderRequest {
	return &tradingpb.AddOrderRequest{
		OrderId:   id,
		Side:      side,
		OrderType: tradingpb.OrderTypeGoodTillCancel,
		Price:     price,
		Quantity:  quantity,
	}
}

func TestService_AddOrderAccepted(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.AddOrder(context.Background(), addOrderRequest(1, tradingpb.SideBuy, 100, 500))

	require.NoError(t, err)
	assert.Equal(t, tradingpb.OrderStatusAccepted, resp.GetStatus())
	assert.Empty(t, resp.GetTrades())
}

func TestService_AddOrderFilled(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.AddOrder(context.Background(), addOrderRequest(1, tradingpb.SideBuy, 100, 1000))
	require.NoError(t, err)

	resp, err := svc.AddOrder(context.Background(), addOrderRequest(2, tradingpb.SideSell, 100, 500))
	require.NoError(t, err)

	assert.Equal(t, tradingpb.OrderStatusFilled, resp.GetStatus())
	require.Len(t, resp.GetTrades(), 1)

	trade := resp.GetTrades()[0]
	assert.Equal(t, uint64(1), trade.GetBid().GetOrderId())
	assert.Equal(t, int32(100), trade.GetBid().GetPrice())
	assert.Equal(t, uint32(500), trade.GetBid().GetQuantity())
	assert.Equal(t, uint64(2), trade.GetAsk().GetOrderId())
	assert.Equal(t, uint32(500), trade.GetAsk().GetQuantity())
}

func TestService_AddOrderMarket(t *testing.T) {
	svc := newTestService(t, nil)

	// A market order against an empty book is silently rejected, which the
	// wire reports as an empty accept.
	resp, err := svc.AddOrder(context.Background(), &tradingpb.AddOrderRequest{
		OrderId:   1,
		Side:      tradingpb.SideBuy,
		OrderType: tradingpb.OrderTypeMarket,
		Quantity:  100,
	})

	require.NoError(t, err)
	assert.Equal(t, tradingpb.OrderStatusAccepted, resp.GetStatus())

	book, err := svc.GetOrderbook(context.Background(), &tradingpb.GetOrderbookRequest{})
	require.NoError(t, err)
	assert.Empty(t, book.GetBids())
	assert.Empty(t, book.GetAsks())
}

func TestService_AddOrderInvalidEnums(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.AddOrder(context.Background(), &tradingpb.AddOrderRequest{
		OrderId:   1,
		Side:      tradingpb.SideUnspecified,
		OrderType: tradingpb.OrderTypeGoodTillCancel,
		Quantity:  100,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = svc.AddOrder(context.Background(), &tradingpb.AddOrderRequest{
		OrderId:   1,
		Side:      tradingpb.SideBuy,
		OrderType: tradingpb.OrderTypeUnspecified,
		Quantity:  100,
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestService_CancelOrderAlwaysSucceeds(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.AddOrder(context.Background(), addOrderRequest(1, tradingpb.SideBuy, 100, 500))
	require.NoError(t, err)

	resp, err := svc.CancelOrder(context.Background(), &tradingpb.CancelOrderRequest{OrderId: 1})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())

	// Cancelling an unknown id still reports success.
	resp, err = svc.CancelOrder(context.Background(), &tradingpb.CancelOrderRequest{OrderId: 42})
	require.NoError(t, err)
	assert.True(t, resp.GetSuccess())
}

func TestService_ModifyOrderRejectedUnknownID(t *testing.T) {
	svc := newTestService(t, nil)

	resp, err := svc.ModifyOrder(context.Background(), &tradingpb.ModifyOrderRequest{
		OrderId:     42,
		Side:        tradingpb.SideBuy,
		NewPrice:    100,
		NewQuantity: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, tradingpb.OrderStatusRejected, resp.GetStatus())
}

func TestService_ModifyOrderAccepted(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.AddOrder(context.Background(), addOrderRequest(1, tradingpb.SideBuy, 100, 1000))
	require.NoError(t, err)

	resp, err := svc.ModifyOrder(context.Background(), &tradingpb.ModifyOrderRequest{
		OrderId:     1,
		Side:        tradingpb.SideBuy,
		NewPrice:    110,
		NewQuantity: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, tradingpb.OrderStatusAccepted, resp.GetStatus())

	book, err := svc.GetOrderbook(context.Background(), &tradingpb.GetOrderbookRequest{})
	require.NoError(t, err)
	require.Len(t, book.GetBids(), 1)
	assert.Equal(t, int32(110), book.GetBids()[0].GetPrice())
	assert.Equal(t, uint64(500), book.GetBids()[0].GetQuantity())
}

func TestService_GetOrderbookOrdering(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	for _, req := range []*tradingpb.AddOrderRequest{
		addOrderRequest(1, tradingpb.SideBuy, 90, 100),
		addOrderRequest(2, tradingpb.SideBuy, 110, 200),
		addOrderRequest(3, tradingpb.SideSell, 150, 300),
		addOrderRequest(4, tradingpb.SideSell, 130, 400),
	} {
		_, err := svc.AddOrder(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.GetOrderbook(ctx, &tradingpb.GetOrderbookRequest{})
	require.NoError(t, err)

	require.Len(t, resp.GetBids(), 2)
	assert.Equal(t, int32(110), resp.GetBids()[0].GetPrice())
	assert.Equal(t, int32(90), resp.GetBids()[1].GetPrice())

	require.Len(t, resp.GetAsks(), 2)
	assert.Equal(t, int32(130), resp.GetAsks()[0].GetPrice())
	assert.Equal(t, int32(150), resp.GetAsks()[1].GetPrice())
}

func TestService_PublishesTrades(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := newTestService(t, publisher)
	ctx := context.Background()

	_, err := svc.AddOrder(ctx, addOrderRequest(1, tradingpb.SideBuy, 100, 500))
	require.NoError(t, err)
	assert.Empty(t, publisher.published, "no trades, nothing to publish")

	_, err = svc.AddOrder(ctx, addOrderRequest(2, tradingpb.SideSell, 100, 500))
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	require.Len(t, publisher.published[0], 1)
	assert.Equal(t, orderbookv1.OrderID(1), publisher.published[0][0].Bid.OrderID)
}

func TestService_PublishFailureDoesNotFailOrderFlow(t *testing.T) {
	publisher := &capturingPublisher{err: errors.New("broker down")}
	svc := newTestService(t, publisher)
	ctx := context.Background()

	_, err := svc.AddOrder(ctx, addOrderRequest(1, tradingpb.SideBuy, 100, 500))
	require.NoError(t, err)

	resp, err := svc.AddOrder(ctx, addOrderRequest(2, tradingpb.SideSell, 100, 500))
	require.NoError(t, err)
	assert.Equal(t, tradingpb.OrderStatusFilled, resp.GetStatus())
}
