package rpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quantgrid/trading-engine/api/tradingpb"
	orderbookv1 "github.com/quantgrid/trading-engine/internal/domain/orderbook/v1"
	"github.com/quantgrid/trading-engine/internal/usecase/orderbook"
	"github.com/quantgrid/trading-engine/pkg/logger"
)

// TradePublisher forwards executed trades to the trade feed.
type TradePublisher interface {
	PublishTrades(ctx context.Context, trades orderbookv1.Trades) error
}

// Service adapts the order book to the trading.v1.TradingEngine gRPC
// service.
type Service struct {
	tradingpb.UnimplementedTradingEngineServer

	book      *orderbook.Orderbook
	publisher TradePublisher
	logger    logger.Interface
}

// NewService creates the gRPC service adapter. publisher may be nil when
// the trade feed is disabled.
func NewService(book *orderbook.Orderbook, publisher TradePublisher, log logger.Interface) *Service {
	return &Service{
		book:      book,
		publisher: publisher,
		logger:    log,
	}
}

// AddOrder submits a new order. The response is FILLED with trade records
// when matching produced trades, ACCEPTED otherwise; silent rejections are
// indistinguishable from an empty accept by design.
func (s *Service) AddOrder(ctx context.Context, req *tradingpb.AddOrderRequest) (*tradingpb.TradeResponse, error) {
	side, err := toSide(req.GetSide())
	if err != nil {
		return nil, err
	}
	orderType, err := toOrderType(req.GetOrderType())
	if err != nil {
		return nil, err
	}

	var order *orderbookv1.Order
	if orderType == orderbookv1.Market {
		order = orderbookv1.NewMarketOrder(req.GetOrderId(), side, req.GetQuantity())
	} else {
		order = orderbookv1.NewOrder(orderType, req.GetOrderId(), side, req.GetPrice(), req.GetQuantity())
	}

	trades := s.book.AddOrder(order)

	s.logger.Info("add order",
		logger.Field{Key: "orderID", Value: req.GetOrderId()},
		logger.Field{Key: "side", Value: side.String()},
		logger.Field{Key: "type", Value: orderType.String()},
		logger.Field{Key: "price", Value: req.GetPrice()},
		logger.Field{Key: "quantity", Value: req.GetQuantity()},
		logger.Field{Key: "trades", Value: len(trades)},
	)

	s.publish(ctx, trades)
	return tradeResponse(trades), nil
}

// CancelOrder cancels an order by id. Cancels are idempotent, so the call
// always succeeds.
func (s *Service) CancelOrder(ctx context.Context, req *tradingpb.CancelOrderRequest) (*tradingpb.CancelOrderResponse, error) {
	s.book.CancelOrder(req.GetOrderId())

	s.logger.Info("cancel order",
		logger.Field{Key: "orderID", Value: req.GetOrderId()},
	)

	return &tradingpb.CancelOrderResponse{Success: true}, nil
}

// ModifyOrder replaces an active order's side, price and quantity, keeping
// its original type. Unknown ids are REJECTED.
func (s *Service) ModifyOrder(ctx context.Context, req *tradingpb.ModifyOrderRequest) (*tradingpb.TradeResponse, error) {
	side, err := toSide(req.GetSide())
	if err != nil {
		return nil, err
	}

	if !s.book.OrderExists(req.GetOrderId()) {
		return &tradingpb.TradeResponse{Status: tradingpb.OrderStatusRejected}, nil
	}

	trades := s.book.ModifyOrder(orderbookv1.OrderModify{
		ID:       req.GetOrderId(),
		Side:     side,
		Price:    req.GetNewPrice(),
		Quantity: req.GetNewQuantity(),
	})

	s.logger.Info("modify order",
		logger.Field{Key: "orderID", Value: req.GetOrderId()},
		logger.Field{Key: "side", Value: side.String()},
		logger.Field{Key: "newPrice", Value: req.GetNewPrice()},
		logger.Field{Key: "newQuantity", Value: req.GetNewQuantity()},
		logger.Field{Key: "trades", Value: len(trades)},
	)

	s.publish(ctx, trades)
	return tradeResponse(trades), nil
}

// GetOrderbook returns the aggregated ladders, bids descending and asks
// ascending by price.
func (s *Service) GetOrderbook(ctx context.Context, req *tradingpb.GetOrderbookRequest) (*tradingpb.GetOrderbookResponse, error) {
	snapshot := s.book.Levels()

	return &tradingpb.GetOrderbookResponse{
		Bids: toLevels(snapshot.Bids),
		Asks: toLevels(snapshot.Asks),
	}, nil
}

// publish forwards trades to the feed outside the engine lock. Publish
// failures are logged, never surfaced to the order flow.
func (s *Service) publish(ctx context.Context, trades orderbookv1.Trades) {
	if s.publisher == nil || len(trades) == 0 {
		return
	}
	if err := s.publisher.PublishTrades(ctx, trades); err != nil {
		s.logger.Error(err,
			logger.Field{Key: "trades", Value: len(trades)},
		)
	}
}

// ---- converters ----

func toSide(side tradingpb.Side) (orderbookv1.Side, error) {
	switch side {
	case tradingpb.SideBuy:
		return orderbookv1.Buy, nil
	case tradingpb.SideSell:
		return orderbookv1.Sell, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown side %d", side)
	}
}

func toOrderType(orderType tradingpb.OrderType) (orderbookv1.OrderType, error) {
	switch orderType {
	case tradingpb.OrderTypeGoodTillCancel:
		return orderbookv1.GoodTillCancel, nil
	case tradingpb.OrderTypeGoodForDay:
		return orderbookv1.GoodForDay, nil
	case tradingpb.OrderTypeMarket:
		return orderbookv1.Market, nil
	case tradingpb.OrderTypeFillAndKill:
		return orderbookv1.FillAndKill, nil
	case tradingpb.OrderTypeFillOrKill:
		return orderbookv1.FillOrKill, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "unknown order type %d", orderType)
	}
}

func tradeResponse(trades orderbookv1.Trades) *tradingpb.TradeResponse {
	if len(trades) == 0 {
		return &tradingpb.TradeResponse{Status: tradingpb.OrderStatusAccepted}
	}

	resp := &tradingpb.TradeResponse{
		Status: tradingpb.OrderStatusFilled,
		Trades: make([]*tradingpb.Trade, 0, len(trades)),
	}
	for _, trade := range trades {
		resp.Trades = append(resp.Trades, &tradingpb.Trade{
			Bid: &tradingpb.TradeInfo{
				OrderId:  trade.Bid.OrderID,
				Price:    trade.Bid.Price,
				Quantity: trade.Bid.Quantity,
			},
			Ask: &tradingpb.TradeInfo{
				OrderId:  trade.Ask.OrderID,
				Price:    trade.Ask.Price,
				Quantity: trade.Ask.Quantity,
			},
		})
	}
	return resp
}

func toLevels(infos orderbookv1.LevelInfos) []*tradingpb.Level {
	levels := make([]*tradingpb.Level, 0, len(infos))
	for _, info := range infos {
		levels = append(levels, &tradingpb.Level{
			Price:    info.Price,
			Quantity: uint64(info.Quantity),
		})
	}
	return levels
}
