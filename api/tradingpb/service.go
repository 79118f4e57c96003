package tradingpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "trading.v1.TradingEngine"

// TradingEngineClient is the client API for the TradingEngine service.
type TradingEngineClient interface {
	AddOrder(ctx context.Context, in *AddOrderRequest, opts ...grpc.CallOption) (*TradeResponse, error)
	CancelOrder(ctx context.Context, in *CancelOrderRequest, opts ...grpc.CallOption) (*CancelOrderResponse, error)
	ModifyOrder(ctx context.Context, in *ModifyOrderRequest, opts ...grpc.CallOption) (*TradeResponse, error)
	GetOrderbook(ctx context.Context, in *GetOrderbookRequest, opts ...grpc.CallOption) (*GetOrderbookResponse, error)
}

type tradingEngineClient struct {
	cc grpc.ClientConnInterface
}

// NewTradingEngineClient returns a TradingEngineClient backed by the given
// connection.
func NewTradingEngineClient(cc grpc.ClientConnInterface) TradingEngineClient {
	return &tradingEngineClient{cc}
}

func (c *tradingEngineClient) AddOrder(ctx context.Context, in *AddOrderRequest, opts ...grpc.CallOption) (*TradeResponse, error) {
	out := new(TradeResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/AddOrder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradingEngineClient) CancelOrder(ctx context.Context, in *CancelOrderRequest, opts ...grpc.CallOption) (*CancelOrderResponse, error) {
	out := new(CancelOrderResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/CancelOrder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradingEngineClient) ModifyOrder(ctx context.Context, in *ModifyOrderRequest, opts ...grpc.CallOption) (*TradeResponse, error) {
	out := new(TradeResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/ModifyOrder", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tradingEngineClient) GetOrderbook(ctx context.Context, in *GetOrderbookRequest, opts ...grpc.CallOption) (*GetOrderbookResponse, error) {
	out := new(GetOrderbookResponse)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/GetOrderbook", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// TradingEngineServer is the server API for the TradingEngine service.
type TradingEngineServer interface {
	AddOrder(ctx context.Context, in *AddOrderRequest) (*TradeResponse, error)
	CancelOrder(ctx context.Context, in *CancelOrderRequest) (*CancelOrderResponse, error)
	ModifyOrder(ctx context.Context, in *ModifyOrderRequest) (*TradeResponse, error)
	GetOrderbook(ctx context.Context, in *GetOrderbookRequest) (*GetOrderbookResponse, error)
}

// UnimplementedTradingEngineServer can be embedded for forward-compatible
// partial implementations.
type UnimplementedTradingEngineServer struct{}

func (UnimplementedTradingEngineServer) AddOrder(context.Context, *AddOrderRequest) (*TradeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddOrder not implemented")
}

func (UnimplementedTradingEngineServer) CancelOrder(context.Context, *CancelOrderRequest) (*CancelOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelOrder not implemented")
}

func (UnimplementedTradingEngineServer) ModifyOrder(context.Context, *ModifyOrderRequest) (*TradeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ModifyOrder not implemented")
}

func (UnimplementedTradingEngineServer) GetOrderbook(context.Context, *GetOrderbookRequest) (*GetOrderbookResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrderbook not implemented")
}

// RegisterTradingEngineServer registers the service implementation with the
// gRPC registrar.
func RegisterTradingEngineServer(s grpc.ServiceRegistrar, srv TradingEngineServer) {
	s.RegisterService(&TradingEngineServiceDesc, srv)
}

func addOrderHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradingEngineServer).AddOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/AddOrder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TradingEngineServer).AddOrder(ctx, req.(*AddOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func cancelOrderHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradingEngineServer).CancelOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/CancelOrder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TradingEngineServer).CancelOrder(ctx, req.(*CancelOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func modifyOrderHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ModifyOrderRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradingEngineServer).ModifyOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ModifyOrder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TradingEngineServer).ModifyOrder(ctx, req.(*ModifyOrderRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getOrderbookHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetOrderbookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TradingEngineServer).GetOrderbook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetOrderbook"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TradingEngineServer).GetOrderbook(ctx, req.(*GetOrderbookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TradingEngineServiceDesc is the grpc.ServiceDesc for the TradingEngine
// service.
var TradingEngineServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TradingEngineServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddOrder", Handler: addOrderHandler},
		{MethodName: "CancelOrder", Handler: cancelOrderHandler},
		{MethodName: "ModifyOrder", Handler: modifyOrderHandler},
		{MethodName: "GetOrderbook", Handler: getOrderbookHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/trading/v1/trading.proto",
}
