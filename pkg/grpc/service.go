package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is described with protobuf well-known types only, so no .proto
// compilation step is needed on either side.
const ServiceName = "tradealerts.AlertService"

const (
	MethodRunPass        = "/" + ServiceName + "/RunPass"
	MethodListUserAlerts = "/" + ServiceName + "/ListUserAlerts"
	MethodGetAlert       = "/" + ServiceName + "/GetAlert"
	MethodVerifyAlert    = "/" + ServiceName + "/VerifyAlert"
	MethodAddAlert       = "/" + ServiceName + "/AddAlert"
	MethodPostLimiter    = "/" + ServiceName + "/PostLimiter"
)

type AlertServiceServer interface {
	// RunPass returns the hashes of the alerts triggered and reaped.
	RunPass(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	ListUserAlerts(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	GetAlert(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	VerifyAlert(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	// AddAlert takes {user_id, symbol, level, direction?} and returns the hash.
	AddAlert(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	// PostLimiter takes {user_id, rate, burst}.
	PostLimiter(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

func unary[Req proto.Message, Resp proto.Message](
	fullMethod string,
	newReq func() Req,
	call func(AlertServiceServer, context.Context, Req) (Resp, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AlertServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AlertServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func newEmpty() *emptypb.Empty { return new(emptypb.Empty) }
func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newStruct() *structpb.Struct { return new(structpb.Struct) }

var AlertServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlertServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RunPass", Handler: unary(MethodRunPass, newEmpty, AlertServiceServer.RunPass)},
		{MethodName: "ListUserAlerts", Handler: unary(MethodListUserAlerts, newStringValue, AlertServiceServer.ListUserAlerts)},
		{MethodName: "GetAlert", Handler: unary(MethodGetAlert, newStringValue, AlertServiceServer.GetAlert)},
		{MethodName: "VerifyAlert", Handler: unary(MethodVerifyAlert, newStringValue, AlertServiceServer.VerifyAlert)},
		{MethodName: "AddAlert", Handler: unary(MethodAddAlert, newStruct, AlertServiceServer.AddAlert)},
		{MethodName: "PostLimiter", Handler: unary(MethodPostLimiter, newStruct, AlertServiceServer.PostLimiter)},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAlertServiceServer(s grpc.ServiceRegistrar, srv AlertServiceServer) {
	s.RegisterService(&AlertServiceDesc, srv)
}

type AlertServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAlertServiceClient(cc grpc.ClientConnInterface) *AlertServiceClient {
	return &AlertServiceClient{cc: cc}
}

func (c *AlertServiceClient) RunPass(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MethodRunPass, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) ListUserAlerts(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, MethodListUserAlerts, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) GetAlert(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodGetAlert, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) VerifyAlert(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, MethodVerifyAlert, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) AddAlert(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, MethodAddAlert, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) PostLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, MethodPostLimiter, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
