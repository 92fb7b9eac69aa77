package grpc

import (
	"context"

	"github.com/spf13/cast"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"liyu1981.xyz/trade-alerts/pkg/common"
)

const MetadataKeyUserID = "x-user-id"

// requestUserID finds who is calling: the x-user-id metadata first, then the
// user id carried in the request itself.
func requestUserID(ctx context.Context, fullMethod string, req any) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(MetadataKeyUserID); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}

	switch r := req.(type) {
	case *wrapperspb.StringValue:
		if fullMethod == MethodListUserAlerts {
			return r.GetValue()
		}
	case *structpb.Struct:
		if v, ok := r.GetFields()["user_id"]; ok {
			return cast.ToString(v.AsInterface())
		}
	}
	return ""
}

func (s *AlertServer) CreateRateLimitInterceptor(targetMethods []string) grpc.UnaryServerInterceptor {
	targetMethodMap := common.Reducer(targetMethods,
		func(m map[string]bool, method string) map[string]bool {
			m[method] = true
			return m
		},
		map[string]bool{},
	)

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if _, ok := targetMethodMap[info.FullMethod]; ok {
			userID := requestUserID(ctx, info.FullMethod, req)
			if userID != "" && !s.CheckUserLimiter(userID) {
				return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded")
			}
		}

		return handler(ctx, req)
	}
}
