package grpc

import (
	"context"
	"errors"
	"fmt"

	z "github.com/Oudwins/zog"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

func validateNonEmpty(value *string) z.ZogIssueList {
	var validator = z.String().Min(1).Required()
	return validator.Validate(value)
}

func stringList(values []string) *structpb.ListValue {
	list := &structpb.ListValue{Values: make([]*structpb.Value, len(values))}
	for i, v := range values {
		list.Values[i] = structpb.NewStringValue(v)
	}
	return list
}

// storeStatus maps evaluator and store errors onto gRPC codes.
func storeStatus(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidAlert):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, models.ErrDuplicateHash):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, models.ErrAmbiguousHash):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	var fetchErr *models.FetchError
	var storeErr *models.StoreError
	if errors.As(err, &fetchErr) || errors.As(err, &storeErr) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func (s *AlertServer) RunPass(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	result, err := s.Alerts.Evaluator.RunPass(ctx)
	if err != nil {
		common.GetLogger().Named(common.LoggerNameGrpcServer).Warn("On demand pass failed", zap.Error(err))
		return nil, storeStatus(err)
	}
	return stringList(result.TriggeredHashes()), nil
}

func (s *AlertServer) ListUserAlerts(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	if err := validateNonEmpty(&req.Value); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: user id %v", err)
	}

	hashes, err := s.Alerts.Manager.HashesByUser(ctx, req.Value)
	if err != nil {
		return nil, storeStatus(err)
	}
	return stringList(hashes), nil
}

func (s *AlertServer) GetAlert(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if err := validateNonEmpty(&req.Value); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: hash %v", err)
	}

	alert, err := s.Alerts.Manager.DetailsByHash(ctx, req.Value)
	if err != nil {
		return nil, storeStatus(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"id":                float64(alert.ID),
		"hash":              alert.Hash,
		"symbol":            alert.Symbol,
		"price_level":       alert.PriceLevel,
		"user_id":           alert.UserID,
		"initial_direction": string(alert.Direction),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (s *AlertServer) VerifyAlert(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	if err := validateNonEmpty(&req.Value); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: hash %v", err)
	}

	ok, err := s.Alerts.Manager.VerifyHash(ctx, req.Value)
	if err != nil {
		return nil, storeStatus(err)
	}
	return wrapperspb.Bool(ok), nil
}

type addAlertRequest struct {
	UserID    string
	Symbol    string
	Level     float64
	Direction string
}

var addAlertValidator = z.Struct(z.Shape{
	"UserID": z.String().Min(1).Required(),
	"Symbol": z.String().Min(1).Required(),
	"Level":  z.Float64().GT(0).Required(),
})

func (s *AlertServer) AddAlert(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error) {
	fields := req.AsMap()

	level, err := cast.ToFloat64E(fields["level"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: level %v", err)
	}
	in := addAlertRequest{
		UserID:    cast.ToString(fields["user_id"]),
		Symbol:    cast.ToString(fields["symbol"]),
		Level:     level,
		Direction: cast.ToString(fields["direction"]),
	}
	if issues := addAlertValidator.Validate(&in); issues != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: %v", issues)
	}

	hash, err := s.Alerts.Manager.AddAlert(ctx, &models.NewAlert{
		UserID:     in.UserID,
		Symbol:     in.Symbol,
		PriceLevel: in.Level,
		Direction:  models.Direction(in.Direction),
	})
	if err != nil {
		return nil, storeStatus(err)
	}
	return wrapperspb.String(hash), nil
}

func (s *AlertServer) PostLimiter(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	fields := req.AsMap()

	userID := cast.ToString(fields["user_id"])
	if err := validateNonEmpty(&userID); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: user id %v", err)
	}
	for _, key := range []string{"rate", "burst"} {
		if _, ok := fields[key]; !ok {
			return nil, status.Errorf(codes.InvalidArgument, "validation error: %s is required", key)
		}
	}
	userRate, err := cast.ToFloat64E(fields["rate"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: rate %v", err)
	}
	userBurst, err := cast.ToIntE(fields["burst"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "validation error: burst %v", err)
	}

	if s.RateLimiterStore == nil {
		return nil, status.Error(codes.FailedPrecondition, "RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
	common.GetLogger().Named(common.LoggerNameGrpcServer).Info("Limiter updated",
		zap.String("user_id", userID),
		zap.String("limiter", fmt.Sprintf("{\"rate\": %v, \"burst\": %v}", userRate, userBurst)),
	)
	return &emptypb.Empty{}, nil
}
