// Package notify delivers triggered alerts to the outside world before the
// evaluator deletes them.
package notify

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

const DefaultChannel = "alerts:triggered"

// Message is the payload published for one triggered alert.
type Message struct {
	Hash        string           `json:"hash"`
	UserID      string           `json:"user_id"`
	Symbol      string           `json:"symbol"`
	PriceLevel  float64          `json:"price_level"`
	Direction   models.Direction `json:"direction,omitempty"`
	Price       float64          `json:"price"`
	TriggeredAt time.Time        `json:"triggered_at"`
}

func NewMessage(t models.TriggeredAlert) Message {
	return Message{
		Hash:        t.Alert.Hash,
		UserID:      t.Alert.UserID,
		Symbol:      t.Alert.Symbol,
		PriceLevel:  t.Alert.PriceLevel,
		Direction:   t.Alert.Direction,
		Price:       t.Price,
		TriggeredAt: t.TriggeredAt,
	}
}

type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, t models.TriggeredAlert) error {
	common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryNotify).Info("Alert triggered for user",
		zap.String("user_id", t.Alert.UserID),
		zap.String("hash", t.Alert.Hash),
		zap.String("symbol", t.Alert.Symbol),
		zap.Float64("price_level", t.Alert.PriceLevel),
		zap.Float64("price", t.Price),
	)
	return nil
}

// Publisher is the part of *redis.Client the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

type RedisNotifier struct {
	publisher Publisher
	channel   string
}

func NewRedisNotifier(publisher Publisher, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{publisher: publisher, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, t models.TriggeredAlert) error {
	payload, err := json.Marshal(NewMessage(t))
	if err != nil {
		return err
	}

	receivers, err := n.publisher.Publish(ctx, n.channel, payload).Result()
	if err != nil {
		return err
	}

	common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryNotify).Debug("Published triggered alert",
		zap.String("channel", n.channel),
		zap.String("hash", t.Alert.Hash),
		zap.Int64("receivers", receivers),
	)
	return nil
}

// Fanout calls every notifier, even after one fails, and combines the errors.
type Fanout []alerts.INotifier

func (f Fanout) Notify(ctx context.Context, t models.TriggeredAlert) error {
	var errs error
	for _, n := range f {
		errs = multierr.Append(errs, n.Notify(ctx, t))
	}
	return errs
}
