package alerts

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"liyu1981.xyz/trade-alerts/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_alerts.go -package=mocks liyu1981.xyz/trade-alerts/pkg/alerts IPriceFeed,IAlertStore,INotifier,IEvaluator,IManager

type IPriceFeed interface {
	FetchPrice(ctx context.Context, symbol string) (float64, error)
}

type IAlertStore interface {
	DistinctSymbols(ctx context.Context, cfg models.TableConfig) ([]string, error)
	AllAlerts(ctx context.Context, cfg models.TableConfig) ([]models.Row, error)
	ResolveIDByHash(ctx context.Context, hash string, cfg models.TableConfig) (models.RowID, error)
	DeleteRow(ctx context.Context, table string, id models.RowID) error
	InsertIfUnique(ctx context.Context, cfg models.TableConfig, row models.Row) error
	SelectWhere(ctx context.Context, cfg models.TableConfig, column string, value string) ([]models.Row, error)
}

// INotifier receives every triggered alert before its row is deleted.
type INotifier interface {
	Notify(ctx context.Context, triggered models.TriggeredAlert) error
}

type IEvaluator interface {
	RunPass(ctx context.Context) (*models.PassResult, error)
	CheckTriggered(ctx context.Context) (*models.PassResult, error)
	ReapTriggered(ctx context.Context, triggered []models.TriggeredAlert) (int, error)
}

type IManager interface {
	AddAlert(ctx context.Context, input *models.NewAlert) (string, error)
	HashesByUser(ctx context.Context, userID string) ([]string, error)
	DetailsByHash(ctx context.Context, hash string) (*models.Alert, error)
	VerifyHash(ctx context.Context, hash string) (bool, error)
}

type ReapPolicy int

const (
	// ReapFailFast stops at the first failed alert and returns its error.
	ReapFailFast ReapPolicy = iota
	// ReapContinue attempts every alert and returns the combined errors.
	ReapContinue
)

const (
	DefaultTolerance  = 0.00001
	DefaultHashPrefix = "xlx-a-"
)

type Options struct {
	// Tolerance is the relative band of the legacy rule. Zero or negative
	// selects DefaultTolerance, so an exact-match band cannot be configured.
	Tolerance        float64
	QuoteConcurrency int
	ReapPolicy       ReapPolicy
	HashPrefix       string
	Now              func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.QuoteConcurrency < 1 {
		o.QuoteConcurrency = 1
	}
	if o.HashPrefix == "" {
		o.HashPrefix = DefaultHashPrefix
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

type Alerts struct {
	Feed     IPriceFeed
	Store    IAlertStore
	Notifier INotifier
	Table    models.TableConfig
	Options  Options

	Evaluator IEvaluator
	Manager   IManager

	// one pass at a time, whoever starts it
	passOnce sync.Once
	passSem  *semaphore.Weighted
}

// acquirePass waits until no other pass is running or ctx is done.
func (a *Alerts) acquirePass(ctx context.Context) error {
	a.passOnce.Do(func() {
		a.passSem = semaphore.NewWeighted(1)
	})
	return a.passSem.Acquire(ctx, 1)
}

func (a *Alerts) releasePass() {
	a.passSem.Release(1)
}

type ServiceOpts struct {
	Evaluator IEvaluator
	Manager   IManager
}

func (a *Alerts) WithServices(opts ServiceOpts) *Alerts {
	if opts.Evaluator != nil {
		a.Evaluator = opts.Evaluator
	}
	if opts.Manager != nil {
		a.Manager = opts.Manager
	}
	return a
}
