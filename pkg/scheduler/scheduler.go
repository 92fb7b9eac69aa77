// Package scheduler runs evaluation passes on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"liyu1981.xyz/trade-alerts/pkg/alerts"
	"liyu1981.xyz/trade-alerts/pkg/common"
	"liyu1981.xyz/trade-alerts/pkg/models"
)

const (
	DefaultSchedule = "@every 30s"
	DefaultTimeout  = 25 * time.Second
)

// cronLogger routes cron's own logging into zap. cron reports every wake-up
// at info level, which is debug noise here.
type cronLogger struct {
	logger *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

type Scheduler struct {
	cron      *cron.Cron
	evaluator alerts.IEvaluator
	timeout   time.Duration
	parent    context.Context
	cancel    context.CancelFunc
}

// New registers one pass per tick of schedule. A tick that fires while the
// previous pass is still running is skipped.
func New(evaluator alerts.IEvaluator, schedule string, timeout time.Duration) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := cronLogger{
		logger: common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategorySchedule).Sugar(),
	}

	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		evaluator: evaluator,
		timeout:   timeout,
		parent:    context.Background(),
	}

	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.RunOnce() }); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	return s, nil
}

// RunOnce runs a single pass bounded by the pass timeout. Errors are logged
// and returned; the next tick simply tries again.
func (s *Scheduler) RunOnce() (*models.PassResult, error) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategorySchedule)

	ctx, cancel := context.WithTimeout(s.parent, s.timeout)
	defer cancel()

	started := time.Now()
	result, err := s.evaluator.RunPass(ctx)
	if err != nil {
		logger.Error("Scheduled pass failed", zap.Duration("elapsed", time.Since(started)), zap.Error(err))
		return result, err
	}

	logger.Info("Scheduled pass done",
		zap.String("pass_id", result.PassID),
		zap.Int("triggered", len(result.Triggered)),
		zap.Int("reaped", result.Reaped),
		zap.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

// Start begins ticking. Cancelling ctx aborts a running pass.
func (s *Scheduler) Start(ctx context.Context) {
	s.parent, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
}

// Stop stops ticking and cancels the running pass, if any. The returned
// context is done once that pass has returned.
func (s *Scheduler) Stop() context.Context {
	done := s.cron.Stop()
	if s.cancel != nil {
		s.cancel()
	}
	return done
}
