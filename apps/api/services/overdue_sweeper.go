package services

import (
	"context"
	"sync"
	"time"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// OverdueSweeper periodically scans for capital call allocations past their
// due date and publishes overdue notices for each one. One sweep runs at a
// time; a slow database never stacks sweeps.
type OverdueSweeper struct {
	capitalCallService interfaces.CapitalCallService
	interval           time.Duration
	sweepTimeout       time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewOverdueSweeper creates a sweeper that runs every interval.
func NewOverdueSweeper(capitalCallService interfaces.CapitalCallService, interval time.Duration) *OverdueSweeper {
	ctx, cancel := context.WithCancel(context.Background())

	return &OverdueSweeper{
		capitalCallService: capitalCallService,
		interval:           interval,
		sweepTimeout:       time.Minute,
		ctx:                ctx,
		cancel:             cancel,
	}
}

// Start starts the sweep loop. The first sweep runs after one full interval.
func (s *OverdueSweeper) Start() {
	logger.Info("Starting overdue allocation sweeper", zap.Duration("interval", s.interval))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				logger.Debug("Overdue sweeper stopped")
				return
			case <-ticker.C:
				if err := s.sweep(); err != nil {
					logger.Error("Overdue sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

// Stop stops the sweep loop and waits for an in-flight sweep to finish.
func (s *OverdueSweeper) Stop() {
	logger.Info("Stopping overdue allocation sweeper")
	s.cancel()
	s.wg.Wait()
	logger.Info("Overdue allocation sweeper stopped")
}

func (s *OverdueSweeper) sweep() error {
	ctx, cancel := context.WithTimeout(s.ctx, s.sweepTimeout)
	defer cancel()

	count, err := s.capitalCallService.ProcessOverdueAllocations(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to process overdue allocations")
	}

	if count > 0 {
		logger.Info("Processed overdue allocations", zap.Int("count", count))
	}

	return nil
}
