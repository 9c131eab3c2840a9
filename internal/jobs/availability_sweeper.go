package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AvailabilityExpirer flips expired availability records to unavailable.
type AvailabilityExpirer interface {
	ClearExpiredAvailability(ctx context.Context, now time.Time) (int64, error)
}

// AvailabilitySweeper periodically clears availability flags whose
// availableUntil has passed, so proximity searches never surface stale
// players even if nobody queries them.
type AvailabilitySweeper struct {
	expirer  AvailabilityExpirer
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewAvailabilitySweeper(expirer AvailabilityExpirer, schedule string, logger *zap.Logger) *AvailabilitySweeper {
	return &AvailabilitySweeper{
		expirer:  expirer,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start schedules the recurring sweep.
func (s *AvailabilitySweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("availability sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("availability sweeper started", zap.String("schedule", s.schedule))
	return nil
}

// RunOnce performs a single sweep.
func (s *AvailabilitySweeper) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cleared, err := s.expirer.ClearExpiredAvailability(ctx, time.Now())
	if err != nil {
		return err
	}
	if cleared > 0 {
		s.logger.Info("cleared expired availability", zap.Int64("players", cleared))
	}
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *AvailabilitySweeper) Stop() {
	<-s.cron.Stop().Done()
}
