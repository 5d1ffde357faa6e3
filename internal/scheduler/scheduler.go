package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Gokul-61/BIS-Nutrition-Advisor/internal/repository/feedtable"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	table    *feedtable.Table
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a scheduler that refreshes the feed-composition table
// on the given cron schedule.
func NewScheduler(schedule string, table *feedtable.Table, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard 5-field cron (min, hour, dom,
	// month, dow).
	return &Scheduler{
		cron:     cron.New(),
		table:    table,
		schedule: schedule,
		logger:   logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	_, err := s.cron.AddFunc(s.schedule, s.refreshFeedTable)
	if err != nil {
		s.logger.Error("failed to schedule feed table refresh", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshFeedTable() {
	s.logger.Info("refreshing feed table")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.table.Refresh(ctx); err != nil {
		// Evaluations keep serving the previous snapshot.
		s.logger.Error("feed table refresh failed", zap.Error(err))
		return
	}

	s.logger.Info("feed table refreshed successfully")
}
