package cache

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultSweepSchedule runs DeleteExpired once a minute.
const DefaultSweepSchedule = "@every 1m"

// Sweeper periodically removes expired entries from a Store.
// Lazy eviction on Get keeps reads correct without it; the sweeper bounds memory held by
// entries that are never read again.
type Sweeper struct {
	store  *Store
	cron   *cron.Cron
	logger *slog.Logger
}

// NewSweeper creates a Sweeper that runs on the given cron schedule.
// An empty schedule uses DefaultSweepSchedule.
func NewSweeper(store *Store, schedule string, logger *slog.Logger) (*Sweeper, error) {
	if store == nil {
		return nil, fmt.Errorf("cache sweeper: store is required")
	}
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Sweeper{
		store:  store,
		cron:   cron.New(),
		logger: logger,
	}

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("cache sweeper: invalid schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running the sweep schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Sweeper) sweep() {
	removed := s.store.DeleteExpired()
	if removed > 0 {
		s.logger.Debug("cache sweep removed expired entries",
			slog.Int("removed", removed),
			slog.Int("remaining", s.store.Len()))
	}
}
