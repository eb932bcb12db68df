// Package scheduler runs the periodic maintenance jobs, currently the
// profit-calculation audit log retention prune.
package scheduler

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/krishimitra/server/internal/config"
	"github.com/krishimitra/server/internal/repository/kv"
	"github.com/krishimitra/server/internal/service/profit"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	store  kv.Store
	cfg    config.RetentionConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance. The cron runs in the
// configured timezone; an unknown timezone falls back to UTC.
func NewScheduler(cfg config.RetentionConfig, store kv.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, scheduler falls back to UTC", zap.String("timezone", cfg.Timezone), zap.Error(err))
		location = time.UTC
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(location)),
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers and launches the scheduled jobs.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.pruneAuditLog); err != nil {
		s.logger.Error("failed to schedule audit prune", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// pruneAuditLog trims the append-only profit_calc log down to the newest
// AuditKeep entries. The log is keyed by creation time in unix millis, so
// ordering comes from the key itself.
func (s *Scheduler) pruneAuditLog() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	scanner, ok := s.store.(kv.PrefixKeyScanner)
	if !ok {
		s.logger.Warn("store does not expose keys, skipping audit prune")
		return
	}

	keys, err := scanner.ScanPrefixKeys(ctx, profit.AuditPrefix)
	if err != nil {
		s.logger.Error("failed to scan audit log", zap.Error(err))
		return
	}
	if len(keys) <= s.cfg.AuditKeep {
		return
	}

	sort.Slice(keys, func(i, j int) bool {
		return auditTimestamp(keys[i]) > auditTimestamp(keys[j])
	})

	pruned := 0
	for _, key := range keys[s.cfg.AuditKeep:] {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Error("failed to delete audit entry", zap.String("key", key), zap.Error(err))
			continue
		}
		pruned++
	}

	s.logger.Info("audit log pruned", zap.Int("removed", pruned), zap.Int("kept", s.cfg.AuditKeep))
}

func auditTimestamp(key string) int64 {
	millis, err := strconv.ParseInt(strings.TrimPrefix(key, profit.AuditPrefix), 10, 64)
	if err != nil {
		return 0
	}
	return millis
}
