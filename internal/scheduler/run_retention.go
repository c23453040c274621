package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// RunPurger drops finished runs from memory
type RunPurger interface {
	PurgeFinished(maxAge time.Duration) int
}

type RunRetentionConfig struct {
	CronSchedule string
	MaxAge       time.Duration
	Enabled      bool
}

type RunRetentionService struct {
	scheduler    *gocron.Scheduler
	config       RunRetentionConfig
	purger       RunPurger
	mutex        sync.Mutex
	lastPurgedAt time.Time
	lastPurged   int
	totalPurged  int
}

func NewRunRetentionService(purger RunPurger, appConfig *config.Config) *RunRetentionService {
	retentionConfig := RunRetentionConfig{
		CronSchedule: appConfig.RunRetention.CronSchedule,
		MaxAge:       appConfig.RunRetention.MaxAge,
		Enabled:      appConfig.RunRetention.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"max_age":       retentionConfig.MaxAge.String(),
		"enabled":       retentionConfig.Enabled,
	}).Info("run retention scheduler configured")

	return &RunRetentionService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    retentionConfig,
		purger:    purger,
	}
}

func (s *RunRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("run retention disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.purge)
	if err != nil {
		return fmt.Errorf("schedule run retention: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping run retention scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RunRetentionService) purge() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	purged := s.purger.PurgeFinished(s.config.MaxAge)
	s.lastPurgedAt = time.Now()
	s.lastPurged = purged
	s.totalPurged += purged

	if purged > 0 {
		log.L.WithField("purged", purged).Info("finished runs purged from memory")
	}
}

func (s *RunRetentionService) TriggerManualSync() {
	go s.purge()
}

func (s *RunRetentionService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":        s.config.Enabled,
		"cron":           s.config.CronSchedule,
		"max_age":        s.config.MaxAge.String(),
		"last_purged_at": s.lastPurgedAt,
		"last_purged":    s.lastPurged,
		"total_purged":   s.totalPurged,
	}
}
