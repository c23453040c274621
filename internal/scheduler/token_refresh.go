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

// TokenRefresher obtains a new Snapchat access token
type TokenRefresher interface {
	RefreshToken(ctx context.Context) error
}

type TokenRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// TokenRefreshService keeps the Snapchat access token warm ahead of its expiry
type TokenRefreshService struct {
	scheduler      *gocron.Scheduler
	config         TokenRefreshConfig
	refresher      TokenRefresher
	ctx            context.Context
	running        bool
	mutex          sync.Mutex
	lastStartedAt  time.Time
	lastFinishedAt time.Time
	lastError      string
}

func NewTokenRefreshService(refresher TokenRefresher, appConfig *config.Config) *TokenRefreshService {
	refreshConfig := TokenRefreshConfig{
		CronSchedule: appConfig.TokenRefresh.CronSchedule,
		Enabled:      appConfig.TokenRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("token refresh scheduler configured")

	return &TokenRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    refreshConfig,
		refresher: refresher,
		ctx:       context.Background(),
	}
}

func (s *TokenRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("token refresh disabled by configuration")
		return nil
	}

	s.ctx = ctx
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.refresh)
	if err != nil {
		return fmt.Errorf("schedule token refresh: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("stopping token refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *TokenRefreshService) refresh() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		log.L.Info("token refresh already running, skipping")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	err := s.refresher.RefreshToken(s.ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.running = false
	s.lastFinishedAt = time.Now()
	s.lastError = ""

	if err != nil {
		s.lastError = err.Error()
		log.L.WithError(err).Error("token refresh failed")
		return
	}
	log.L.Info("snapchat access token refreshed")
}

func (s *TokenRefreshService) TriggerManualSync() {
	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()

	if running {
		log.L.Info("token refresh already running, ignoring manual trigger")
		return
	}

	go s.refresh()
}

func (s *TokenRefreshService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":          s.config.Enabled,
		"cron":             s.config.CronSchedule,
		"running":          s.running,
		"last_started_at":  s.lastStartedAt,
		"last_finished_at": s.lastFinishedAt,
		"last_error":       s.lastError,
	}
}
