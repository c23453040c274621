package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

type fakeRefresher struct {
	mu      sync.Mutex
	calls   int
	err     error
	release chan struct{}
}

func (f *fakeRefresher) RefreshToken(ctx context.Context) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

type fakePurger struct {
	maxAge time.Duration
	purged int
}

func (f *fakePurger) PurgeFinished(maxAge time.Duration) int {
	f.maxAge = maxAge
	return f.purged
}

func testConfig() *config.Config {
	return &config.Config{
		TokenRefresh: config.TokenRefresh{CronSchedule: "*/20 * * * *", Enabled: true},
		RunRetention: config.RunRetention{CronSchedule: "0 * * * *", MaxAge: 24 * time.Hour, Enabled: true},
	}
}

func TestTokenRefreshService_refresh(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		err      error
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "successful refresh clears the last error",
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "", status["last_error"])
				assert.False(t, status["last_finished_at"].(time.Time).IsZero())
			},
		},
		{
			name: "failed refresh is kept in the status",
			err:  errors.New("invalid_grant"),
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "invalid_grant", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refresher := &fakeRefresher{err: tt.err}
			service := NewTokenRefreshService(refresher, testConfig())

			service.refresh()

			assert.Equal(t, 1, refresher.calls)
			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			tt.validate(t, status)
		})
	}
}

func TestTokenRefreshService_skipsWhileRunning(t *testing.T) {
	log.SetupTestLogger()
	refresher := &fakeRefresher{release: make(chan struct{})}
	service := NewTokenRefreshService(refresher, testConfig())

	done := make(chan struct{})
	go func() {
		service.refresh()
		close(done)
	}()

	require.Eventually(t, func() bool {
		return service.GetStatus()["running"] == true
	}, time.Second, 5*time.Millisecond)

	service.refresh()
	close(refresher.release)
	<-done

	assert.Equal(t, 1, refresher.calls)
}

func TestTokenRefreshService_Start(t *testing.T) {
	log.SetupTestLogger()

	cfg := testConfig()
	cfg.TokenRefresh.Enabled = false
	assert.NoError(t, NewTokenRefreshService(&fakeRefresher{}, cfg).Start(context.Background()))

	cfg = testConfig()
	cfg.TokenRefresh.CronSchedule = "not a cron"
	err := NewTokenRefreshService(&fakeRefresher{}, cfg).Start(context.Background())
	assert.ErrorContains(t, err, "schedule token refresh")
}

func TestRunRetentionService_purge(t *testing.T) {
	log.SetupTestLogger()
	purger := &fakePurger{purged: 3}
	service := NewRunRetentionService(purger, testConfig())

	service.purge()
	service.purge()

	status := service.GetStatus()
	assert.Equal(t, 24*time.Hour, purger.maxAge)
	assert.Equal(t, 3, status["last_purged"])
	assert.Equal(t, 6, status["total_purged"])
	assert.Equal(t, "24h0m0s", status["max_age"])
}
