package provisioning

import (
	"context"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// LogObserver writes every status change to the service log
type LogObserver struct{}

func (LogObserver) StatusChanged(ctx context.Context, event domain.StatusEvent) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":     event.RunID,
		"account_id": event.AdAccountID,
		"stage":      event.Stage,
	})

	if event.Status.Kind == domain.StatusError {
		logger.Warnf("provisioning: %s", event.Status.Message)
		return
	}
	logger.Debugf("provisioning: %s", event.Status.Message)
}
