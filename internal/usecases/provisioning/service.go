package provisioning

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/repository"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
	"github.com/tdhftu/snapchat-ads-tools/pkg/utils"
)

type ProvisioningService interface {
	// Submit starts a run in the background. An empty selection returns a nil run.
	Submit(ctx context.Context, form Form) (*domain.Run, error)
	Wait(ctx context.Context, runID string) (*domain.RunReport, error)
	GetRun(ctx context.Context, runID string) (*domain.RunReport, error)
	ListRuns(ctx context.Context, limit uint64) ([]*domain.Run, error)
	PurgeFinished(maxAge time.Duration) int
	Shutdown(ctx context.Context) error
}

type runState struct {
	mu    sync.RWMutex
	run   domain.Run
	board *Board
	done  chan struct{}
}

func (r *runState) report() *domain.RunReport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run := r.run
	run.AdAccountIDs = append([]string(nil), r.run.AdAccountIDs...)
	run.Outcomes = append([]domain.AccountOutcome(nil), r.run.Outcomes...)
	if r.run.FinishedAt != nil {
		finishedAt := *r.run.FinishedAt
		run.FinishedAt = &finishedAt
	}

	return &domain.RunReport{Run: run, Rows: r.board.Rows()}
}

type Service struct {
	appCtx        context.Context
	platform      Platform
	accounts      AccountLister
	runRepository repository.RunRepository
	observers     []Observer
	cfg           *config.Config
	now           func() time.Time

	// pipelineMu keeps a single pipeline in flight across all runs
	pipelineMu sync.Mutex

	mu   sync.RWMutex
	runs map[string]*runState
	wg   sync.WaitGroup
}

// NewService builds the run service. Background runs use appCtx; cancelling it aborts the
// account in flight. runRepository may be nil when history is not kept.
func NewService(
	appCtx context.Context,
	platform Platform,
	accounts AccountLister,
	runRepository repository.RunRepository,
	cfg *config.Config,
	observers ...Observer,
) ProvisioningService {
	return &Service{
		appCtx:        appCtx,
		platform:      platform,
		accounts:      accounts,
		runRepository: runRepository,
		observers:     observers,
		cfg:           cfg,
		now:           func() time.Time { return time.Now().UTC() },
		runs:          make(map[string]*runState),
	}
}

func (s *Service) Submit(ctx context.Context, form Form) (*domain.Run, error) {
	selected := uniqueIDs(form.AdAccountIDs)
	if len(selected) == 0 {
		return nil, nil
	}

	logger := log.ForContext(ctx).WithField("organization_id", form.OrganizationID)

	if err := Validate.Struct(form); err != nil {
		logger.WithError(err).Info("provisioning: invalid form")
		return nil, NewProvisioningError(ErrInvalidForm, apiErrors.ErrInvalidFormat, FieldErrors(err))
	}

	accounts, err := s.accounts.ListAdAccounts(ctx, form.OrganizationID)
	if err != nil {
		logger.WithError(err).Error("provisioning: failed to load ad accounts")
		return nil, NewProvisioningError(ErrFetchAccounts, apiErrors.ErrExternalService, err.Error())
	}

	board := NewBoard(accounts)
	for _, id := range selected {
		if !board.Has(id) {
			return nil, NewProvisioningError(ErrUnknownAccount, apiErrors.ErrUnknownAccount, id)
		}
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, NewProvisioningError(ErrGenerateID, apiErrors.ErrInternalServer, nil)
	}

	state := &runState{
		run: domain.Run{
			ID:             runID,
			OrganizationID: form.OrganizationID,
			AdAccountIDs:   selected,
			State:          domain.RunPending,
			StartedAt:      s.now(),
			Outcomes:       make([]domain.AccountOutcome, 0, len(selected)),
		},
		board: board,
		done:  make(chan struct{}),
	}

	if s.runRepository != nil {
		if err := s.runRepository.CreateRun(ctx, &state.run); err != nil {
			logger.WithError(err).Warn("provisioning: run history not recorded")
		}
	}

	s.mu.Lock()
	s.runs[runID] = state
	s.mu.Unlock()

	runCtx := context.WithValue(s.appCtx, log.CorrelationIDKey, log.GetCorrelationID(ctx))
	campaignDraft := form.CampaignDraft()
	adSquadDraft := form.AdSquadDraft(s.cfg.Provisioning.CountryCode)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process(runCtx, state, campaignDraft, adSquadDraft)
	}()

	logger.WithFields(log.Fields{"run_id": runID, "accounts": len(selected)}).Info("provisioning: run submitted")

	run := state.report().Run
	return &run, nil
}

// process walks the selection in order, one account pipeline at a time
func (s *Service) process(ctx context.Context, state *runState, campaignDraft domain.CampaignDraft, adSquadDraft domain.AdSquadDraft) {
	defer close(state.done)

	s.pipelineMu.Lock()
	defer s.pipelineMu.Unlock()

	state.mu.Lock()
	state.run.State = domain.RunRunning
	runID := state.run.ID
	selected := state.run.AdAccountIDs
	state.mu.Unlock()

	logger := log.ForContext(ctx).WithField("run_id", runID)

	for position, adAccountID := range selected {
		report := func(stage domain.Stage, status domain.Status) {
			s.setStatus(ctx, state, adAccountID, stage, status)
		}

		var outcome domain.AccountOutcome
		if ctx.Err() != nil {
			status := domain.ErrorStatus(MessageInterrupted)
			report(domain.StageFailed, status)
			outcome = domain.AccountOutcome{AdAccountID: adAccountID, Stage: domain.StageFailed, Status: status, FinishedAt: s.now()}
		} else {
			pipeline := &accountPipeline{
				adAccountID:   adAccountID,
				campaignDraft: campaignDraft,
				adSquadDraft:  adSquadDraft,
			}
			outcome = pipeline.run(ctx, s.platform, report)
		}

		if row, ok := state.board.Row(adAccountID); ok {
			outcome.AdAccountName = row.AdAccount.Name
		}

		state.mu.Lock()
		state.run.Outcomes = append(state.run.Outcomes, outcome)
		state.mu.Unlock()

		if s.runRepository != nil {
			if err := s.runRepository.SaveOutcome(context.WithoutCancel(ctx), runID, position, outcome); err != nil {
				logger.WithError(err).WithField("account_id", adAccountID).Warn("provisioning: outcome not recorded")
			}
		}
	}

	finishedAt := s.now()
	state.mu.Lock()
	state.run.State = domain.RunFinished
	state.run.FinishedAt = &finishedAt
	state.mu.Unlock()

	if s.runRepository != nil {
		if err := s.runRepository.FinishRun(context.WithoutCancel(ctx), runID, finishedAt); err != nil {
			logger.WithError(err).Warn("provisioning: run completion not recorded")
		}
	}

	logger.Info("provisioning: run finished")
}

func (s *Service) setStatus(ctx context.Context, state *runState, adAccountID string, stage domain.Stage, status domain.Status) {
	if _, ok := state.board.SetStatus(adAccountID, status); !ok {
		return
	}

	event := domain.StatusEvent{
		RunID:       state.run.ID,
		AdAccountID: adAccountID,
		Stage:       stage,
		Status:      status,
		Class:       status.Class(),
		At:          s.now(),
	}

	for _, observer := range s.observers {
		observer.StatusChanged(ctx, event)
	}
}

func (s *Service) lookup(runID string) (*runState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.runs[runID]
	return state, ok
}

// Wait blocks until the run has processed every account or ctx is done
func (s *Service) Wait(ctx context.Context, runID string) (*domain.RunReport, error) {
	state, ok := s.lookup(runID)
	if !ok {
		return nil, NewProvisioningError(ErrRunNotFound, apiErrors.ErrNotFound, runID)
	}

	select {
	case <-state.done:
		return state.report(), nil
	case <-ctx.Done():
		return state.report(), ctx.Err()
	}
}

func (s *Service) GetRun(ctx context.Context, runID string) (*domain.RunReport, error) {
	if state, ok := s.lookup(runID); ok {
		return state.report(), nil
	}

	if s.runRepository == nil {
		return nil, NewProvisioningError(ErrRunNotFound, apiErrors.ErrNotFound, runID)
	}

	run, err := s.runRepository.GetRun(ctx, runID)
	if errors.Is(err, repository.ErrRunNotFound) {
		return nil, NewProvisioningError(ErrRunNotFound, apiErrors.ErrNotFound, runID)
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("run_id", runID).Error("provisioning: failed to read run")
		return nil, NewProvisioningError(ErrHistory, apiErrors.ErrDatabaseOperation, nil)
	}

	return reportFromHistory(run), nil
}

// reportFromHistory rebuilds the board from stored outcomes
func reportFromHistory(run *domain.Run) *domain.RunReport {
	rows := make([]domain.AccountRow, 0, len(run.Outcomes))
	for _, outcome := range run.Outcomes {
		rows = append(rows, domain.AccountRow{
			AdAccount: domain.AdAccount{ID: outcome.AdAccountID, Name: outcome.AdAccountName},
			Status:    outcome.Status,
		})
	}
	return &domain.RunReport{Run: *run, Rows: rows}
}

func (s *Service) ListRuns(ctx context.Context, limit uint64) ([]*domain.Run, error) {
	if s.runRepository != nil {
		runs, err := s.runRepository.ListRuns(ctx, limit)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("provisioning: failed to list runs")
			return nil, NewProvisioningError(ErrHistory, apiErrors.ErrDatabaseOperation, nil)
		}
		return runs, nil
	}

	s.mu.RLock()
	runs := make([]*domain.Run, 0, len(s.runs))
	for _, state := range s.runs {
		run := state.report().Run
		runs = append(runs, &run)
	}
	s.mu.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && uint64(len(runs)) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// PurgeFinished forgets runs that finished more than maxAge ago
func (s *Service) PurgeFinished(maxAge time.Duration) int {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, state := range s.runs {
		state.mu.RLock()
		finishedAt := state.run.FinishedAt
		state.mu.RUnlock()

		if finishedAt != nil && finishedAt.Before(cutoff) {
			delete(s.runs, id)
			purged++
		}
	}
	return purged
}

// Shutdown waits for background runs to return
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
