package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

const (
	runsTable     = "provisioning_runs"
	outcomesTable = "provisioning_outcomes"
)

var ErrRunNotFound = errors.New("run not found")

type RunRepository interface {
	CreateRun(ctx context.Context, run *domain.Run) error
	SaveOutcome(ctx context.Context, runID string, position int, outcome domain.AccountOutcome) error
	FinishRun(ctx context.Context, runID string, finishedAt time.Time) error
	GetRun(ctx context.Context, runID string) (*domain.Run, error)
	ListRuns(ctx context.Context, limit uint64) ([]*domain.Run, error)
}

type runRepository struct {
	conn postgres.Conn
}

func NewRunRepository(conn postgres.Conn) RunRepository {
	return &runRepository{
		conn: conn,
	}
}

func insertRunQuery(run *domain.Run) (string, []any, error) {
	return squirrel.
		Insert(runsTable).
		Columns("id", "organization_id", "ad_account_ids", "state", "started_at").
		Values(run.ID, run.OrganizationID, pq.Array(run.AdAccountIDs), string(run.State), run.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertOutcomeQuery(runID string, position int, outcome domain.AccountOutcome) (string, []any, error) {
	return squirrel.
		Insert(outcomesTable).
		Columns(
			"run_id", "ad_account_id", "ad_account_name", "position", "stage", "failed_stage",
			"status_kind", "status_message", "campaign_id", "ad_squad_id", "creative_id", "ad_id", "finished_at",
		).
		Values(
			runID, outcome.AdAccountID, outcome.AdAccountName, position, string(outcome.Stage), string(outcome.FailedStage),
			outcome.Status.Kind.String(), outcome.Status.Message, outcome.CampaignID, outcome.AdSquadID,
			outcome.CreativeID, outcome.AdID, outcome.FinishedAt,
		).
		Suffix(`ON CONFLICT (run_id, ad_account_id) DO UPDATE SET
			stage = EXCLUDED.stage,
			failed_stage = EXCLUDED.failed_stage,
			status_kind = EXCLUDED.status_kind,
			status_message = EXCLUDED.status_message,
			campaign_id = EXCLUDED.campaign_id,
			ad_squad_id = EXCLUDED.ad_squad_id,
			creative_id = EXCLUDED.creative_id,
			ad_id = EXCLUDED.ad_id,
			finished_at = EXCLUDED.finished_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *runRepository) CreateRun(ctx context.Context, run *domain.Run) error {
	query, args, err := insertRunQuery(run)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *runRepository) SaveOutcome(ctx context.Context, runID string, position int, outcome domain.AccountOutcome) error {
	query, args, err := upsertOutcomeQuery(runID, position, outcome)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

func (r *runRepository) FinishRun(ctx context.Context, runID string, finishedAt time.Time) error {
	query, args, err := squirrel.
		Update(runsTable).
		Set("state", string(domain.RunFinished)).
		Set("finished_at", finishedAt).
		Where(squirrel.Eq{"id": runID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

func selectRuns() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "organization_id", "ad_account_ids", "state", "started_at", "finished_at").
		From(runsTable).
		PlaceholderFormat(squirrel.Dollar)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var (
		run        domain.Run
		state      string
		accountIDs pq.StringArray
		finishedAt sql.NullTime
	)

	if err := row.Scan(&run.ID, &run.OrganizationID, &accountIDs, &state, &run.StartedAt, &finishedAt); err != nil {
		return nil, err
	}

	run.State = domain.RunState(state)
	run.AdAccountIDs = []string(accountIDs)
	if finishedAt.Valid {
		t := finishedAt.Time
		run.FinishedAt = &t
	}
	return &run, nil
}

func (r *runRepository) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	query, args, err := selectRuns().Where(squirrel.Eq{"id": runID}).ToSql()
	if err != nil {
		return nil, err
	}

	run, err := scanRun(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	outcomes, err := r.listOutcomes(ctx, runID)
	if err != nil {
		return nil, err
	}
	run.Outcomes = outcomes

	return run, nil
}

func (r *runRepository) listOutcomes(ctx context.Context, runID string) ([]domain.AccountOutcome, error) {
	query, args, err := squirrel.
		Select(
			"ad_account_id", "ad_account_name", "stage", "failed_stage", "status_kind", "status_message",
			"campaign_id", "ad_squad_id", "creative_id", "ad_id", "finished_at",
		).
		From(outcomesTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	outcomes := make([]domain.AccountOutcome, 0)
	for rows.Next() {
		var (
			outcome            domain.AccountOutcome
			stage, failedStage string
			kind               string
		)

		err := rows.Scan(
			&outcome.AdAccountID, &outcome.AdAccountName, &stage, &failedStage, &kind, &outcome.Status.Message,
			&outcome.CampaignID, &outcome.AdSquadID, &outcome.CreativeID, &outcome.AdID, &outcome.FinishedAt,
		)
		if err != nil {
			return nil, err
		}

		outcome.Stage = domain.Stage(stage)
		outcome.FailedStage = domain.Stage(failedStage)
		outcome.Status.Kind = domain.ParseStatusKind(kind)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, rows.Err()
}

func (r *runRepository) ListRuns(ctx context.Context, limit uint64) ([]*domain.Run, error) {
	query, args, err := selectRuns().OrderBy("started_at DESC").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
