package migration

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// statements are idempotent and applied in order on every start
var statements = []string{
	`CREATE TABLE IF NOT EXISTS provisioning_runs (
		id              TEXT PRIMARY KEY,
		organization_id TEXT        NOT NULL,
		ad_account_ids  TEXT[]      NOT NULL DEFAULT '{}',
		state           TEXT        NOT NULL,
		started_at      TIMESTAMPTZ NOT NULL,
		finished_at     TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS provisioning_runs_started_at_idx ON provisioning_runs (started_at DESC)`,
	`CREATE TABLE IF NOT EXISTS provisioning_outcomes (
		run_id          TEXT        NOT NULL REFERENCES provisioning_runs (id) ON DELETE CASCADE,
		ad_account_id   TEXT        NOT NULL,
		ad_account_name TEXT        NOT NULL DEFAULT '',
		position        INTEGER     NOT NULL DEFAULT 0,
		stage           TEXT        NOT NULL,
		failed_stage    TEXT        NOT NULL DEFAULT '',
		status_kind     TEXT        NOT NULL,
		status_message  TEXT        NOT NULL,
		campaign_id     TEXT        NOT NULL DEFAULT '',
		ad_squad_id     TEXT        NOT NULL DEFAULT '',
		creative_id     TEXT        NOT NULL DEFAULT '',
		ad_id           TEXT        NOT NULL DEFAULT '',
		finished_at     TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (run_id, ad_account_id)
	)`,
}

// Up creates the run history tables in one transaction
func Up(ctx context.Context, conn postgres.Conn) error {
	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return errors.Wrapf(err, "migration statement %d", i)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.ForContext(ctx).Infof("migration: %d statements applied", len(statements))
	return nil
}
