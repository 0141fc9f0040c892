package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"axlas-recipes/domain/model"
	"axlas-recipes/domain/repository"
	"axlas-recipes/infrastructure/logger"
)

// EnsureDiscoveryLogSchema creates the discovery audit table if not exists
func EnsureDiscoveryLogSchema(db *sql.DB) error {
	ddl := `CREATE TABLE IF NOT EXISTS discovery_runs (
        id BIGSERIAL PRIMARY KEY,
        source TEXT NOT NULL,
        url_count INT NOT NULL,
        urls JSONB NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`
	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create discovery_runs table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_discovery_runs_created_at ON discovery_runs(created_at)`); err != nil {
		logger.GetLogger().WithField("error", err).Warn("failed creating idx_discovery_runs_created_at")
	}

	return nil
}

// DiscoveryLogRepository records discovery runs for later inspection.
// URLs are stored as JSONB; no relational mapping needed for an audit trail.
type DiscoveryLogRepository struct{ db *sql.DB }

func NewDiscoveryLogRepository(db *sql.DB) repository.IDiscoveryLog {
	return &DiscoveryLogRepository{db: db}
}

func (r *DiscoveryLogRepository) RecordRun(ctx context.Context, run *model.DiscoveryRun) error {
	if r.db == nil {
		return nil
	}
	raw, err := json.Marshal(run.URLs)
	if err != nil {
		return err
	}
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO discovery_runs(source, url_count, urls, created_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		run.Source, run.URLCount, raw, run.CreatedAt,
	)
	return row.Scan(&run.ID)
}

func (r *DiscoveryLogRepository) RecentRuns(ctx context.Context, limit int) ([]model.DiscoveryRun, error) {
	if r.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 25
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, url_count, urls, created_at FROM discovery_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DiscoveryRun, 0, limit)
	for rows.Next() {
		var run model.DiscoveryRun
		var raw []byte
		if err := rows.Scan(&run.ID, &run.Source, &run.URLCount, &raw, &run.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &run.URLs); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
