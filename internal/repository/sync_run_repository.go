package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ocreader/internal/model"
	"ocreader/internal/snowflake"
)

type SyncRunRepository interface {
	Create(ctx context.Context) (model.SyncRun, error)
	Finish(ctx context.Context, run model.SyncRun) error
	ListRecent(ctx context.Context, limit int) ([]model.SyncRun, error)
}

type syncRunRepository struct {
	db dbtx
}

func NewSyncRunRepository(db dbtx) SyncRunRepository {
	return &syncRunRepository{db: db}
}

func (r *syncRunRepository) Create(ctx context.Context) (model.SyncRun, error) {
	run := model.SyncRun{
		ID:        snowflake.NextID(),
		StartedAt: time.Now().UTC(),
		Result:    model.SyncResultRunning,
	}
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO sync_runs (id, started_at, result) VALUES (?, ?, ?)`,
		run.ID,
		formatTime(run.StartedAt),
		run.Result,
	)
	if err != nil {
		return model.SyncRun{}, fmt.Errorf("create sync run: %w", err)
	}
	return run, nil
}

func (r *syncRunRepository) Finish(ctx context.Context, run model.SyncRun) error {
	finishedAt := time.Now().UTC()
	if run.FinishedAt != nil {
		finishedAt = *run.FinishedAt
	}
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE sync_runs SET finished_at = ?, result = ?, error = ?, items_received = ?, changes_sent = ? WHERE id = ?`,
		formatTime(finishedAt),
		run.Result,
		nullableString(run.Error),
		run.ItemsReceived,
		run.ChangesSent,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish sync run: %w", err)
	}
	return nil
}

func (r *syncRunRepository) ListRecent(ctx context.Context, limit int) ([]model.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, started_at, finished_at, result, error, items_received, changes_sent
		 FROM sync_runs ORDER BY started_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	defer rows.Close()

	var runs []model.SyncRun
	for rows.Next() {
		var run model.SyncRun
		var startedAt string
		var finishedAt sql.NullString
		var runErr sql.NullString
		if err := rows.Scan(&run.ID, &startedAt, &finishedAt, &run.Result, &runErr, &run.ItemsReceived, &run.ChangesSent); err != nil {
			return nil, fmt.Errorf("scan sync run: %w", err)
		}
		run.StartedAt, err = parseTime(startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse sync run started_at: %w", err)
		}
		run.FinishedAt, err = parseNullTime(finishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse sync run finished_at: %w", err)
		}
		run.Error = stringPtr(runErr)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sync runs: %w", err)
	}

	return runs, nil
}
