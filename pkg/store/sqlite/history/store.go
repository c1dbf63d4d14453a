package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/fdd-atlas/pkg/models/store"
)

// Store persists questionnaire run history.
type Store interface {
	Add(ctx context.Context, run store.ReportRun) error
	List(ctx context.Context, limit int) ([]store.ReportRun, error)
	Get(ctx context.Context, id string) (store.ReportRun, error)
}

var ErrNotFound = fmt.Errorf("report run not found")

type historyStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &historyStore{db: db}
}

func (h *historyStore) Add(ctx context.Context, run store.ReportRun) error {
	logger := zerolog.Ctx(ctx)

	stmt, err := h.db.PrepareContext(ctx, `
		INSERT INTO report_runs (
			id, source_file, created_at, total_items,
			alta_count, media_count, baja_count, report_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare report run insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		run.ID, run.SourceFile, run.CreatedAt, run.TotalItems,
		run.AltaCount, run.MediaCount, run.BajaCount, run.ReportJSON,
	)
	if err != nil {
		return fmt.Errorf("insert report run %s: %w", run.ID, err)
	}

	logger.Debug().Str("run_id", run.ID).Str("source", run.SourceFile).Msg("report run stored")
	return nil
}

func (h *historyStore) List(ctx context.Context, limit int) ([]store.ReportRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, source_file, created_at, total_items,
		       alta_count, media_count, baja_count
		FROM report_runs
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list report runs: %w", err)
	}
	defer rows.Close()

	var runs []store.ReportRun
	for rows.Next() {
		var run store.ReportRun
		if err := rows.Scan(
			&run.ID, &run.SourceFile, &run.CreatedAt, &run.TotalItems,
			&run.AltaCount, &run.MediaCount, &run.BajaCount,
		); err != nil {
			return nil, fmt.Errorf("scan report run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (h *historyStore) Get(ctx context.Context, id string) (store.ReportRun, error) {
	var run store.ReportRun
	err := h.db.QueryRowContext(ctx, `
		SELECT id, source_file, created_at, total_items,
		       alta_count, media_count, baja_count, report_json
		FROM report_runs
		WHERE id = ?`, id).Scan(
		&run.ID, &run.SourceFile, &run.CreatedAt, &run.TotalItems,
		&run.AltaCount, &run.MediaCount, &run.BajaCount, &run.ReportJSON,
	)
	if err == sql.ErrNoRows {
		return store.ReportRun{}, ErrNotFound
	}
	if err != nil {
		return store.ReportRun{}, fmt.Errorf("get report run %s: %w", id, err)
	}
	return run, nil
}
