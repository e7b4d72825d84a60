package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resumeforge/internal/domain/resume"

	"golang.org/x/exp/slog"
)

type DraftRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewDraftRepository(storage *Storage, log *slog.Logger) *DraftRepository {
	return &DraftRepository{
		db:  storage.DB(),
		log: log.With("component", "draft_repository"),
	}
}

func (r *DraftRepository) Create(ctx context.Context, d resume.Draft) error {
	record, err := json.Marshal(d.Record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	const query = `INSERT INTO drafts (id, record, created_at, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, d.ID, record, d.CreatedAt, d.UpdatedAt); err != nil {
		r.log.Error("failed to insert draft", "draft_id", d.ID, "error", err)
		return fmt.Errorf("insert draft: %w", err)
	}
	return nil
}

func (r *DraftRepository) Get(ctx context.Context, id string) (*resume.Draft, error) {
	const query = `SELECT id, record, created_at, updated_at FROM drafts WHERE id = ?`

	var (
		d      resume.Draft
		record []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &record, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrNotFound
		}
		r.log.Error("failed to get draft", "draft_id", id, "error", err)
		return nil, fmt.Errorf("get draft: %w", err)
	}

	if err := json.Unmarshal(record, &d.Record); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return &d, nil
}

func (r *DraftRepository) Save(ctx context.Context, d resume.Draft) error {
	record, err := json.Marshal(d.Record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	const query = `UPDATE drafts SET record = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, record, d.UpdatedAt, d.ID)
	if err != nil {
		r.log.Error("failed to save draft", "draft_id", d.ID, "error", err)
		return fmt.Errorf("save draft: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if affected == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM drafts WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete draft", "draft_id", id, "error", err)
		return fmt.Errorf("delete draft: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if affected == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *DraftRepository) List(ctx context.Context) ([]resume.Draft, error) {
	const query = `SELECT id, record, created_at, updated_at FROM drafts ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Error("failed to list drafts", "error", err)
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []resume.Draft
	for rows.Next() {
		var (
			d      resume.Draft
			record []byte
		)
		if err := rows.Scan(&d.ID, &record, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		if err := json.Unmarshal(record, &d.Record); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}
