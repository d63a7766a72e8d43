package sqlite

import (
	"context"
	"database/sql"
	"time"

	"questlog/internal/goal"
	repo "questlog/internal/goal/repository"
	"questlog/internal/model"
)

const defaultListLimit = 50

// RecordEdit appends one entry to a goal's history.
func (r *implRepository) RecordEdit(ctx context.Context, opt repo.RecordEditOptions) error {
	const query = `
		INSERT INTO goal_edits (goal_id, kind, mode, progress, created_at)
		VALUES (?, ?, ?, ?, ?)`

	createdAt := opt.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, opt.GoalID, string(opt.Kind), string(opt.Mode), opt.Progress, createdAt.UnixMilli())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("RecordEdit"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// LatestMode returns the mode recorded by the newest mode-affecting entry.
// Derived entries never change mode and are ignored. ok is false when the
// goal has no such entry.
func (r *implRepository) LatestMode(ctx context.Context, goalID string) (model.ProgressMode, bool, error) {
	const query = `
		SELECT mode FROM goal_edits
		WHERE goal_id = ? AND kind IN (?, ?)
		ORDER BY id DESC
		LIMIT 1`

	var mode string
	err := r.db.QueryRowContext(ctx, query, goalID, string(goal.EditManualProgress), string(goal.EditModeToggle)).Scan(&mode)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("LatestMode"), err)
		return "", false, repo.ErrFailedToGet
	}
	return model.ProgressMode(mode), true, nil
}

// ListEdits returns the newest entries first.
func (r *implRepository) ListEdits(ctx context.Context, opt repo.ListEditsOptions) ([]goal.Edit, error) {
	const query = `
		SELECT id, goal_id, kind, mode, progress, created_at FROM goal_edits
		WHERE goal_id = ?
		ORDER BY id DESC
		LIMIT ?`

	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.QueryContext(ctx, query, opt.GoalID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEdits"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	edits := make([]goal.Edit, 0)
	for rows.Next() {
		var (
			e          goal.Edit
			kind, mode string
			createdAt  int64
		)
		if err := rows.Scan(&e.ID, &e.GoalID, &kind, &mode, &e.Progress, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEdits"), err)
			return nil, repo.ErrFailedToList
		}
		e.Kind = goal.EditKind(kind)
		e.Mode = model.ProgressMode(mode)
		e.CreatedAt = time.UnixMilli(createdAt)
		edits = append(edits, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEdits"), err)
		return nil, repo.ErrFailedToList
	}
	return edits, nil
}

// DeleteGoalHistory removes every entry of a deleted goal.
func (r *implRepository) DeleteGoalHistory(ctx context.Context, goalID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM goal_edits WHERE goal_id = ?`, goalID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteGoalHistory"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
