package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fitcoach/internal/client/models"
	"github.com/dmitrijs2005/fitcoach/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, username, mood, text, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Username, e.Mood, e.Text, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Recent(ctx context.Context, username string, limit int) ([]models.JournalEntry, error) {
	query := `SELECT id, username, mood, text, created_at FROM journal_entries
		WHERE username = ? ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select journal entries: %w", err)
	}
	defer rows.Close()

	var result []models.JournalEntry
	for rows.Next() {
		var (
			e  models.JournalEntry
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Username, &e.Mood, &e.Text, &ms); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(ms).UTC()
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Prune(ctx context.Context, username string, keep int) (int64, error) {
	query := `DELETE FROM journal_entries WHERE username = ? AND id NOT IN (
		SELECT id FROM journal_entries WHERE username = ?
		ORDER BY created_at DESC, id DESC LIMIT ?)`
	res, err := r.db.ExecContext(ctx, query, username, username, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
