package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fitcoach/internal/dbx"
)

const (
	selectSetting = `SELECT value FROM metadata WHERE key = ?`
	upsertSetting = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	deleteSetting = `DELETE FROM metadata WHERE key = ?`
)

// SQLiteStore keeps client settings, the session token among them, as rows
// of the local metadata table. A row is either present with a non-empty
// value or absent; writing an empty value removes the row.
type SQLiteStore struct {
	db dbx.DBTX
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	switch err := s.db.QueryRowContext(ctx, selectSetting, key).Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read setting %q: %w", key, err)
	}
	if len(value) == 0 {
		return nil, nil
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if len(value) == 0 {
		return s.Delete(ctx, key)
	}
	if _, err := s.db.ExecContext(ctx, upsertSetting, key, value); err != nil {
		return fmt.Errorf("write setting %q: %w", key, err)
	}
	return nil
}

// Delete is a no-op for a key that was never written.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteSetting, key); err != nil {
		return fmt.Errorf("remove setting %q: %w", key, err)
	}
	return nil
}
