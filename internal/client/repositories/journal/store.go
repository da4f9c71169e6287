package journal

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fitcoach/internal/client/models"
	"github.com/dmitrijs2005/fitcoach/internal/dbx"
)

// DefaultKeep is how many entries per user survive a save.
const DefaultKeep = 50

var ErrNoUser = errors.New("journal entry has no owner")

type Store struct {
	db   *sql.DB
	keep int
	now  func() time.Time
}

func NewStore(db *sql.DB, keep int) *Store {
	if keep <= 0 {
		keep = DefaultKeep
	}
	return &Store{db: db, keep: keep, now: time.Now}
}

// Save inserts e, filling in ID and CreatedAt when they are empty, and trims
// the owner's history to the configured size.
func (s *Store) Save(ctx context.Context, e *models.JournalEntry) error {
	if strings.TrimSpace(e.Username) == "" {
		return ErrNoUser
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.now()
	}
	e.CreatedAt = e.CreatedAt.UTC().Truncate(time.Millisecond)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Insert(ctx, e); err != nil {
			return err
		}
		_, err := repo.Prune(ctx, e.Username, s.keep)
		return err
	})
}

func (s *Store) Recent(ctx context.Context, username string, limit int) ([]models.JournalEntry, error) {
	return NewSQLiteRepository(s.db).Recent(ctx, username, limit)
}
