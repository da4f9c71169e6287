package journal

import (
	"context"

	"github.com/dmitrijs2005/fitcoach/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, e *models.JournalEntry) error

	// Recent returns up to limit entries of username, newest first.
	Recent(ctx context.Context, username string, limit int) ([]models.JournalEntry, error)

	// Prune deletes all but the newest keep entries of username and reports
	// how many rows went.
	Prune(ctx context.Context, username string, keep int) (int64, error)
}
