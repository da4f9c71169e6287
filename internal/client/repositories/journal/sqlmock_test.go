package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fitcoach/internal/client/models"
)

func TestStore_SaveRollsBackWhenPruneFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO journal_entries").
		WithArgs("id-1", "demo", "low", "tired", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("DELETE FROM journal_entries").
		WithArgs("demo", "demo", 5).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	s := NewStore(db, 5)
	err = s.Save(context.Background(), &models.JournalEntry{
		ID: "id-1", Username: "demo", Mood: "low", Text: "tired", CreatedAt: time.Now(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prune")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveBeginFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	s := NewStore(db, 5)
	require.Error(t, s.Save(context.Background(), &models.JournalEntry{Username: "demo", Text: "x"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecent_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "username", "mood", "text", "created_at"}).
		AddRow("a", "demo", "good", "fine", "not-a-number")
	mock.ExpectQuery("SELECT id, username, mood, text, created_at FROM journal_entries").
		WithArgs("demo", 3).
		WillReturnRows(rows)

	_, err = NewSQLiteRepository(db).Recent(context.Background(), "demo", 3)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
