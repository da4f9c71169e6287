// Package journal persists mood journal entries in the client's local
// SQLite database.
//
// SQLiteRepository is the plain table access over a dbx.DBTX (either *sql.DB
// or *sql.Tx). Store builds on it and keeps each user's history bounded:
// saving an entry and trimming the oldest ones happen in one transaction.
//
//	store := journal.NewStore(db, journal.DefaultKeep)
//	_ = store.Save(ctx, &models.JournalEntry{Username: "demo", Text: "rest day"})
//	recent, _ := store.Recent(ctx, "demo", 10)
package journal
