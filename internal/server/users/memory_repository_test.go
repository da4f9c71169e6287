package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fitcoach/internal/common"
)

func TestMemoryRepository_CopiesRecords(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	age := 20
	in := &User{Username: "alice", PasswordHash: []byte("h"), Age: &age}
	_, err := r.Create(ctx, in)
	require.NoError(t, err)

	// mutating the caller's record does not reach the store
	*in.Age = 99
	in.PasswordHash[0] = 'x'

	got, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, *got.Age)
	assert.Equal(t, []byte("h"), got.PasswordHash)

	*got.Age = 50
	again, err := r.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, *again.Age)
}

func TestMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.GetUserByLogin(ctx, "nobody")
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.UpdateProfile(ctx, "nobody", ProfileUpdate{})
	require.ErrorIs(t, err, common.ErrNotFound)

	_, err = r.Create(ctx, &User{Username: "a"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &User{Username: "a"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}
