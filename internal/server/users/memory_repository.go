package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fitcoach/internal/common"
)

// MemoryRepository keeps users in process memory. Callers always receive
// copies, so nothing outside the repository can mutate stored records.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return nil, common.ErrAlreadyExists
	}
	r.users[user.Username] = user.clone()
	return user.clone(), nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[login]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u.clone(), nil
}

func (r *MemoryRepository) UpdateProfile(ctx context.Context, login string, upd ProfileUpdate) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[login]
	if !ok {
		return nil, common.ErrNotFound
	}
	u.apply(upd)
	return u.clone(), nil
}
