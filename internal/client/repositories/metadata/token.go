package metadata

import "context"

// TokenKey is the slot holding the bearer token. Its absence means
// "no session".
const TokenKey = "fitness_token"

// TokenSlot stores exactly one bearer token under TokenKey.
type TokenSlot struct {
	repo Repository
}

func NewTokenSlot(repo Repository) *TokenSlot {
	return &TokenSlot{repo: repo}
}

// Load returns the stored token, or "" when the slot is empty.
func (s *TokenSlot) Load(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Save replaces whatever token was stored before.
func (s *TokenSlot) Save(ctx context.Context, token string) error {
	return s.repo.Set(ctx, TokenKey, []byte(token))
}

func (s *TokenSlot) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, TokenKey)
}
