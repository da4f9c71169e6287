package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/fitcoach/internal/common"
	"github.com/dmitrijs2005/fitcoach/internal/server/auth"
	"github.com/dmitrijs2005/fitcoach/internal/server/config"
)

var (
	ErrUserExists         = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
	now                         func() time.Time
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  bcrypt.DefaultCost,
		now:                         time.Now,
	}
}

func validateCredentials(username string, password []byte) error {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	return nil
}

// Register creates the account and returns an access token for it.
func (s *Service) Register(ctx context.Context, username string, password []byte) (string, error) {
	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword(password, s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password is too long", ErrInvalidInput)
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	goal, level := DefaultGoal, DefaultFitnessLevel
	user := &User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
		Goal:         &goal,
		FitnessLevel: &level,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return "", ErrUserExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateAccessToken(username)
}

// Login checks the password and returns a fresh access token.
func (s *Service) Login(ctx context.Context, username string, password []byte) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, password) != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateAccessToken(user.Username)
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	username, err := auth.GetSubjectFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, username string, upd ProfileUpdate) (*User, error) {
	user, err := s.repo.UpdateProfile(ctx, username, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return user, nil
}

// Seed registers username unless it already exists.
func (s *Service) Seed(ctx context.Context, username string, password []byte) error {
	_, err := s.Register(ctx, username, password)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}

func (s *Service) generateAccessToken(username string) (string, error) {
	token, err := auth.GenerateToken(username, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}
