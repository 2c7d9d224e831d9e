package repository

import (
	"context"
	"errors"
	"sync"

	"artisan-bazaar/internal/domain"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenRevoked  = errors.New("refresh token has been revoked")
)

// RefreshTokenRepository defines the interface for session token storage.
// Tokens are held in memory; a restart logs everyone out, which is acceptable
// for the simulated identity provider.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, token string) error
}

type refreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*domain.RefreshToken
}

// NewRefreshTokenRepository creates an empty in-memory token store.
func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{
		tokens: make(map[string]*domain.RefreshToken),
	}
}

// Create stores a refresh token.
func (r *refreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := *token
	r.tokens[t.Token] = &t
	return nil
}

// FindByToken returns a token if it exists and has not been revoked.
func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.tokens[token]
	if !exists {
		return nil, ErrRefreshTokenNotFound
	}
	if stored.Revoked {
		return nil, ErrRefreshTokenRevoked
	}
	t := *stored
	return &t, nil
}

// Revoke marks a token as revoked.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.tokens[token]
	if !exists {
		return ErrRefreshTokenNotFound
	}
	stored.Revoked = true
	return nil
}
