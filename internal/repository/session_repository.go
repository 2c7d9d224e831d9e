package repository

import (
	"context"
	"errors"
	"sync"

	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("payment session not found")
)

// SessionRepository defines the interface for live payment sessions. A
// session exists only between checkout start and dialog close.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.PaymentSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PaymentSession, error)
	Update(ctx context.Context, session *domain.PaymentSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.PaymentSession
}

// NewSessionRepository creates an empty in-memory session store.
func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*domain.PaymentSession),
	}
}

// Create stores a new session.
func (r *sessionRepository) Create(ctx context.Context, session *domain.PaymentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := *session
	r.sessions[s.ID] = &s
	return nil
}

// FindByID returns a copy of a session.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PaymentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	s := *stored
	return &s, nil
}

// Update replaces a stored session.
func (r *sessionRepository) Update(ctx context.Context, session *domain.PaymentSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return ErrSessionNotFound
	}
	s := *session
	r.sessions[s.ID] = &s
	return nil
}

// Delete discards a session.
func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}
