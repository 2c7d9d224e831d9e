package repository

import (
	"context"
	"errors"
	"strings"
	"sync"

	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// UserRepository defines the interface for account data access. Accounts
// created through signup live for the process lifetime only.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
}

// NewUserRepository creates an empty in-memory UserRepository.
func NewUserRepository() UserRepository {
	return &userRepository{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

// Create stores a new user, keyed case-insensitively by email.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	key := strings.ToLower(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return ErrUserAlreadyExists
	}
	u := *user
	r.byEmail[key] = &u
	r.byID[u.ID] = &u
	return nil
}

// FindByEmail looks up a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

// FindByID looks up a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}
