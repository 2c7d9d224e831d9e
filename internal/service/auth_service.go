package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10

	// Token expiration times
	AccessTokenExpiration  = 15 * time.Minute
	RefreshTokenExpiration = 7 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// Claims represents the JWT claims
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// SignupParams carries the signup form fields.
type SignupParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Location        string
	Role            domain.Role
}

// AuthService is the stand-in identity provider. It mimics a real
// credential-verification service behind a simulated round-trip latency:
// accounts created through signup are checked against their stored hash,
// while unknown emails resolve to a fabricated demo profile, matching the
// accept-anything behavior of the mock it replaces.
type AuthService interface {
	Login(ctx context.Context, email, password string, role domain.Role) (accessToken, refreshToken string, user *domain.User, err error)
	Signup(ctx context.Context, params SignupParams) (accessToken, refreshToken string, user *domain.User, err error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type authService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtSecret        string
	latency          time.Duration
}

// NewAuthService creates a new instance of AuthService. latency is the
// simulated identity-provider round trip applied to login and signup.
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtSecret string,
	latency time.Duration,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtSecret:        jwtSecret,
		latency:          latency,
	}
}

// Login authenticates a user and returns JWT tokens after the simulated
// round trip.
func (s *authService) Login(ctx context.Context, email, password string, role domain.Role) (accessToken, refreshToken string, user *domain.User, err error) {
	if err := s.simulateRoundTrip(ctx); err != nil {
		return "", "", nil, err
	}

	user, err = s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.verifyPassword(user.PasswordHash, password); err != nil {
			return "", "", nil, ErrInvalidCredentials
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user = demoProfile(email, role)
	default:
		return "", "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	accessToken, err = s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = s.generateRefreshToken(ctx, user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Signup creates an account and logs it in. A password/confirmation mismatch
// fails before the simulated round trip, so the caller never sees a session.
func (s *authService) Signup(ctx context.Context, params SignupParams) (accessToken, refreshToken string, user *domain.User, err error) {
	if params.Password != params.ConfirmPassword {
		return "", "", nil, ErrPasswordMismatch
	}

	if err := s.simulateRoundTrip(ctx); err != nil {
		return "", "", nil, err
	}

	hashedPassword, err := s.hashPassword(params.Password)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user = &domain.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hashedPassword,
		Role:         params.Role,
		Phone:        params.Phone,
		Location:     params.Location,
		AvatarURL:    "/placeholder.svg?height=40&width=40",
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", "", nil, fmt.Errorf("failed to create user: %w", err)
	}

	accessToken, err = s.generateAccessToken(user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = s.generateRefreshToken(ctx, user)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Logout invalidates the refresh token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.refreshTokenRepo.Revoke(ctx, refreshToken); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Token doesn't exist, consider it already logged out
			return nil
		}
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RefreshToken generates a new access token using a valid refresh token
func (s *authService) RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken string, err error) {
	refreshToken, err := s.refreshTokenRepo.FindByToken(ctx, refreshTokenString)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenRevoked) {
			return "", ErrInvalidToken
		}
		return "", fmt.Errorf("failed to find refresh token: %w", err)
	}

	if time.Now().After(refreshToken.ExpiresAt) {
		return "", ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, refreshToken.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Demo profiles are not stored; rebuild enough of one to
			// keep the session alive.
			user = &domain.User{ID: refreshToken.UserID, Role: domain.RoleBuyer}
		} else {
			return "", fmt.Errorf("failed to find user: %w", err)
		}
	}

	newAccessToken, err = s.generateAccessToken(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return newAccessToken, nil
}

// ValidateToken validates a JWT token and returns the claims
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GetUserByID retrieves a stored user by ID
func (s *authService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// simulateRoundTrip waits out the configured latency, honoring the caller's
// context so a dismissed dialog stops waiting.
func (s *authService) simulateRoundTrip(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// demoProfile fabricates the canned user the mock identity provider returns
// for emails that were never signed up.
func demoProfile(email string, role domain.Role) *domain.User {
	user := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Role:      role,
		AvatarURL: "/placeholder.svg?height=40&width=40",
		CreatedAt: time.Now(),
	}
	switch role {
	case domain.RoleSeller:
		user.Name = "Priya Sharma"
		user.Location = "Varanasi, UP"
	case domain.RoleAdmin:
		user.Name = "Platform Admin"
		user.Location = "New Delhi, DL"
	default:
		user.Name = "John Doe"
		user.Location = "Mumbai, MH"
	}
	return user
}

// hashPassword hashes a password using bcrypt
func (s *authService) hashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// verifyPassword verifies a password against a bcrypt hash
func (s *authService) verifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// generateAccessToken generates a JWT access token with user ID and role claims
func (s *authService) generateAccessToken(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(AccessTokenExpiration)
	claims := &Claims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// generateRefreshToken generates a refresh token and stores it in memory
func (s *authService) generateRefreshToken(ctx context.Context, user *domain.User) (string, error) {
	tokenString := uuid.New().String()

	refreshToken := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     tokenString,
		ExpiresAt: time.Now().Add(RefreshTokenExpiration),
		CreatedAt: time.Now(),
		Revoked:   false,
	}

	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return "", err
	}

	return tokenString, nil
}
