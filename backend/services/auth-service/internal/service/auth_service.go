package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hackathon/backend/libs/authclient"
	"hackathon/backend/services/auth-service/internal/models"
	"hackathon/backend/services/auth-service/internal/password"
	"hackathon/backend/services/auth-service/internal/repository"
)

var (
	// ErrEmailInUse is returned when attempting to register duplicate email.
	ErrEmailInUse = errors.New("auth: email already registered")
	// ErrInvalidCredentials represents sign-in failure.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrMissingFields is returned when email or password is blank.
	ErrMissingFields = errors.New("auth: email and password are required")
	// ErrRoleRequired is returned by Signup without a role.
	ErrRoleRequired = errors.New("auth: role is required")
	// ErrInvalidRole is returned by Signup for a role outside the known set.
	ErrInvalidRole = errors.New("auth: invalid role")
)

// UserRepository defines storage contract used by the service.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService contains registration and sign-in logic.
type AuthService struct {
	repo   UserRepository
	hasher password.Hasher
	logger *zap.Logger
	newID  func() string
}

// NewAuthService builds AuthService.
func NewAuthService(repo UserRepository, hasher password.Hasher, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		newID:  uuid.NewString,
	}
}

// Signup registers a new user with the given role.
func (s *AuthService) Signup(ctx context.Context, email, pass, role string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pass == "" {
		return nil, ErrMissingFields
	}
	if strings.TrimSpace(role) == "" {
		return nil, ErrRoleRequired
	}
	if !authclient.Role(role).Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	user := &models.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("auth: create user: %w", err)
	}

	s.logger.Info("user signed up", zap.String("user_id", user.ID), zap.String("email", user.Email), zap.String("role", user.Role))
	return user, nil
}

// Signin verifies credentials and returns the stored user.
func (s *AuthService) Signin(ctx context.Context, email, pass string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || pass == "" {
		return nil, ErrMissingFields
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: load user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, pass); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.logger.Warn("stored hash could not be compared", zap.String("user_id", user.ID), zap.Error(err))
		}
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user signed in", zap.String("user_id", user.ID))
	return user, nil
}
