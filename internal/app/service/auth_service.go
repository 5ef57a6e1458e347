package service

import (
	"context"
	"errors"
	"fmt"

	"lumina_site/internal/common"
	"lumina_site/internal/common/security"
	"lumina_site/internal/domain/model"
	"lumina_site/internal/domain/repository"

	"github.com/google/uuid"
)

const minPasswordLength = 6

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{userRepo: userRepo, sessionRepo: sessionRepo}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	User      *model.User
	SessionID string
}

// Login validates credentials and opens a session. Both an unknown email
// and a wrong password come back as ErrInvalidCredentials so callers
// cannot probe which factor failed.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	sessionID, err := s.sessionRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &LoginResult{User: user, SessionID: sessionID}, nil
}

// Register appends a new account with role "user". It does not log the
// account in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, common.ErrBadRequest
	}
	if len(req.Password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           model.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout drops the session. Unknown ids are a no-op; the caller always
// sees success.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

// CurrentUser resolves a session cookie value to its user, or
// ErrUnauthorized when the session is missing or stale.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, common.ErrUnauthorized
	}
	user, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return user, nil
}
