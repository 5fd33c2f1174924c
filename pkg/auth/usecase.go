package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/petshop/pkg/security/password"
)

// UseCase describes the user directory: registration, authentication and
// account maintenance.
type UseCase interface {
	Register(ctx context.Context, email, plaintext string) (AuthResult, error)
	Login(ctx context.Context, email, plaintext string) (AuthResult, error)
	CreateUser(ctx context.Context, email, plaintext string, superuser bool) (User, error)
	UpdateUser(ctx context.Context, user User, upd UserUpdate) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type directoryService struct {
	repo   UserRepository
	tokens TokenGenerator
}

// NewService returns default implementation of UseCase.
func NewService(repo UserRepository, tokens TokenGenerator) UseCase {
	return &directoryService{repo: repo, tokens: tokens}
}

func (s *directoryService) Register(ctx context.Context, email, plaintext string) (AuthResult, error) {
	user, err := s.CreateUser(ctx, email, plaintext, false)
	if err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *directoryService) CreateUser(ctx context.Context, email, plaintext string, superuser bool) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || plaintext == "" {
		return User{}, ErrInvalidCredentials
	}

	// If user exists, fail fast; the unique index backs this up on insert.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrUserAlreadyExists
	}

	digest, err := password.Hash(plaintext)
	if err != nil {
		return User{}, err
	}

	now := time.Now().UTC()
	user := User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: digest,
		IsActive:       true,
		IsSuperuser:    superuser,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login authenticates by email and password and issues a session token.
// Unknown email, wrong password and inactive account are indistinguishable
// to the caller.
func (s *directoryService) Login(ctx context.Context, email, plaintext string) (AuthResult, error) {
	user, err := s.authenticate(ctx, email, plaintext)
	if err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *directoryService) authenticate(ctx context.Context, email, plaintext string) (User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if !password.Verify(plaintext, user.HashedPassword) {
		return User{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *directoryService) UpdateUser(ctx context.Context, user User, upd UserUpdate) (User, error) {
	if upd.Email != nil {
		email := strings.TrimSpace(*upd.Email)
		if email == "" {
			return User{}, ErrInvalidCredentials
		}
		user.Email = email
	}
	if upd.Password != nil && *upd.Password != "" {
		digest, err := password.Hash(*upd.Password)
		if err != nil {
			return User{}, err
		}
		user.HashedPassword = digest
	}
	if upd.IsActive != nil {
		user.IsActive = *upd.IsActive
	}
	if upd.IsSuperuser != nil {
		user.IsSuperuser = *upd.IsSuperuser
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}
