package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"tienda/internal/auth"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

// Service handles registration and credential verification.
type Service struct {
	Repo Repository
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register hashes the password and persists a new user. A duplicate email
// surfaces as ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" || in.Email == "" || len(in.Password) < 8 {
		return nil, ErrInvalidInput
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		RegisteredAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies email and password against the stored hash. Unknown
// email and wrong password both return ErrInvalidCredentials so callers cannot
// distinguish them.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
