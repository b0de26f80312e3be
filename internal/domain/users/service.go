package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type UpsertInput struct {
	Email        string
	Name         string
	ProfileImage string
}

func (s *Service) Upsert(ctx context.Context, in UpsertInput) (User, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Name) == "" {
		return User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	// ID/Role/CreatedAt solo aplican si el email no existía todavía.
	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		ProfileImage: strings.TrimSpace(in.ProfileImage),
		Role:         RoleUser,
		CreatedAt:    s.now(),
	}

	return s.repo.Upsert(ctx, u)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateRole(ctx context.Context, id, role string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}

	parsed, ok := ParseRole(strings.TrimSpace(role))
	if !ok {
		return User{}, fmt.Errorf("%w: role must be user or admin", ErrInvalidInput)
	}

	return s.repo.UpdateRole(ctx, id, parsed)
}

// RoleByEmail implementa el resolver del guard admin (middleware.RoleResolver).
func (s *Service) RoleByEmail(ctx context.Context, email string) (string, bool, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(u.Role), true, nil
}
