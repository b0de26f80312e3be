package pets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
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

type CreateInput struct {
	BusinessID string
	Name       string
	Age        any // number o string numérico; se coerciona acá
	Category   string
	Image      string
	Location   string
	UserEmail  string
}

// Create valida los requeridos en orden fijo (name, age, category, image,
// location) y asigna siempre adopted=false y createdAt del servidor, venga lo
// que venga en el payload.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Age == nil {
		return Pet{}, fmt.Errorf("%w: age is required", ErrInvalidInput)
	}
	age, ok := toNumber(in.Age)
	if !ok {
		return Pet{}, fmt.Errorf("%w: age must be a number", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Category) == "" {
		return Pet{}, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Image) == "" {
		return Pet{}, fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Location) == "" {
		return Pet{}, fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	p := Pet{
		ID:         uuid.NewString(),
		BusinessID: strings.TrimSpace(in.BusinessID),
		Name:       strings.TrimSpace(in.Name),
		Age:        age,
		Category:   strings.TrimSpace(in.Category),
		Image:      strings.TrimSpace(in.Image),
		Location:   strings.TrimSpace(in.Location),
		UserEmail:  strings.TrimSpace(in.UserEmail),
		Adopted:    false,
		CreatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, userEmail string) ([]Pet, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.repo.ListByOwner(ctx, userEmail)
}

func (s *Service) GetByBusinessID(ctx context.Context, businessID string) (Pet, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByBusinessID(ctx, businessID)
}

// toNumber coerciona campos numéricos que llegan como number o string JSON.
// Duplicado a propósito con donations; si aparece un tercer módulo numérico,
// recién ahí conviene extraerlo.
func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
