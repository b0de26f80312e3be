package adoptions

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

type SubmitInput struct {
	PetID            string
	PetName          string
	PetImage         string
	RequesterName    string
	RequesterEmail   string
	RequesterPhone   string
	RequesterAddress string
	OwnerEmail       string
}

// Submit valida requeridos en orden fijo (petId, petName, requesterName,
// requesterEmail); los opcionales quedan en "". Status arranca en pending.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Request, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Request{}, fmt.Errorf("%w: petId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.PetName) == "" {
		return Request{}, fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.RequesterName) == "" {
		return Request{}, fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.RequesterEmail) == "" {
		return Request{}, fmt.Errorf("%w: requesterEmail is required", ErrInvalidInput)
	}

	req := Request{
		ID:               uuid.NewString(),
		PetID:            strings.TrimSpace(in.PetID),
		PetName:          strings.TrimSpace(in.PetName),
		PetImage:         strings.TrimSpace(in.PetImage),
		RequesterName:    strings.TrimSpace(in.RequesterName),
		RequesterEmail:   strings.TrimSpace(in.RequesterEmail),
		RequesterPhone:   strings.TrimSpace(in.RequesterPhone),
		RequesterAddress: strings.TrimSpace(in.RequesterAddress),
		OwnerEmail:       strings.TrimSpace(in.OwnerEmail),
		Status:           StatusPending,
		CreatedAt:        s.now(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (s *Service) List(ctx context.Context) ([]Request, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Request{}, ErrNotFound
	}

	parsed, ok := ParseStatus(strings.TrimSpace(status))
	if !ok {
		return Request{}, fmt.Errorf("%w: status must be pending, accepted or rejected", ErrInvalidInput)
	}

	return s.repo.UpdateStatus(ctx, id, parsed)
}
