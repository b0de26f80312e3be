package donations

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

const (
	defaultPage  = 1
	defaultLimit = 6
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
	PetName          string
	Image            string
	MaxDonation      any // number o string numérico
	Location         string
	ShortDescription string
	LongDescription  string
	LastDate         string // YYYY-MM-DD
	CreatorEmail     string
}

// Create valida requeridos en orden fijo (petName, image, maxDonation,
// shortDescription, longDescription, lastDate, creatorEmail). El servidor
// asigna donatedAmount=0, paused=false y createdAt siempre.
func (s *Service) Create(ctx context.Context, in CreateInput) (Campaign, error) {
	if strings.TrimSpace(in.PetName) == "" {
		return Campaign{}, fmt.Errorf("%w: petName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Image) == "" {
		return Campaign{}, fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	if in.MaxDonation == nil {
		return Campaign{}, fmt.Errorf("%w: maxDonation is required", ErrInvalidInput)
	}
	maxDonation, ok := toNumber(in.MaxDonation)
	if !ok {
		return Campaign{}, fmt.Errorf("%w: maxDonation must be a number", ErrInvalidInput)
	}
	if strings.TrimSpace(in.ShortDescription) == "" {
		return Campaign{}, fmt.Errorf("%w: shortDescription is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LongDescription) == "" {
		return Campaign{}, fmt.Errorf("%w: longDescription is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.LastDate) == "" {
		return Campaign{}, fmt.Errorf("%w: lastDate is required", ErrInvalidInput)
	}
	lastDate, err := time.Parse("2006-01-02", strings.TrimSpace(in.LastDate))
	if err != nil {
		return Campaign{}, fmt.Errorf("%w: lastDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	if strings.TrimSpace(in.CreatorEmail) == "" {
		return Campaign{}, fmt.Errorf("%w: creatorEmail is required", ErrInvalidInput)
	}

	c := Campaign{
		ID:               uuid.NewString(),
		PetName:          strings.TrimSpace(in.PetName),
		Image:            strings.TrimSpace(in.Image),
		MaxDonation:      maxDonation,
		DonatedAmount:    0,
		Location:         strings.TrimSpace(in.Location),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		LongDescription:  strings.TrimSpace(in.LongDescription),
		LastDate:         lastDate,
		CreatedAt:        s.now(),
		CreatorEmail:     strings.TrimSpace(in.CreatorEmail),
		Paused:           false,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// List pagina el listado general; page/limit no numéricos o menores a 1 caen
// al default (1/6) en silencio, como exige el contrato externo.
func (s *Service) List(ctx context.Context, creatorEmail, pageRaw, limitRaw string) ([]Campaign, error) {
	page := parsePositiveInt(pageRaw, defaultPage)
	limit := parsePositiveInt(limitRaw, defaultLimit)

	return s.repo.List(ctx, ListFilter{
		CreatorEmail: strings.TrimSpace(creatorEmail),
		Offset:       (page - 1) * limit,
		Limit:        limit,
	})
}

func (s *Service) ListByCreator(ctx context.Context, creatorEmail string) ([]Campaign, error) {
	creatorEmail = strings.TrimSpace(creatorEmail)
	if creatorEmail == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.repo.List(ctx, ListFilter{CreatorEmail: creatorEmail})
}

func (s *Service) GetByID(ctx context.Context, id string) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Donate suma amount vía el incremento atómico del store. No hay chequeo de
// tope contra maxDonation a propósito.
func (s *Service) Donate(ctx context.Context, id string, amount any) (Campaign, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Campaign{}, ErrNotFound
	}

	n, ok := toNumber(amount)
	if !ok {
		return Campaign{}, fmt.Errorf("%w: amount must be a number", ErrInvalidInput)
	}

	return s.repo.IncrementDonated(ctx, id, n)
}

func (s *Service) Search(ctx context.Context, pet, location string) ([]Campaign, error) {
	return s.repo.Search(ctx, strings.TrimSpace(pet), strings.TrimSpace(location))
}

func parsePositiveInt(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// toNumber coerciona campos numéricos que llegan como number o string JSON.
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
