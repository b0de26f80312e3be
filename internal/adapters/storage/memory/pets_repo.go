package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/pets"
)

type petsRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetsRepo() pets.Repository {
	return &petsRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sortPetsByCreatedAsc(out)
	return out, nil
}

func (r *petsRepo) ListByOwner(ctx context.Context, userEmail string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.UserEmail == userEmail {
			out = append(out, p)
		}
	}

	sortPetsByCreatedAsc(out)
	return out, nil
}

// GetByBusinessID replica el lookup del adapter postgres: por id de negocio,
// el más viejo primero si hay duplicados.
func (r *petsRepo) GetByBusinessID(ctx context.Context, businessID string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var winner pets.Pet
	found := false
	for _, p := range r.byID {
		if p.BusinessID != businessID {
			continue
		}
		if !found || p.CreatedAt.Before(winner.CreatedAt) {
			winner = p
			found = true
		}
	}

	if !found {
		return pets.Pet{}, pets.ErrNotFound
	}
	return winner, nil
}

func sortPetsByCreatedAsc(items []pets.Pet) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
