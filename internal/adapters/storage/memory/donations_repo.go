package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-api/internal/domain/donations"
)

type donationsRepo struct {
	mu   sync.RWMutex
	byID map[string]donations.Campaign
}

func NewDonationsRepo() donations.Repository {
	return &donationsRepo{
		byID: make(map[string]donations.Campaign),
	}
}

func (r *donationsRepo) Create(ctx context.Context, c donations.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("campaign id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("campaign already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *donationsRepo) List(ctx context.Context, f donations.ListFilter) ([]donations.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]donations.Campaign, 0)
	for _, c := range r.byID {
		if f.CreatorEmail != "" && c.CreatorEmail != f.CreatorEmail {
			continue
		}
		out = append(out, c)
	}

	sortCampaignsByCreatedDesc(out)

	// skip/limit sobre el resultado ya ordenado
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []donations.Campaign{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out, nil
}

func (r *donationsRepo) GetByID(ctx context.Context, id string) (donations.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return donations.Campaign{}, donations.ErrNotFound
	}
	return c, nil
}

// IncrementDonated es atómico acá por el lock de escritura: el equivalente
// in-memory del $inc del store real.
func (r *donationsRepo) IncrementDonated(ctx context.Context, id string, amount float64) (donations.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return donations.Campaign{}, donations.ErrNotFound
	}
	c.DonatedAmount += amount
	r.byID[id] = c
	return c, nil
}

func (r *donationsRepo) Search(ctx context.Context, pet, location string) ([]donations.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet = strings.ToLower(pet)
	location = strings.ToLower(location)

	out := make([]donations.Campaign, 0)
	for _, c := range r.byID {
		if pet != "" && !strings.Contains(strings.ToLower(c.PetName), pet) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(c.Location), location) {
			continue
		}
		out = append(out, c)
	}

	sortCampaignsByCreatedDesc(out)
	return out, nil
}

func sortCampaignsByCreatedDesc(items []donations.Campaign) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
