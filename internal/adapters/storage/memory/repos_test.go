package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption-api/internal/domain/donations"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/domain/users"
)

func TestUsersRepo_UpsertPreservesRoleAndID(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	first, err := repo.Upsert(ctx, users.User{
		ID:        "id-1",
		Email:     "ana@example.com",
		Name:      "Ana",
		Role:      users.RoleUser,
		CreatedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// La promovemos a admin por fuera del upsert.
	if _, err := repo.UpdateRole(ctx, first.ID, users.RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}

	// Re-upsert con otro ID candidato: debe conservar ID, role y createdAt.
	second, err := repo.Upsert(ctx, users.User{
		ID:        "id-2",
		Email:     "ana@example.com",
		Name:      "Ana María",
		Role:      users.RoleUser,
		CreatedAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same id, got %s vs %s", second.ID, first.ID)
	}
	if second.Role != users.RoleAdmin {
		t.Fatalf("expected role preserved as admin, got %s", second.Role)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("expected createdAt preserved")
	}
	if second.Name != "Ana María" {
		t.Fatalf("expected name updated, got %s", second.Name)
	}
}

func TestDonationsRepo_IncrementDonated_Concurrent(t *testing.T) {
	repo := NewDonationsRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, donations.Campaign{ID: "c-1", PetName: "Buddy"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	const donors = 50
	var wg sync.WaitGroup
	wg.Add(donors)
	for i := 1; i <= donors; i++ {
		go func(amount float64) {
			defer wg.Done()
			if _, err := repo.IncrementDonated(ctx, "c-1", amount); err != nil {
				t.Errorf("increment: %v", err)
			}
		}(float64(i))
	}
	wg.Wait()

	c, err := repo.GetByID(ctx, "c-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// 1+2+...+50
	want := float64(donors * (donors + 1) / 2)
	if c.DonatedAmount != want {
		t.Fatalf("expected %v, got %v", want, c.DonatedAmount)
	}
}

func TestDonationsRepo_ListOffsetLimit(t *testing.T) {
	repo := NewDonationsRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := repo.Create(ctx, donations.Campaign{
			ID:        fmt.Sprintf("c-%d", i),
			PetName:   fmt.Sprintf("pet-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	// Más nuevos primero: c-4, c-3, c-2, c-1, c-0.
	page, err := repo.List(ctx, donations.ListFilter{Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].ID != "c-2" || page[1].ID != "c-1" {
		t.Fatalf("unexpected page: %+v", page)
	}

	// Offset más allá del final: lista vacía, no panic.
	empty, err := repo.List(ctx, donations.ListFilter{Offset: 99, Limit: 2})
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d items", len(empty))
	}
}

func TestDonationsRepo_SearchCaseInsensitive(t *testing.T) {
	repo := NewDonationsRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, donations.Campaign{ID: "c-1", PetName: "Buddy", Location: "Lima"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, donations.Campaign{ID: "c-2", PetName: "Milo", Location: "Cusco"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Search(ctx, "BUD", "lim")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c-1" {
		t.Fatalf("expected only c-1, got %+v", got)
	}

	all, err := repo.Search(ctx, "", "")
	if err != nil {
		t.Fatalf("search sin filtros: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both campaigns, got %d", len(all))
	}
}

func TestPetsRepo_GetByBusinessID_OldestWins(t *testing.T) {
	repo := NewPetsRepo()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	older := pets.Pet{ID: "store-1", BusinessID: "pet-1", Name: "Old Milo", CreatedAt: base}
	newer := pets.Pet{ID: "store-2", BusinessID: "pet-1", Name: "New Milo", CreatedAt: base.Add(time.Hour)}

	// Insertamos el más nuevo primero a propósito.
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create newer: %v", err)
	}
	if err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create older: %v", err)
	}

	got, err := repo.GetByBusinessID(ctx, "pet-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "store-1" {
		t.Fatalf("expected oldest doc (store-1), got %s", got.ID)
	}

	if _, err := repo.GetByBusinessID(ctx, "ghost"); err != pets.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
