package users

import (
	"context"
	"testing"
)

type testRepo struct {
	byEmail map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byEmail: map[string]User{}}
}

func (r *testRepo) Upsert(ctx context.Context, u User) (User, error) {
	if current, ok := r.byEmail[u.Email]; ok {
		current.Name = u.Name
		current.ProfileImage = u.ProfileImage
		r.byEmail[u.Email] = current
		return current, nil
	}
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *testRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) UpdateRole(ctx context.Context, id string, role Role) (User, error) {
	for email, u := range r.byEmail {
		if u.ID == id {
			u.Role = role
			r.byEmail[email] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func TestUpsert_ValidationOrder(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Upsert(context.Background(), UpsertInput{})
	if err == nil || err.Error() != "invalid input: email is required" {
		t.Fatalf("expected email error first, got %v", err)
	}

	_, err = svc.Upsert(context.Background(), UpsertInput{Email: "ana@example.com"})
	if err == nil || err.Error() != "invalid input: name is required" {
		t.Fatalf("expected name error, got %v", err)
	}
}

func TestUpsert_DefaultRole(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Upsert(context.Background(), UpsertInput{Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role user, got %s", u.Role)
	}
	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestUpdateRole_Invalid(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.UpdateRole(context.Background(), "id-1", "superadmin")
	if err == nil || err.Error() != "invalid input: role must be user or admin" {
		t.Fatalf("expected invalid-role error, got %v", err)
	}
}

func TestRoleByEmail_FoundFlag(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Upsert(context.Background(), UpsertInput{Email: "ana@example.com", Name: "Ana"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	role, found, err := svc.RoleByEmail(context.Background(), " ana@example.com ")
	if err != nil || !found || role != "user" {
		t.Fatalf("expected (user, true, nil), got (%s, %v, %v)", role, found, err)
	}

	// Email desconocido no es error del store: found=false, err=nil.
	role, found, err = svc.RoleByEmail(context.Background(), "ghost@example.com")
	if err != nil || found || role != "" {
		t.Fatalf("expected (\"\", false, nil), got (%s, %v, %v)", role, found, err)
	}
}
