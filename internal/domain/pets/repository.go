package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) error
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, userEmail string) ([]Pet, error)
	GetByBusinessID(ctx context.Context, businessID string) (Pet, error)
}
