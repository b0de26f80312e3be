package donations

import "context"

// ListFilter pagina el listado general. Limit <= 0 significa sin límite.
type ListFilter struct {
	CreatorEmail string
	Offset       int
	Limit        int
}

type Repository interface {
	Create(ctx context.Context, c Campaign) error
	// List ordena por createdAt desc y aplica filtro/paginado.
	List(ctx context.Context, f ListFilter) ([]Campaign, error)
	GetByID(ctx context.Context, id string) (Campaign, error)
	// IncrementDonated suma amount a donatedAmount de forma atómica
	// (equivalente a $inc: sin carrera read-modify-write).
	IncrementDonated(ctx context.Context, id string, amount float64) (Campaign, error)
	// Search filtra por substring case-insensitive en petName y/o location.
	Search(ctx context.Context, pet, location string) ([]Campaign, error)
}
