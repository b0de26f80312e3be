package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) error
	// List devuelve todas las solicitudes ordenadas por createdAt desc.
	List(ctx context.Context) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Request, error)
}
