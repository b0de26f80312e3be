package users

import "context"

type Repository interface {
	// Upsert inserta u (por email) o actualiza name/profileImage del existente.
	// Role y CreatedAt solo se escriben en el insert. Devuelve el doc almacenado.
	Upsert(ctx context.Context, u User) (User, error)
	List(ctx context.Context) ([]User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdateRole(ctx context.Context, id string, role Role) (User, error)
}
