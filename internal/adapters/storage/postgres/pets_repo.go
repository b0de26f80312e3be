package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, business_id,
			name, age, category, image, location,
			user_email, adopted, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.BusinessID,
		p.Name,
		p.Age,
		p.Category,
		p.Image,
		p.Location,
		p.UserEmail,
		p.Adopted,
		p.CreatedAt,
	)
	return err
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, business_id,
			name, age, category, image, location,
			user_email, adopted, created_at
		FROM pets
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, userEmail string) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, business_id,
			name, age, category, image, location,
			user_email, adopted, created_at
		FROM pets
		WHERE user_email = $1
		ORDER BY created_at ASC
	`, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

// GetByBusinessID busca por el "id" que mandó el cliente, no por el PK.
// Si hubiera duplicados gana el más viejo (orden de creación).
func (r *PetsRepo) GetByBusinessID(ctx context.Context, businessID string) (pets.Pet, error) {
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, business_id,
			name, age, category, image, location,
			user_email, adopted, created_at
		FROM pets
		WHERE business_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`, businessID)

	var p pets.Pet
	if err := scanPet(row, &p); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := scanPet(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPet(row rowScanner, p *pets.Pet) error {
	return row.Scan(
		&p.ID,
		&p.BusinessID,
		&p.Name,
		&p.Age,
		&p.Category,
		&p.Image,
		&p.Location,
		&p.UserEmail,
		&p.Adopted,
		&p.CreatedAt,
	)
}
