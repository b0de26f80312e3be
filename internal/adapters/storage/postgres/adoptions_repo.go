package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, req adoptions.Request) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_requests (
			id, pet_id, pet_name, pet_image,
			requester_name, requester_email, requester_phone, requester_address,
			owner_email, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		req.ID,
		req.PetID,
		req.PetName,
		req.PetImage,
		req.RequesterName,
		req.RequesterEmail,
		req.RequesterPhone,
		req.RequesterAddress,
		req.OwnerEmail,
		req.Status,
		req.CreatedAt,
	)
	return err
}

func (r *AdoptionsRepo) List(ctx context.Context) ([]adoptions.Request, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id, pet_name, pet_image,
			requester_name, requester_email, requester_phone, requester_address,
			owner_email, status, created_at
		FROM adoption_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Request, 0)
	for rows.Next() {
		var req adoptions.Request
		if err := scanRequest(rows, &req); err != nil {
			return nil, err
		}
		out = append(out, req)
	}

	return out, rows.Err()
}

func (r *AdoptionsRepo) UpdateStatus(ctx context.Context, id string, status adoptions.Status) (adoptions.Request, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE adoption_requests
		SET status = $2
		WHERE id = $1
		RETURNING
			id, pet_id, pet_name, pet_image,
			requester_name, requester_email, requester_phone, requester_address,
			owner_email, status, created_at
	`, id, status)

	var req adoptions.Request
	if err := scanRequest(row, &req); err != nil {
		if err == sql.ErrNoRows {
			return adoptions.Request{}, adoptions.ErrNotFound
		}
		return adoptions.Request{}, err
	}
	return req, nil
}

func scanRequest(row rowScanner, req *adoptions.Request) error {
	return row.Scan(
		&req.ID,
		&req.PetID,
		&req.PetName,
		&req.PetImage,
		&req.RequesterName,
		&req.RequesterEmail,
		&req.RequesterPhone,
		&req.RequesterAddress,
		&req.OwnerEmail,
		&req.Status,
		&req.CreatedAt,
	)
}
