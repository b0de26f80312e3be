package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-api/internal/domain/donations"
)

type DonationsRepo struct {
	db *sql.DB
}

func NewDonationsRepo(db *sql.DB) *DonationsRepo {
	return &DonationsRepo{db: db}
}

func (r *DonationsRepo) Create(ctx context.Context, c donations.Campaign) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO donation_campaigns (
			id, pet_name, image,
			max_donation, donated_amount,
			location, short_description, long_description,
			last_date, created_at, creator_email, paused
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		c.ID,
		c.PetName,
		c.Image,
		c.MaxDonation,
		c.DonatedAmount,
		c.Location,
		c.ShortDescription,
		c.LongDescription,
		c.LastDate,
		c.CreatedAt,
		c.CreatorEmail,
		c.Paused,
	)
	return err
}

func (r *DonationsRepo) List(ctx context.Context, f donations.ListFilter) ([]donations.Campaign, error) {
	q := `
		SELECT
			id, pet_name, image,
			max_donation, donated_amount,
			location, short_description, long_description,
			last_date, created_at, creator_email, paused
		FROM donation_campaigns
		WHERE ($1 = '' OR creator_email = $1)
		ORDER BY created_at DESC
	`
	args := []any{f.CreatorEmail}

	if f.Limit > 0 {
		q += ` LIMIT $2 OFFSET $3`
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

func (r *DonationsRepo) GetByID(ctx context.Context, id string) (donations.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_name, image,
			max_donation, donated_amount,
			location, short_description, long_description,
			last_date, created_at, creator_email, paused
		FROM donation_campaigns
		WHERE id = $1
	`, id)

	var c donations.Campaign
	if err := scanCampaign(row, &c); err != nil {
		if err == sql.ErrNoRows {
			return donations.Campaign{}, donations.ErrNotFound
		}
		return donations.Campaign{}, err
	}
	return c, nil
}

// IncrementDonated delega la suma al UPDATE: un solo statement, sin carrera
// read-modify-write entre requests concurrentes.
func (r *DonationsRepo) IncrementDonated(ctx context.Context, id string, amount float64) (donations.Campaign, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE donation_campaigns
		SET donated_amount = donated_amount + $2
		WHERE id = $1
		RETURNING
			id, pet_name, image,
			max_donation, donated_amount,
			location, short_description, long_description,
			last_date, created_at, creator_email, paused
	`, id, amount)

	var c donations.Campaign
	if err := scanCampaign(row, &c); err != nil {
		if err == sql.ErrNoRows {
			return donations.Campaign{}, donations.ErrNotFound
		}
		return donations.Campaign{}, err
	}
	return c, nil
}

func (r *DonationsRepo) Search(ctx context.Context, pet, location string) ([]donations.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_name, image,
			max_donation, donated_amount,
			location, short_description, long_description,
			last_date, created_at, creator_email, paused
		FROM donation_campaigns
		WHERE ($1 = '' OR pet_name ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
	`, pet, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCampaigns(rows)
}

func collectCampaigns(rows *sql.Rows) ([]donations.Campaign, error) {
	out := make([]donations.Campaign, 0)
	for rows.Next() {
		var c donations.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCampaign(row rowScanner, c *donations.Campaign) error {
	return row.Scan(
		&c.ID,
		&c.PetName,
		&c.Image,
		&c.MaxDonation,
		&c.DonatedAmount,
		&c.Location,
		&c.ShortDescription,
		&c.LongDescription,
		&c.LastDate,
		&c.CreatedAt,
		&c.CreatorEmail,
		&c.Paused,
	)
}
