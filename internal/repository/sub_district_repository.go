package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/heritage-admin/internal/model"
)

// SubDistrictRepository handles sub-district data access.
type SubDistrictRepository struct {
	pool *pgxpool.Pool
}

// NewSubDistrictRepository creates a new SubDistrictRepository.
func NewSubDistrictRepository(pool *pgxpool.Pool) *SubDistrictRepository {
	return &SubDistrictRepository{pool: pool}
}

// GetByID retrieves a sub-district by its ID.
func (r *SubDistrictRepository) GetByID(ctx context.Context, id int) (*model.SubDistrict, error) {
	s := &model.SubDistrict{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM sub_districts WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// Exists reports whether a sub-district with the given ID is stored.
func (r *SubDistrictRepository) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sub_districts WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}

// List retrieves all sub-districts ordered by name.
func (r *SubDistrictRepository) List(ctx context.Context) ([]model.SubDistrict, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, created_at, updated_at
		 FROM sub_districts ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subDistricts []model.SubDistrict
	for rows.Next() {
		var s model.SubDistrict
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subDistricts = append(subDistricts, s)
	}
	return subDistricts, rows.Err()
}

// Create inserts a new sub-district.
func (r *SubDistrictRepository) Create(ctx context.Context, s *model.SubDistrict) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO sub_districts (name, description) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Description,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translate(err)
}

// Update replaces the mutable fields of a sub-district.
func (r *SubDistrictRepository) Update(ctx context.Context, s *model.SubDistrict) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE sub_districts SET name = $1, description = $2, updated_at = NOW()
		 WHERE id = $3`,
		s.Name, s.Description, s.ID,
	))
}

// Delete removes a sub-district. Returns ErrInUse while records still reference it.
func (r *SubDistrictRepository) Delete(ctx context.Context, id int) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM sub_districts WHERE id = $1`, id))
}
