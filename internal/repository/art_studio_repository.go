package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/heritage-admin/internal/model"
)

const artStudioSelect = `SELECT a.id, a.name, a.sub_district, a.village, a.leader, a.art_type,
	a.building, a.description, a.creator_id, COALESCE(u.name, ''), a.created_at, a.updated_at
	FROM art_studios a LEFT JOIN users u ON u.id = a.creator_id`

// ArtStudioRepository handles art studio data access.
type ArtStudioRepository struct {
	pool *pgxpool.Pool
}

// NewArtStudioRepository creates a new ArtStudioRepository.
func NewArtStudioRepository(pool *pgxpool.Pool) *ArtStudioRepository {
	return &ArtStudioRepository{pool: pool}
}

func scanArtStudio(row pgx.Row, a *model.ArtStudio) error {
	return row.Scan(&a.ID, &a.Name, &a.SubDistrict, &a.Village, &a.Leader, &a.ArtType,
		&a.Building, &a.Description, &a.CreatorID, &a.CreatorName, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an art studio by its ID.
func (r *ArtStudioRepository) GetByID(ctx context.Context, id int) (*model.ArtStudio, error) {
	a := &model.ArtStudio{}
	if err := scanArtStudio(r.pool.QueryRow(ctx, artStudioSelect+` WHERE a.id = $1`, id), a); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

// List returns one page of art studios matching the filter and the total match count.
func (r *ArtStudioRepository) List(ctx context.Context, f model.ListFilter) ([]model.ArtStudio, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM art_studios a
		 WHERE $1 = '' OR a.name ILIKE $2`, f.Query, containsPattern(f.Query),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		artStudioSelect+`
		 WHERE $1 = '' OR a.name ILIKE $2
		 ORDER BY a.name ASC, a.id ASC
		 LIMIT $3 OFFSET $4`,
		f.Query, containsPattern(f.Query), f.PerPage, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var studios []model.ArtStudio
	for rows.Next() {
		var a model.ArtStudio
		if err := scanArtStudio(rows, &a); err != nil {
			return nil, 0, err
		}
		studios = append(studios, a)
	}
	return studios, total, rows.Err()
}

// Create inserts a new art studio.
func (r *ArtStudioRepository) Create(ctx context.Context, a *model.ArtStudio) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO art_studios (name, sub_district, village, leader, art_type, building, description, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		a.Name, a.SubDistrict, a.Village, a.Leader, a.ArtType, a.Building, a.Description, a.CreatorID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translate(err)
}

// Update replaces the mutable fields of an art studio.
func (r *ArtStudioRepository) Update(ctx context.Context, a *model.ArtStudio) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE art_studios
		 SET name = $1, sub_district = $2, village = $3, leader = $4, art_type = $5,
		     building = $6, description = $7, updated_at = NOW()
		 WHERE id = $8`,
		a.Name, a.SubDistrict, a.Village, a.Leader, a.ArtType, a.Building, a.Description, a.ID,
	))
}

// Delete removes an art studio by its ID.
func (r *ArtStudioRepository) Delete(ctx context.Context, id int) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM art_studios WHERE id = $1`, id))
}
