package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/heritage-admin/internal/model"
)

const culturalHeritageColumns = `ch.id, ch.name, ch.type, ch.village, ch.description,
	ch.sub_district_id, COALESCE(sd.name, ''), ch.creator_id, COALESCE(u.name, ''),
	ch.created_at, ch.updated_at`

const culturalHeritageFrom = `FROM cultural_heritages ch
	LEFT JOIN sub_districts sd ON sd.id = ch.sub_district_id
	LEFT JOIN users u ON u.id = ch.creator_id`

// CulturalHeritageRepository handles cultural heritage data access.
type CulturalHeritageRepository struct {
	pool *pgxpool.Pool
}

// NewCulturalHeritageRepository creates a new CulturalHeritageRepository.
func NewCulturalHeritageRepository(pool *pgxpool.Pool) *CulturalHeritageRepository {
	return &CulturalHeritageRepository{pool: pool}
}

func scanCulturalHeritage(row pgx.Row, h *model.CulturalHeritage) error {
	return row.Scan(&h.ID, &h.Name, &h.Type, &h.Village, &h.Description,
		&h.SubDistrictID, &h.SubDistrictName, &h.CreatorID, &h.CreatorName,
		&h.CreatedAt, &h.UpdatedAt)
}

// GetByID retrieves a cultural heritage record with its sub-district and creator names.
func (r *CulturalHeritageRepository) GetByID(ctx context.Context, id int) (*model.CulturalHeritage, error) {
	h := &model.CulturalHeritage{}
	row := r.pool.QueryRow(ctx,
		`SELECT `+culturalHeritageColumns+` `+culturalHeritageFrom+` WHERE ch.id = $1`, id)
	if err := scanCulturalHeritage(row, h); err != nil {
		return nil, translate(err)
	}
	return h, nil
}

// List returns one page of records matching the filter and the total match count.
func (r *CulturalHeritageRepository) List(ctx context.Context, f model.ListFilter) ([]model.CulturalHeritage, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM cultural_heritages ch
		 WHERE $1 = '' OR ch.name ILIKE $2`, f.Query, containsPattern(f.Query),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+culturalHeritageColumns+` `+culturalHeritageFrom+`
		 WHERE $1 = '' OR ch.name ILIKE $2
		 ORDER BY ch.name ASC, ch.id ASC
		 LIMIT $3 OFFSET $4`,
		f.Query, containsPattern(f.Query), f.PerPage, f.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []model.CulturalHeritage
	for rows.Next() {
		var h model.CulturalHeritage
		if err := scanCulturalHeritage(rows, &h); err != nil {
			return nil, 0, err
		}
		records = append(records, h)
	}
	return records, total, rows.Err()
}

// Create inserts a new record.
func (r *CulturalHeritageRepository) Create(ctx context.Context, h *model.CulturalHeritage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO cultural_heritages (name, type, village, description, sub_district_id, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		h.Name, h.Type, h.Village, h.Description, h.SubDistrictID, h.CreatorID,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	return translate(err)
}

// Update replaces the mutable fields of a record. The creator is never changed.
func (r *CulturalHeritageRepository) Update(ctx context.Context, h *model.CulturalHeritage) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE cultural_heritages
		 SET name = $1, type = $2, village = $3, description = $4, sub_district_id = $5,
		     updated_at = NOW()
		 WHERE id = $6`,
		h.Name, h.Type, h.Village, h.Description, h.SubDistrictID, h.ID,
	))
}

// Delete removes a record by its ID.
func (r *CulturalHeritageRepository) Delete(ctx context.Context, id int) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM cultural_heritages WHERE id = $1`, id))
}
