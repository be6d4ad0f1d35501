package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/validator"
)

// CulturalHeritageService handles cultural heritage business logic.
type CulturalHeritageService struct {
	store        CulturalHeritageStore
	subDistricts SubDistrictStore
	perPage      int
	log          zerolog.Logger
}

// NewCulturalHeritageService creates a new CulturalHeritageService.
func NewCulturalHeritageService(store CulturalHeritageStore, subDistricts SubDistrictStore, perPage int, log zerolog.Logger) *CulturalHeritageService {
	return &CulturalHeritageService{
		store:        store,
		subDistricts: subDistricts,
		perPage:      perPage,
		log:          log.With().Str("component", "cultural_heritage_service").Logger(),
	}
}

// List returns one page of records and the normalized filter that produced it.
func (s *CulturalHeritageService) List(ctx context.Context, f model.ListFilter) ([]model.CulturalHeritage, int, model.ListFilter, error) {
	f = f.Normalize(s.perPage)
	records, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, 0, f, fmt.Errorf("list cultural heritages: %w", err)
	}
	return records, total, f, nil
}

// Get retrieves a record by ID. Returns ErrNotFound when it does not exist.
func (s *CulturalHeritageService) Get(ctx context.Context, id int) (*model.CulturalHeritage, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates in and stores a new record owned by creatorID.
// Validation failures are returned as *validator.ValidationError and nothing is stored.
func (s *CulturalHeritageService) Create(ctx context.Context, in model.CulturalHeritageInput, creatorID int) (*model.CulturalHeritage, error) {
	in = in.Normalize()
	subDistrictID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	h := &model.CulturalHeritage{
		Name:          in.Name,
		Type:          in.Type,
		Village:       in.Village,
		Description:   in.Description,
		SubDistrictID: subDistrictID,
		CreatorID:     creatorID,
	}
	if err := s.store.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create cultural heritage: %w", err)
	}

	s.log.Info().Int("id", h.ID).Int("creator_id", creatorID).Msg("cultural heritage created")
	return h, nil
}

// Update validates in and replaces the mutable fields of record id.
func (s *CulturalHeritageService) Update(ctx context.Context, id int, in model.CulturalHeritageInput) (*model.CulturalHeritage, error) {
	h, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.Normalize()
	subDistrictID, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}

	h.Name = in.Name
	h.Type = in.Type
	h.Village = in.Village
	h.Description = in.Description
	h.SubDistrictID = subDistrictID
	if err := s.store.Update(ctx, h); err != nil {
		return nil, fmt.Errorf("update cultural heritage %d: %w", id, err)
	}

	s.log.Info().Int("id", id).Msg("cultural heritage updated")
	return h, nil
}

// Delete removes record id.
func (s *CulturalHeritageService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete cultural heritage %d: %w", id, err)
	}
	s.log.Info().Int("id", id).Msg("cultural heritage deleted")
	return nil
}

// validate runs the field rules and then checks that the sub-district exists.
// All field errors are collected into one ValidationError.
func (s *CulturalHeritageService) validate(ctx context.Context, in model.CulturalHeritageInput) (int, error) {
	verr := validator.Struct(in)
	if verr == nil {
		verr = &validator.ValidationError{}
	}

	var subDistrictID int
	if _, failed := verr.Fields["sub_district_id"]; !failed {
		id, ok := model.ParseID(in.SubDistrictID)
		if !ok {
			verr.Add("sub_district_id", validator.Message(validator.TagExists, "sub_district_id"))
		} else {
			exists, err := s.subDistricts.Exists(ctx, id)
			if err != nil {
				return 0, fmt.Errorf("check sub-district %d: %w", id, err)
			}
			if !exists {
				verr.Add("sub_district_id", validator.Message(validator.TagExists, "sub_district_id"))
			}
			subDistrictID = id
		}
	}

	if len(verr.Fields) > 0 {
		return 0, verr
	}
	return subDistrictID, nil
}
