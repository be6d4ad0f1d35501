package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/validator"
)

// ArtStudioService handles art studio business logic.
type ArtStudioService struct {
	store   ArtStudioStore
	perPage int
	log     zerolog.Logger
}

// NewArtStudioService creates a new ArtStudioService.
func NewArtStudioService(store ArtStudioStore, perPage int, log zerolog.Logger) *ArtStudioService {
	return &ArtStudioService{
		store:   store,
		perPage: perPage,
		log:     log.With().Str("component", "art_studio_service").Logger(),
	}
}

func (s *ArtStudioService) List(ctx context.Context, f model.ListFilter) ([]model.ArtStudio, int, model.ListFilter, error) {
	f = f.Normalize(s.perPage)
	studios, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, 0, f, fmt.Errorf("list art studios: %w", err)
	}
	return studios, total, f, nil
}

func (s *ArtStudioService) Get(ctx context.Context, id int) (*model.ArtStudio, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ArtStudioService) Create(ctx context.Context, in model.ArtStudioInput, creatorID int) (*model.ArtStudio, error) {
	in = in.Normalize()
	if verr := validator.Struct(in); verr != nil {
		return nil, verr
	}

	a := &model.ArtStudio{CreatorID: creatorID}
	apply(a, in)
	if err := s.store.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create art studio: %w", err)
	}

	s.log.Info().Int("id", a.ID).Int("creator_id", creatorID).Msg("art studio created")
	return a, nil
}

func (s *ArtStudioService) Update(ctx context.Context, id int, in model.ArtStudioInput) (*model.ArtStudio, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.Normalize()
	if verr := validator.Struct(in); verr != nil {
		return nil, verr
	}

	apply(a, in)
	if err := s.store.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update art studio %d: %w", id, err)
	}
	return a, nil
}

func (s *ArtStudioService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete art studio %d: %w", id, err)
	}
	s.log.Info().Int("id", id).Msg("art studio deleted")
	return nil
}

func apply(a *model.ArtStudio, in model.ArtStudioInput) {
	a.Name = in.Name
	a.SubDistrict = in.SubDistrict
	a.Village = in.Village
	a.Leader = in.Leader
	a.ArtType = in.ArtType
	a.Building = in.Building
	a.Description = in.Description
}
