package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/validator"
)

type SubDistrictService struct {
	store SubDistrictStore
	log   zerolog.Logger
}

func NewSubDistrictService(store SubDistrictStore, log zerolog.Logger) *SubDistrictService {
	return &SubDistrictService{
		store: store,
		log:   log.With().Str("component", "sub_district_service").Logger(),
	}
}

func (s *SubDistrictService) List(ctx context.Context) ([]model.SubDistrict, error) {
	return s.store.List(ctx)
}

func (s *SubDistrictService) Get(ctx context.Context, id int) (*model.SubDistrict, error) {
	return s.store.GetByID(ctx, id)
}

func (s *SubDistrictService) Create(ctx context.Context, in model.SubDistrictInput) (*model.SubDistrict, error) {
	in = in.Normalize()
	if verr := validator.Struct(in); verr != nil {
		return nil, verr
	}

	sd := &model.SubDistrict{Name: in.Name, Description: in.Description}
	if err := s.store.Create(ctx, sd); err != nil {
		return nil, s.duplicateName(err)
	}
	return sd, nil
}

func (s *SubDistrictService) Update(ctx context.Context, id int, in model.SubDistrictInput) (*model.SubDistrict, error) {
	sd, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.Normalize()
	if verr := validator.Struct(in); verr != nil {
		return nil, verr
	}

	sd.Name = in.Name
	sd.Description = in.Description
	if err := s.store.Update(ctx, sd); err != nil {
		return nil, s.duplicateName(err)
	}
	return sd, nil
}

// Delete removes a sub-district. It returns ErrInUse while cultural heritage
// records still reference it.
func (s *SubDistrictService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrInUse) {
			s.log.Warn().Int("id", id).Msg("sub-district still referenced")
		}
		return fmt.Errorf("delete sub-district %d: %w", id, err)
	}
	return nil
}

// duplicateName turns a unique violation on name into a field error.
func (s *SubDistrictService) duplicateName(err error) error {
	if errors.Is(err, ErrDuplicate) {
		verr := &validator.ValidationError{}
		verr.Add("name", validator.Message(validator.TagTaken, "name"))
		return verr
	}
	return fmt.Errorf("save sub-district: %w", err)
}
