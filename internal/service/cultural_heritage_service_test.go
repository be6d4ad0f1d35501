package service

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stemsi/heritage-admin/internal/testutil"
	"github.com/stemsi/heritage-admin/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCulturalHeritageService(t *testing.T) (*CulturalHeritageService, *testutil.Stores, *model.SubDistrict) {
	t.Helper()
	stores := testutil.NewStores()
	sd := &model.SubDistrict{Name: "Kapuas Hilir"}
	require.NoError(t, stores.SubDistricts.Create(context.Background(), sd))
	return NewCulturalHeritageService(stores.CulturalHeritages, stores.SubDistricts, 25, zerolog.Nop()), stores, sd
}

func createFields(subDistrictID int) model.CulturalHeritageInput {
	return model.CulturalHeritageInput{
		Name:          "Situs Cagar Budaya Gereja Imanuel Madomai",
		Type:          "Situs",
		Village:       "Saka Mangkahai",
		Description:   "CulturalHeritage 1 description",
		SubDistrictID: strconv.Itoa(subDistrictID),
	}
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, field)
}

func TestCulturalHeritageCreate(t *testing.T) {
	svc, stores, sd := newCulturalHeritageService(t)

	h, err := svc.Create(context.Background(), createFields(sd.ID), 9)
	require.NoError(t, err)

	stored, err := stores.CulturalHeritages.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Situs Cagar Budaya Gereja Imanuel Madomai", stored.Name)
	assert.Equal(t, "Situs", stored.Type)
	assert.Equal(t, "Saka Mangkahai", stored.Village)
	assert.Equal(t, "CulturalHeritage 1 description", stored.Description)
	assert.Equal(t, sd.ID, stored.SubDistrictID)
	assert.Equal(t, 9, stored.CreatorID)
}

func TestCulturalHeritageCreateRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CulturalHeritageInput)
		field  string
	}{
		{"empty name", func(in *model.CulturalHeritageInput) { in.Name = "" }, "name"},
		{"blank name", func(in *model.CulturalHeritageInput) { in.Name = "   " }, "name"},
		{"name over 60", func(in *model.CulturalHeritageInput) { in.Name = strings.Repeat("Test Title", 7) }, "name"},
		{"description over 255", func(in *model.CulturalHeritageInput) { in.Description = strings.Repeat("Long description", 16) }, "description"},
		{"missing sub-district", func(in *model.CulturalHeritageInput) { in.SubDistrictID = "" }, "sub_district_id"},
		{"non-numeric sub-district", func(in *model.CulturalHeritageInput) { in.SubDistrictID = "abc" }, "sub_district_id"},
		{"unknown sub-district", func(in *model.CulturalHeritageInput) { in.SubDistrictID = "999" }, "sub_district_id"},
		{"sub-district beyond key range", func(in *model.CulturalHeritageInput) { in.SubDistrictID = "3000000000" }, "sub_district_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, stores, sd := newCulturalHeritageService(t)
			in := createFields(sd.ID)
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in, 1)

			requireFieldError(t, err, tt.field)
			assert.Zero(t, stores.CulturalHeritages.Count())
		})
	}
}

func TestCulturalHeritageCreateCollectsAllErrors(t *testing.T) {
	svc, _, _ := newCulturalHeritageService(t)

	_, err := svc.Create(context.Background(), model.CulturalHeritageInput{
		Description:   strings.Repeat("x", 256),
		SubDistrictID: "42",
	}, 1)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
}

func TestCulturalHeritageUpdate(t *testing.T) {
	svc, stores, sd := newCulturalHeritageService(t)
	ctx := context.Background()
	h, err := svc.Create(ctx, createFields(sd.ID), 3)
	require.NoError(t, err)

	other := &model.SubDistrict{Name: "Selat"}
	require.NoError(t, stores.SubDistricts.Create(ctx, other))

	_, err = svc.Update(ctx, h.ID, model.CulturalHeritageInput{
		Name:          "Situs Cagar Budaya Kuta Bataguh",
		Type:          "Situs",
		Village:       "Ds.Lunuk",
		Description:   "CulturalHeritage 1 description",
		SubDistrictID: strconv.Itoa(other.ID),
	})
	require.NoError(t, err)

	stored, err := stores.CulturalHeritages.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Situs Cagar Budaya Kuta Bataguh", stored.Name)
	assert.Equal(t, "Ds.Lunuk", stored.Village)
	assert.Equal(t, other.ID, stored.SubDistrictID)
	assert.Equal(t, 3, stored.CreatorID)
}

func TestCulturalHeritageUpdateRejectsInvalidFields(t *testing.T) {
	svc, stores, sd := newCulturalHeritageService(t)
	ctx := context.Background()
	h, err := svc.Create(ctx, createFields(sd.ID), 1)
	require.NoError(t, err)

	in := createFields(sd.ID)
	in.Name = strings.Repeat("Test Title", 7)
	_, err = svc.Update(ctx, h.ID, in)
	requireFieldError(t, err, "name")

	stored, err := stores.CulturalHeritages.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Situs Cagar Budaya Gereja Imanuel Madomai", stored.Name)
}

func TestCulturalHeritageUpdateMissing(t *testing.T) {
	svc, _, sd := newCulturalHeritageService(t)

	_, err := svc.Update(context.Background(), 404, createFields(sd.ID))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCulturalHeritageDelete(t *testing.T) {
	svc, stores, sd := newCulturalHeritageService(t)
	ctx := context.Background()
	h, err := svc.Create(ctx, createFields(sd.ID), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, h.ID))
	_, err = stores.CulturalHeritages.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, h.ID), ErrNotFound)
}

func TestCulturalHeritageListPaginates(t *testing.T) {
	svc, _, sd := newCulturalHeritageService(t)
	ctx := context.Background()
	for _, name := range []string{"Sandung Raden", "Betang Toyoi", "Situs Kuta"} {
		in := createFields(sd.ID)
		in.Name = name
		_, err := svc.Create(ctx, in, 1)
		require.NoError(t, err)
	}

	records, total, f, err := svc.List(ctx, model.ListFilter{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, f.Page)
	require.Len(t, records, 1)
	assert.Equal(t, "Situs Kuta", records[0].Name)

	records, total, _, err = svc.List(ctx, model.ListFilter{Query: "betang"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Betang Toyoi", records[0].Name)
}
