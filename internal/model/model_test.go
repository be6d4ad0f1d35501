package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListFilterNormalize(t *testing.T) {
	f := ListFilter{Query: "  situs ", Page: 0, PerPage: 500}.Normalize(25)

	assert.Equal(t, "situs", f.Query)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 25, f.PerPage)
	assert.Equal(t, 0, f.Offset())

	f.Page = 3
	assert.Equal(t, 50, f.Offset())
	assert.Equal(t, 3, f.TotalPages(51))
	assert.Equal(t, 1, f.TotalPages(0))

	far := ListFilter{Page: 1 << 40, PerPage: 100}.Normalize(25)
	assert.Equal(t, MaxID, far.Page)
	assert.Positive(t, far.Offset())
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		id   int
		want bool
	}{
		{"7", 7, true},
		{"2147483647", MaxID, true},
		{"2147483648", 0, false},
		{"3000000000", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		id, ok := ParseID(tc.in)
		assert.Equal(t, tc.want, ok, tc.in)
		assert.Equal(t, tc.id, id, tc.in)
	}
}

func TestCulturalHeritageInputRoundTrip(t *testing.T) {
	h := &CulturalHeritage{
		Name:          "Situs Cagar Budaya Kuta Bataguh",
		Type:          "Situs",
		Village:       "Ds.Lunuk",
		SubDistrictID: 4,
	}

	in := h.Input()
	assert.Equal(t, "4", in.SubDistrictID)
	assert.Equal(t, "Ds.Lunuk", in.Values()["village"])
}

func TestInputNormalizeTrims(t *testing.T) {
	in := ArtStudioInput{Name: "  Sanggar Tingang ", Leader: "\tDamang "}.Normalize()
	assert.Equal(t, "Sanggar Tingang", in.Name)
	assert.Equal(t, "Damang", in.Leader)
}
