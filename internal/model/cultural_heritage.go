package model

import (
	"strconv"
	"strings"
	"time"
)

// CulturalHeritage is a catalogued heritage object such as a protected site.
type CulturalHeritage struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Village         string    `json:"village"`
	Description     string    `json:"description"`
	SubDistrictID   int       `json:"sub_district_id"`
	SubDistrictName string    `json:"sub_district_name,omitempty"`
	CreatorID       int       `json:"creator_id"`
	CreatorName     string    `json:"creator_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CulturalHeritageInput carries submitted create/edit form fields.
// SubDistrictID stays textual so malformed input is reported as a field error.
type CulturalHeritageInput struct {
	Name          string `form:"name" validate:"required,max=60"`
	Type          string `form:"type" validate:"omitempty,max=60"`
	Village       string `form:"village" validate:"omitempty,max=255"`
	Description   string `form:"description" validate:"omitempty,max=255"`
	SubDistrictID string `form:"sub_district_id" validate:"required,numeric"`
}

// Normalize trims surrounding whitespace from every field.
func (in CulturalHeritageInput) Normalize() CulturalHeritageInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Type = strings.TrimSpace(in.Type)
	in.Village = strings.TrimSpace(in.Village)
	in.Description = strings.TrimSpace(in.Description)
	in.SubDistrictID = strings.TrimSpace(in.SubDistrictID)
	return in
}

// Values returns the form values keyed by field name.
func (in CulturalHeritageInput) Values() map[string]string {
	return map[string]string{
		"name":            in.Name,
		"type":            in.Type,
		"village":         in.Village,
		"description":     in.Description,
		"sub_district_id": in.SubDistrictID,
	}
}

// Input returns the editable fields of a stored record.
func (h *CulturalHeritage) Input() CulturalHeritageInput {
	return CulturalHeritageInput{
		Name:          h.Name,
		Type:          h.Type,
		Village:       h.Village,
		Description:   h.Description,
		SubDistrictID: strconv.Itoa(h.SubDistrictID),
	}
}
