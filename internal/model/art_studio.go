package model

import (
	"strings"
	"time"
)

// ArtStudio is a traditional art group (sanggar seni). Its sub-district is a free
// text label, not a reference to SubDistrict.
type ArtStudio struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	SubDistrict string    `json:"sub_district"`
	Village     string    `json:"village"`
	Leader      string    `json:"leader"`
	ArtType     string    `json:"art_type"`
	Building    string    `json:"building"`
	Description string    `json:"description"`
	CreatorID   int       `json:"creator_id"`
	CreatorName string    `json:"creator_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ArtStudioInput carries submitted art studio form fields.
type ArtStudioInput struct {
	Name        string `form:"name" validate:"required,max=60"`
	SubDistrict string `form:"sub_district" validate:"required,max=255"`
	Village     string `form:"village" validate:"omitempty,max=255"`
	Leader      string `form:"leader" validate:"required,max=255"`
	ArtType     string `form:"art_type" validate:"required,max=255"`
	Building    string `form:"building" validate:"required,max=255"`
	Description string `form:"description" validate:"omitempty,max=255"`
}

// Normalize trims surrounding whitespace from every field.
func (in ArtStudioInput) Normalize() ArtStudioInput {
	in.Name = strings.TrimSpace(in.Name)
	in.SubDistrict = strings.TrimSpace(in.SubDistrict)
	in.Village = strings.TrimSpace(in.Village)
	in.Leader = strings.TrimSpace(in.Leader)
	in.ArtType = strings.TrimSpace(in.ArtType)
	in.Building = strings.TrimSpace(in.Building)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Values returns the form values keyed by field name.
func (in ArtStudioInput) Values() map[string]string {
	return map[string]string{
		"name":         in.Name,
		"sub_district": in.SubDistrict,
		"village":      in.Village,
		"leader":       in.Leader,
		"art_type":     in.ArtType,
		"building":     in.Building,
		"description":  in.Description,
	}
}

// Input returns the editable fields of a stored art studio.
func (a *ArtStudio) Input() ArtStudioInput {
	return ArtStudioInput{
		Name:        a.Name,
		SubDistrict: a.SubDistrict,
		Village:     a.Village,
		Leader:      a.Leader,
		ArtType:     a.ArtType,
		Building:    a.Building,
		Description: a.Description,
	}
}
