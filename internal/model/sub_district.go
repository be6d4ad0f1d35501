package model

import (
	"strings"
	"time"
)

// SubDistrict is an administrative area (kecamatan) records are located in.
type SubDistrict struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubDistrictInput carries submitted sub-district form fields.
type SubDistrictInput struct {
	Name        string `form:"name" validate:"required,max=60"`
	Description string `form:"description" validate:"omitempty,max=255"`
}

// Normalize trims surrounding whitespace from every field.
func (in SubDistrictInput) Normalize() SubDistrictInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Values returns the form values keyed by field name.
func (in SubDistrictInput) Values() map[string]string {
	return map[string]string{
		"name":        in.Name,
		"description": in.Description,
	}
}

// Input returns the editable fields of a stored sub-district.
func (s *SubDistrict) Input() SubDistrictInput {
	return SubDistrictInput{Name: s.Name, Description: s.Description}
}
