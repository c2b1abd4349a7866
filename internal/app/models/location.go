package models

import "github.com/insider-navs/backend/internal/pkg/optional"

// DefaultLocationType is applied when a location is created without a type.
const DefaultLocationType = "location"

// Location represents a navigable campus location. IDs are caller-supplied
// slugs, not generated by the database.
type Location struct {
	ID       string  `json:"id" db:"id"`
	Label    string  `json:"label" db:"label"`
	Subtitle *string `json:"subtitle,omitempty" db:"subtitle"`
	Type     string  `json:"type" db:"type"`
}

// LocationPatch carries a partial location update. Fields left out of the
// request body stay untouched; fields sent as null clear the column.
type LocationPatch struct {
	Label    optional.Value[string] `json:"label"`
	Subtitle optional.Value[string] `json:"subtitle"`
	Type     optional.Value[string] `json:"type"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *LocationPatch) IsEmpty() bool {
	return !p.Label.Present && !p.Subtitle.Present && !p.Type.Present
}
