package models

import "github.com/insider-navs/backend/internal/pkg/optional"

// Faculty roles with dedicated analytics counters.
const (
	RoleHOD = "HOD"
	RoleCC  = "CC"
)

// Faculty represents a faculty member in the directory.
type Faculty struct {
	ID           int64    `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	Department   *string  `json:"department,omitempty" db:"department"`
	School       *string  `json:"school,omitempty" db:"school"`
	Designation  *string  `json:"designation,omitempty" db:"designation"`
	Role         *string  `json:"role,omitempty" db:"role"`
	CoursesTaken []string `json:"courses_taken" db:"courses_taken"`
	CabinNumber  *string  `json:"cabin_number,omitempty" db:"cabin_number"`
	PhoneNumber  *string  `json:"phone_number,omitempty" db:"phone_number"`
	Availability bool     `json:"availability" db:"availability"`
	LocationID   *string  `json:"location_id,omitempty" db:"location_id"`
}

// FacultyPatch carries a partial profile update. School and location_id are
// deliberately absent: they are only settable on create, and availability has
// its own endpoint.
type FacultyPatch struct {
	Name         optional.Value[string]   `json:"name"`
	Department   optional.Value[string]   `json:"department"`
	Designation  optional.Value[string]   `json:"designation"`
	Role         optional.Value[string]   `json:"role"`
	CabinNumber  optional.Value[string]   `json:"cabin_number"`
	PhoneNumber  optional.Value[string]   `json:"phone_number"`
	CoursesTaken optional.Value[[]string] `json:"courses_taken"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p *FacultyPatch) IsEmpty() bool {
	return !p.Name.Present &&
		!p.Department.Present &&
		!p.Designation.Present &&
		!p.Role.Present &&
		!p.CabinNumber.Present &&
		!p.PhoneNumber.Present &&
		!p.CoursesTaken.Present
}
