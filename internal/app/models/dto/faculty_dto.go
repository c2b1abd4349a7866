package dto

// FacultyCreateRequest represents the payload for creating a faculty member.
// Availability defaults to true when unspecified; location_id, when present,
// must reference an existing location.
type FacultyCreateRequest struct {
	Name         string   `json:"name" binding:"required"`
	Department   *string  `json:"department"`
	School       *string  `json:"school"`
	Designation  *string  `json:"designation"`
	Role         *string  `json:"role"`
	CoursesTaken []string `json:"courses_taken"`
	CabinNumber  *string  `json:"cabin_number"`
	PhoneNumber  *string  `json:"phone_number"`
	Availability *bool    `json:"availability"`
	LocationID   *string  `json:"location_id"`
}

// FacultyAvailabilityUpdate represents the single-field availability toggle.
// A pointer so that a missing field is a binding error rather than false.
type FacultyAvailabilityUpdate struct {
	Availability *bool `json:"availability" binding:"required"`
}
