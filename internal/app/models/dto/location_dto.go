package dto

// LocationCreateRequest represents the payload for creating a location. The
// ID is caller-supplied and must not collide with an existing one.
type LocationCreateRequest struct {
	ID       string  `json:"id" binding:"required"`
	Label    string  `json:"label" binding:"required"`
	Subtitle *string `json:"subtitle"`
	Type     *string `json:"type"`
}
