package models

// FlashNews is a single ticker announcement. Messages are stored trimmed and
// are never empty.
type FlashNews struct {
	ID      int64  `json:"id" db:"id"`
	Message string `json:"message" db:"message"`
}
