package dto

// FlashNewsCreateRequest represents the payload for creating a flash news
// item. Whitespace-only messages are rejected at the service layer after
// trimming, so no binding rule beyond presence is applied here.
type FlashNewsCreateRequest struct {
	Message string `json:"message"`
}
