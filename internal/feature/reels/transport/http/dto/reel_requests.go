// Package dto defines the request and response payloads for the reels
// endpoints.
package dto

// ReelResponse is the projection of a freshly posted reel.
type ReelResponse struct {
	ID           uint    `json:"_id"`
	ReelURL      string  `json:"reel_url"`
	ThumbnailURL string  `json:"reel_thumbnail_url"`
	Caption      string  `json:"caption"`
	Duration     float64 `json:"duration"`
	OwnerID      uint    `json:"owner_id"`
}

// ToggleSaveResponse reports the saved state after a toggle.
type ToggleSaveResponse struct {
	ReelID  uint `json:"reel_id"`
	IsSaved bool `json:"is_saved"`
}
