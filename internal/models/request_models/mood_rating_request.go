package request_models

// CreateMoodRatingRequest is the payload for dropping a location into a mood
// bucket for the first time.
type CreateMoodRatingRequest struct {
	LocationID   *int    `json:"locationId"`
	LocationName string  `json:"locationName"`
	Rating       string  `json:"rating"`
	Notes        *string `json:"notes"`
}

// UpdateMoodRatingRequest carries a partial update: a re-drag changes Rating,
// a note edit changes Notes. Nil fields keep their stored value.
type UpdateMoodRatingRequest struct {
	LocationID   *int    `json:"locationId"`
	LocationName *string `json:"locationName"`
	Rating       *string `json:"rating"`
	Notes        *string `json:"notes"`
}
