package db_models

// Mood buckets a location can be dragged into.
const (
	MoodGood     = "good"
	MoodOkay     = "okay"
	MoodHorrible = "horrible"
)

// ValidMood reports whether rating is one of the known buckets.
func ValidMood(rating string) bool {
	switch rating {
	case MoodGood, MoodOkay, MoodHorrible:
		return true
	}
	return false
}

// LocationMoodRating is a user-assigned mood bucket for a location.
//
// LocationID is an advisory weak reference: deleting a Location neither
// cascades to its ratings nor invalidates them. LocationName is denormalized
// so a rating stays renderable on its own.
type LocationMoodRating struct {
	ID           int     `json:"id"`
	LocationID   *int    `json:"locationId"`
	LocationName string  `json:"locationName"`
	Rating       string  `json:"rating"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}
