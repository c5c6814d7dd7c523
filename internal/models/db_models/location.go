package db_models

// Location categories used by the seed data and the grouped views.
const (
	LocationCategoryBeach    = "beach"
	LocationCategoryHistoric = "historic"
	LocationCategoryNature   = "nature"
	LocationCategoryTown     = "town"
	LocationCategoryOther    = "other"
)

// Location is a point of interest on the trip.
type Location struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description *string `json:"description"`
	MapsURL     string  `json:"mapsUrl"`
}
