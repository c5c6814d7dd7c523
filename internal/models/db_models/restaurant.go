package db_models

// Restaurant is a dining recommendation. MealType and MapsURL are optional in
// both known variants of the seed dataset, so both stay nullable.
type Restaurant struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Description *string `json:"description"`
	MealType    *string `json:"mealType"`
	MapsURL     *string `json:"mapsUrl"`
}
