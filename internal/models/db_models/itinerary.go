package db_models

// Activity is one planned item within an itinerary day. The maps link is
// optional; activities without one are rendered without a directions button.
type Activity struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	MapsURL     *string `json:"mapsUrl,omitempty"`
}

// DiningOption is a meal slot (lunch/dinner) planned for a day.
type DiningOption struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
}

// ItineraryDay is a single day of the fixed holiday plan. Day holds the
// calendar day-of-month and drives the sort order on retrieval.
type ItineraryDay struct {
	ID          int            `json:"id"`
	Date        string         `json:"date"`
	Day         int            `json:"day"`
	Title       string         `json:"title"`
	Weather     string         `json:"weather"`
	Temperature int            `json:"temperature"`
	Activities  []Activity     `json:"activities"`
	Dining      []DiningOption `json:"dining"`
}
