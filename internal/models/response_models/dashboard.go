package response_models

// CategoryProgress is the completed/total pair for one milestone category.
type CategoryProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// ProgressSummary is the checklist roll-up shown in the progress tracker
// header. Percent is round(100*completed/total), 0 for an empty list.
type ProgressSummary struct {
	Completed  int                         `json:"completed"`
	Total      int                         `json:"total"`
	Percent    int                         `json:"percent"`
	Categories map[string]CategoryProgress `json:"categories"`
}

// DayWeather is one day's conditions plus the packing advice line.
type DayWeather struct {
	Day         int    `json:"day"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Weather     string `json:"weather"`
	Temperature int    `json:"temperature"`
	Advice      string `json:"advice"`
}

// WeatherSummary is the forecast overview for the whole trip. AvgTemp uses
// integer rounding; a day counts as sunny when its weather string mentions
// "Sunny" or "Hot", rainy when it mentions "Rain" or "Showers".
type WeatherSummary struct {
	AvgTemp   int          `json:"avgTemp"`
	MaxTemp   int          `json:"maxTemp"`
	MinTemp   int          `json:"minTemp"`
	SunnyDays int          `json:"sunnyDays"`
	RainyDays int          `json:"rainyDays"`
	Days      []DayWeather `json:"days"`
}

// Destination is one of today's planned stops with a ready directions link
// from the homebase.
type Destination struct {
	Description   string `json:"description"`
	MapsURL       string `json:"mapsUrl"`
	DirectionsURL string `json:"directionsUrl"`
}

// TodayPlan surfaces up to three mapped activities for the current calendar
// day of the trip.
type TodayPlan struct {
	Day          int           `json:"day"`
	Date         string        `json:"date"`
	Title        string        `json:"title"`
	Destinations []Destination `json:"destinations"`
}

// Homebase is the fixed accommodation used as the origin for directions.
type Homebase struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	MapsURL    string `json:"mapsUrl"`
	ExploreURL string `json:"exploreUrl"`
}
