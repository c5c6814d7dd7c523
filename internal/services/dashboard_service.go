package services

import (
	"context"
	"math"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"teithio/internal/models/response_models"
	"teithio/internal/repositories"
	"teithio/pkg/utils"
)

// The accommodation is fixed for the whole trip and serves as the origin for
// all generated directions links.
var homebase = response_models.Homebase{
	Name:    "Gwalia Falls Caravan Park",
	Address: "Tresaith SA43 2JL",
	MapsURL: "https://maps.google.com/maps?q=Gwalia+Falls+Caravan+Park+Tresaith+SA43+2JL",
}

// The itinerary's day-of-month values refer to this month.
var tripMonth = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

const (
	weatherSummaryKey = "weather_summary"
	cacheTTL          = 5 * time.Minute

	maxTodayDestinations = 3
)

type DashboardServiceInterface interface {
	WeatherSummary(ctx context.Context) (response_models.WeatherSummary, error)
	TodayPlan(ctx context.Context, now time.Time) (*response_models.TodayPlan, error)
	Homebase() response_models.Homebase
}

type dashboardService struct {
	itineraryRepository repositories.ItineraryRepository
	cache               *gocache.Cache
}

func NewDashboardService(itineraryRepository repositories.ItineraryRepository) DashboardServiceInterface {
	return &dashboardService{
		itineraryRepository: itineraryRepository,
		cache:               gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func isSunny(weather string) bool {
	return strings.Contains(weather, "Sunny") || strings.Contains(weather, "Hot")
}

func isRainy(weather string) bool {
	return strings.Contains(weather, "Rain") || strings.Contains(weather, "Showers")
}

func weatherAdvice(weather string, temperature int) string {
	switch {
	case strings.Contains(weather, "Thunder"):
		return "Stay indoors, perfect for cozy activities"
	case isRainy(weather):
		return "Pack an umbrella and waterproof jacket"
	case temperature >= 28:
		return "Very hot! Stay hydrated and use sun protection"
	case temperature >= 25:
		return "Perfect beach weather! Don't forget sunscreen"
	case temperature < 20:
		return "Cooler day, bring layers and a light jacket"
	default:
		return "Pleasant weather for outdoor activities"
	}
}

// WeatherSummary computes the trip-wide forecast overview. The itinerary is
// immutable after seeding, so the result is cached.
func (s *dashboardService) WeatherSummary(ctx context.Context) (response_models.WeatherSummary, error) {
	if cached, ok := s.cache.Get(weatherSummaryKey); ok {
		return cached.(response_models.WeatherSummary), nil
	}

	days, err := s.itineraryRepository.List(ctx)
	if err != nil {
		return response_models.WeatherSummary{}, err
	}

	summary := response_models.WeatherSummary{Days: make([]response_models.DayWeather, 0, len(days))}
	if len(days) == 0 {
		return summary, nil
	}

	total := 0
	summary.MaxTemp = days[0].Temperature
	summary.MinTemp = days[0].Temperature
	for _, day := range days {
		total += day.Temperature
		if day.Temperature > summary.MaxTemp {
			summary.MaxTemp = day.Temperature
		}
		if day.Temperature < summary.MinTemp {
			summary.MinTemp = day.Temperature
		}
		if isSunny(day.Weather) {
			summary.SunnyDays++
		}
		if isRainy(day.Weather) {
			summary.RainyDays++
		}
		summary.Days = append(summary.Days, response_models.DayWeather{
			Day:         day.Day,
			Date:        day.Date,
			Title:       day.Title,
			Weather:     day.Weather,
			Temperature: day.Temperature,
			Advice:      weatherAdvice(day.Weather, day.Temperature),
		})
	}
	summary.AvgTemp = int(math.Round(float64(total) / float64(len(days))))

	s.cache.Set(weatherSummaryKey, summary, gocache.DefaultExpiration)
	return summary, nil
}

// TodayPlan matches now against the itinerary's day-of-month within the fixed
// trip month and surfaces up to three mapped activities, each with a
// directions link from the homebase. Returns nil outside the trip window.
func (s *dashboardService) TodayPlan(ctx context.Context, now time.Time) (*response_models.TodayPlan, error) {
	days, err := s.itineraryRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, day := range days {
		date := time.Date(tripMonth.Year(), tripMonth.Month(), day.Day, 0, 0, 0, 0, time.UTC)
		if date.Year() != now.Year() || date.Month() != now.Month() || date.Day() != now.Day() {
			continue
		}

		plan := &response_models.TodayPlan{
			Day:   day.Day,
			Date:  day.Date,
			Title: day.Title,
		}
		for _, activity := range day.Activities {
			if activity.MapsURL == nil {
				continue
			}
			plan.Destinations = append(plan.Destinations, response_models.Destination{
				Description:   activity.Description,
				MapsURL:       *activity.MapsURL,
				DirectionsURL: utils.DirectionsURL(homebase.Address, activity.Description),
			})
			if len(plan.Destinations) == maxTodayDestinations {
				break
			}
		}
		return plan, nil
	}
	return nil, nil
}

func (s *dashboardService) Homebase() response_models.Homebase {
	hb := homebase
	hb.ExploreURL = utils.ExploreNearbyURL(homebase.Address)
	return hb
}
