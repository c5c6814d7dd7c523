package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teithio/internal/infra"
	"teithio/internal/repositories"
)

func TestWeatherSummarySeededTrip(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(repositories.NewItineraryRepository(infra.NewMemStore()))
	summary, err := svc.WeatherSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 24, summary.AvgTemp)
	assert.Equal(t, 29, summary.MaxTemp)
	assert.Equal(t, 20, summary.MinTemp)
	assert.Equal(t, 3, summary.SunnyDays)
	assert.Equal(t, 3, summary.RainyDays)
	require.Len(t, summary.Days, 8)

	first := summary.Days[0]
	assert.Equal(t, 11, first.Day)
	assert.Equal(t, "Partly Sunny", first.Weather)
	assert.NotEmpty(t, first.Advice)
}

func TestWeatherSummaryEmptyItinerary(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(repositories.NewItineraryRepository(infra.NewEmptyMemStore()))
	summary, err := svc.WeatherSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.AvgTemp)
	assert.Equal(t, 0, summary.SunnyDays)
	assert.Equal(t, 0, summary.RainyDays)
	assert.Empty(t, summary.Days)
}

func TestWeatherAdvice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		weather     string
		temperature int
		want        string
	}{
		{name: "rainy", weather: "Showers", temperature: 20, want: "Pack an umbrella and waterproof jacket"},
		{name: "very hot", weather: "Very Hot", temperature: 29, want: "Very hot! Stay hydrated and use sun protection"},
		{name: "beach weather", weather: "Partly Sunny", temperature: 25, want: "Perfect beach weather! Don't forget sunscreen"},
		{name: "cool day", weather: "Cloudy but dry", temperature: 18, want: "Cooler day, bring layers and a light jacket"},
		{name: "mild", weather: "Cloudy but dry", temperature: 22, want: "Pleasant weather for outdoor activities"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, weatherAdvice(tt.weather, tt.temperature))
		})
	}
}

func TestTodayPlanWithinTrip(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(repositories.NewItineraryRepository(infra.NewMemStore()))
	now := time.Date(2024, time.July, 11, 9, 30, 0, 0, time.UTC)

	plan, err := svc.TodayPlan(context.Background(), now)
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Equal(t, 11, plan.Day)
	assert.Equal(t, "Tresaith Beach Day", plan.Title)
	require.Len(t, plan.Destinations, 3)
	for _, dest := range plan.Destinations {
		assert.NotEmpty(t, dest.MapsURL)
		assert.Contains(t, dest.DirectionsURL, "Tresaith+SA43+2JL")
	}
}

func TestTodayPlanOutsideTrip(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(repositories.NewItineraryRepository(infra.NewMemStore()))
	now := time.Date(2024, time.August, 2, 12, 0, 0, 0, time.UTC)

	plan, err := svc.TodayPlan(context.Background(), now)
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestHomebaseLinks(t *testing.T) {
	t.Parallel()

	svc := NewDashboardService(repositories.NewItineraryRepository(infra.NewEmptyMemStore()))
	hb := svc.Homebase()

	assert.Equal(t, "Gwalia Falls Caravan Park", hb.Name)
	assert.Equal(t, "Tresaith SA43 2JL", hb.Address)
	assert.NotEmpty(t, hb.MapsURL)
	assert.NotEmpty(t, hb.ExploreURL)
}
