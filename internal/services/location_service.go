package services

import (
	"context"

	"teithio/internal/models/db_models"
	"teithio/internal/repositories"
)

type LocationServiceInterface interface {
	ListLocations(ctx context.Context) ([]db_models.Location, error)
	GroupedByCategory(ctx context.Context) (map[string][]db_models.Location, error)
}

type locationService struct {
	locationRepository repositories.LocationRepository
}

func NewLocationService(locationRepository repositories.LocationRepository) LocationServiceInterface {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) ListLocations(ctx context.Context) ([]db_models.Location, error) {
	return s.locationRepository.List(ctx)
}

// GroupedByCategory partitions locations by category, preserving the list
// order within each group.
func (s *locationService) GroupedByCategory(ctx context.Context) (map[string][]db_models.Location, error) {
	locations, err := s.locationRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]db_models.Location)
	for _, loc := range locations {
		grouped[loc.Category] = append(grouped[loc.Category], loc)
	}
	return grouped, nil
}
