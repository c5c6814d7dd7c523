package services

import (
	"context"

	"teithio/internal/models/db_models"
	"teithio/internal/repositories"
)

type RestaurantServiceInterface interface {
	ListRestaurants(ctx context.Context) ([]db_models.Restaurant, error)
	GroupedByCategory(ctx context.Context) (map[string][]db_models.Restaurant, error)
}

type restaurantService struct {
	restaurantRepository repositories.RestaurantRepository
}

func NewRestaurantService(restaurantRepository repositories.RestaurantRepository) RestaurantServiceInterface {
	return &restaurantService{restaurantRepository: restaurantRepository}
}

func (s *restaurantService) ListRestaurants(ctx context.Context) ([]db_models.Restaurant, error) {
	return s.restaurantRepository.List(ctx)
}

func (s *restaurantService) GroupedByCategory(ctx context.Context) (map[string][]db_models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]db_models.Restaurant)
	for _, r := range restaurants {
		grouped[r.Category] = append(grouped[r.Category], r)
	}
	return grouped, nil
}
