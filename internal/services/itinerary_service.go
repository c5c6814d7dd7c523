package services

import (
	"context"

	"teithio/internal/models/db_models"
	"teithio/internal/repositories"
)

type ItineraryServiceInterface interface {
	ListDays(ctx context.Context) ([]db_models.ItineraryDay, error)
}

type itineraryService struct {
	itineraryRepository repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepository repositories.ItineraryRepository) ItineraryServiceInterface {
	return &itineraryService{itineraryRepository: itineraryRepository}
}

func (s *itineraryService) ListDays(ctx context.Context) ([]db_models.ItineraryDay, error) {
	return s.itineraryRepository.List(ctx)
}
