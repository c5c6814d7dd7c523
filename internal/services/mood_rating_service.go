package services

import (
	"context"
	"strings"

	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/internal/repositories"
	"teithio/pkg/utils"
)

type MoodRatingServiceInterface interface {
	ListRatings(ctx context.Context) ([]db_models.LocationMoodRating, error)
	CreateRating(ctx context.Context, req request_models.CreateMoodRatingRequest) (db_models.LocationMoodRating, error)
	UpdateRating(ctx context.Context, id int, req request_models.UpdateMoodRatingRequest) (db_models.LocationMoodRating, error)
	DeleteRating(ctx context.Context, id int) error
}

type moodRatingService struct {
	moodRatingRepository repositories.MoodRatingRepository
}

func NewMoodRatingService(moodRatingRepository repositories.MoodRatingRepository) MoodRatingServiceInterface {
	return &moodRatingService{moodRatingRepository: moodRatingRepository}
}

func (s *moodRatingService) ListRatings(ctx context.Context) ([]db_models.LocationMoodRating, error) {
	return s.moodRatingRepository.List(ctx)
}

// CreateRating validates the payload before storing. Multiple ratings per
// location are allowed; the client decides create-vs-update.
func (s *moodRatingService) CreateRating(ctx context.Context, req request_models.CreateMoodRatingRequest) (db_models.LocationMoodRating, error) {
	if strings.TrimSpace(req.LocationName) == "" {
		return db_models.LocationMoodRating{}, utils.ErrInvalidRating
	}
	if !db_models.ValidMood(req.Rating) {
		return db_models.LocationMoodRating{}, utils.ErrInvalidRating
	}
	return s.moodRatingRepository.Create(ctx, req)
}

func (s *moodRatingService) UpdateRating(ctx context.Context, id int, req request_models.UpdateMoodRatingRequest) (db_models.LocationMoodRating, error) {
	if req.Rating != nil && !db_models.ValidMood(*req.Rating) {
		return db_models.LocationMoodRating{}, utils.ErrInvalidRating
	}
	return s.moodRatingRepository.Update(ctx, id, req)
}

func (s *moodRatingService) DeleteRating(ctx context.Context, id int) error {
	return s.moodRatingRepository.Delete(ctx, id)
}
