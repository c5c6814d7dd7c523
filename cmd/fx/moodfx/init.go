package moodfx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(
	provideMoodRatingRepo, provideMoodRatingService)

func provideMoodRatingRepo(store *infra.MemStore) repositories.MoodRatingRepository {
	return repositories.NewMoodRatingRepository(store)
}

func provideMoodRatingService(moodRepo repositories.MoodRatingRepository) services.MoodRatingServiceInterface {
	return services.NewMoodRatingService(moodRepo)
}
