package itineraryfx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(store *infra.MemStore) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(store)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}
