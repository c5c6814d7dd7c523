package locationsfx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(
	provideLocationRepo, provideLocationService)

func provideLocationRepo(store *infra.MemStore) repositories.LocationRepository {
	return repositories.NewLocationRepository(store)
}

func provideLocationService(locationRepo repositories.LocationRepository) services.LocationServiceInterface {
	return services.NewLocationService(locationRepo)
}
