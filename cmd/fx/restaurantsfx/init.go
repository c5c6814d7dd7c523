package restaurantsfx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(
	provideRestaurantRepo, provideRestaurantService)

func provideRestaurantRepo(store *infra.MemStore) repositories.RestaurantRepository {
	return repositories.NewRestaurantRepository(store)
}

func provideRestaurantService(restaurantRepo repositories.RestaurantRepository) services.RestaurantServiceInterface {
	return services.NewRestaurantService(restaurantRepo)
}
