package progressfx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(
	provideProgressRepo, provideProgressService)

func provideProgressRepo(store *infra.MemStore) repositories.ProgressRepository {
	return repositories.NewProgressRepository(store)
}

func provideProgressService(progressRepo repositories.ProgressRepository) services.ProgressServiceInterface {
	return services.NewProgressService(progressRepo)
}
