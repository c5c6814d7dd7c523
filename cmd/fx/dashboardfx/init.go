package dashboardfx

import (
	"go.uber.org/fx"

	"teithio/internal/repositories"
	"teithio/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(itineraryRepo repositories.ItineraryRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(itineraryRepo)
}
