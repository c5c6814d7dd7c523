package controllersfx

import (
	"go.uber.org/fx"

	"teithio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewLocationsController),
	fx.Provide(controllers.NewRestaurantsController),
	fx.Provide(controllers.NewProgressController),
	fx.Provide(controllers.NewMoodRatingsController),
	fx.Provide(controllers.NewDashboardController))
