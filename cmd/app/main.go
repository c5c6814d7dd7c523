package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"teithio/cmd/fx/controllersfx"
	"teithio/cmd/fx/dashboardfx"
	"teithio/cmd/fx/itineraryfx"
	"teithio/cmd/fx/locationsfx"
	"teithio/cmd/fx/moodfx"
	"teithio/cmd/fx/progressfx"
	"teithio/cmd/fx/restaurantsfx"
	"teithio/cmd/fx/storefx"
	"teithio/internal/api/controllers"
	"teithio/internal/config"
	"teithio/pkg/logger"
	"teithio/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	app := fx.New(
		fx.Supply(cfg, log),

		storefx.Module,
		itineraryfx.Module,
		locationsfx.Module,
		restaurantsfx.Module,
		progressfx.Module,
		moodfx.Module,
		dashboardfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *logrus.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.WithField("addr", srv.Addr).Info("starting HTTP server")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	itineraryController *controllers.ItineraryController,
	locationsController *controllers.LocationsController,
	restaurantsController *controllers.RestaurantsController,
	progressController *controllers.ProgressController,
	moodRatingsController *controllers.MoodRatingsController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigin))

	RegisterRoutes(r,
		itineraryController,
		locationsController,
		restaurantsController,
		progressController,
		moodRatingsController,
		dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	locationsController *controllers.LocationsController,
	restaurantsController *controllers.RestaurantsController,
	progressController *controllers.ProgressController,
	moodRatingsController *controllers.MoodRatingsController,
	dashboardController *controllers.DashboardController) {

	api := r.Group("/api")

	api.GET("/itinerary", itineraryController.ListDays)

	api.GET("/locations", locationsController.ListLocations)
	api.GET("/locations/grouped", locationsController.ListGrouped)

	api.GET("/restaurants", restaurantsController.ListRestaurants)
	api.GET("/restaurants/grouped", restaurantsController.ListGrouped)

	api.GET("/travel-progress", progressController.ListMilestones)
	api.GET("/travel-progress/summary", progressController.Summary)
	api.PATCH("/travel-progress/:id", progressController.UpdateMilestone)

	api.GET("/mood-ratings", moodRatingsController.ListRatings)
	api.POST("/mood-ratings", moodRatingsController.CreateRating)
	api.PATCH("/mood-ratings/:id", moodRatingsController.UpdateRating)
	api.DELETE("/mood-ratings/:id", moodRatingsController.DeleteRating)

	api.GET("/weather/summary", dashboardController.WeatherSummary)
	api.GET("/today", dashboardController.TodayPlan)
	api.GET("/homebase", dashboardController.Homebase)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
