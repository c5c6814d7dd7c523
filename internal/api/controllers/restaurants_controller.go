package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teithio/internal/services"
	"teithio/pkg/utils"
)

type RestaurantsController struct {
	restaurantService services.RestaurantServiceInterface
}

func NewRestaurantsController(restaurantService services.RestaurantServiceInterface) *RestaurantsController {
	return &RestaurantsController{restaurantService: restaurantService}
}

func (rc *RestaurantsController) ListRestaurants(c *gin.Context) {
	restaurants, err := rc.restaurantService.ListRestaurants(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (rc *RestaurantsController) ListGrouped(c *gin.Context) {
	grouped, err := rc.restaurantService.GroupedByCategory(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch restaurants")
		return
	}
	c.JSON(http.StatusOK, grouped)
}
