package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teithio/internal/services"
	"teithio/pkg/utils"
)

type LocationsController struct {
	locationService services.LocationServiceInterface
}

func NewLocationsController(locationService services.LocationServiceInterface) *LocationsController {
	return &LocationsController{locationService: locationService}
}

func (lc *LocationsController) ListLocations(c *gin.Context) {
	locations, err := lc.locationService.ListLocations(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	c.JSON(http.StatusOK, locations)
}

// ListGrouped returns locations partitioned by category, the shape the
// mood-board and locations views render from.
func (lc *LocationsController) ListGrouped(c *gin.Context) {
	grouped, err := lc.locationService.GroupedByCategory(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	c.JSON(http.StatusOK, grouped)
}
