package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teithio/internal/services"
	"teithio/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// ListDays returns all itinerary days sorted by day-of-month.
func (ic *ItineraryController) ListDays(c *gin.Context) {
	days, err := ic.itineraryService.ListDays(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch itinerary")
		return
	}
	c.JSON(http.StatusOK, days)
}
