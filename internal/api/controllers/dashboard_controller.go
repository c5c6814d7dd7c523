package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teithio/internal/services"
	"teithio/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (dc *DashboardController) WeatherSummary(c *gin.Context) {
	summary, err := dc.dashboardService.WeatherSummary(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch weather summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TodayPlan returns the current day's plan, or JSON null outside the trip
// window.
func (dc *DashboardController) TodayPlan(c *gin.Context) {
	plan, err := dc.dashboardService.TodayPlan(c.Request.Context(), time.Now())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch today's plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (dc *DashboardController) Homebase(c *gin.Context) {
	c.JSON(http.StatusOK, dc.dashboardService.Homebase())
}
