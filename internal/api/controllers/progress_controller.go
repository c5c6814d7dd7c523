package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"teithio/internal/models/request_models"
	"teithio/internal/services"
	"teithio/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{progressService: progressService}
}

func (pc *ProgressController) ListMilestones(c *gin.Context) {
	milestones, err := pc.progressService.ListMilestones(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch travel progress")
		return
	}
	c.JSON(http.StatusOK, milestones)
}

// UpdateMilestone applies a partial update, typically toggling isCompleted
// and stamping or clearing completedAt.
func (pc *ProgressController) UpdateMilestone(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to update travel progress")
		return
	}

	var req request_models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to update travel progress")
		return
	}

	milestone, err := pc.progressService.UpdateMilestone(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

// Summary returns the completed/total roll-up used by the tracker header.
func (pc *ProgressController) Summary(c *gin.Context) {
	summary, err := pc.progressService.Summary(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch travel progress")
		return
	}
	c.JSON(http.StatusOK, summary)
}
