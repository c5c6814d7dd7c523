package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"teithio/internal/models/request_models"
	"teithio/internal/services"
	"teithio/pkg/utils"
)

type MoodRatingsController struct {
	moodRatingService services.MoodRatingServiceInterface
}

func NewMoodRatingsController(moodRatingService services.MoodRatingServiceInterface) *MoodRatingsController {
	return &MoodRatingsController{moodRatingService: moodRatingService}
}

func (mc *MoodRatingsController) ListRatings(c *gin.Context) {
	ratings, err := mc.moodRatingService.ListRatings(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Failed to fetch mood ratings")
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (mc *MoodRatingsController) CreateRating(c *gin.Context) {
	var req request_models.CreateMoodRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid mood rating data")
		return
	}

	rating, err := mc.moodRatingService.CreateRating(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (mc *MoodRatingsController) UpdateRating(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to update mood rating")
		return
	}

	var req request_models.UpdateMoodRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to update mood rating")
		return
	}

	rating, err := mc.moodRatingService.UpdateRating(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// DeleteRating removes a rating. Deleting an id that is already gone still
// reports success.
func (mc *MoodRatingsController) DeleteRating(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to delete mood rating")
		return
	}

	if err := mc.moodRatingService.DeleteRating(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
