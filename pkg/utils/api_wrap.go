package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the dashboard client's error envelope: {"error": msg}.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP responses.
// Missing identifiers and malformed payloads both surface as 400 on mutation
// paths, matching what the dashboard client expects; anything unknown is a
// generic 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMilestoneNotFound):
		RespondError(c, http.StatusBadRequest, "Failed to update travel progress")
	case errors.Is(err, ErrRatingNotFound):
		RespondError(c, http.StatusBadRequest, "Failed to update mood rating")
	case errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, "Invalid mood rating data")
	case errors.Is(err, ErrBadInput):
		RespondError(c, http.StatusBadRequest, "Invalid request body")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
