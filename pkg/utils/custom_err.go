package utils

import "errors"

var (
	ErrMilestoneNotFound = errors.New("travel progress milestone not found")
	ErrRatingNotFound    = errors.New("mood rating not found")
	ErrInvalidRating     = errors.New("invalid mood rating data")
	ErrBadInput          = errors.New("bad input")
)
