package db_models

// Milestone categories.
const (
	ProgressCategoryPlanning   = "planning"
	ProgressCategoryTravel     = "travel"
	ProgressCategoryActivities = "activities"
	ProgressCategoryDining     = "dining"
)

// ProgressCompleted is the value of IsCompleted for a done milestone. The
// flag is a text column in the upstream schema, not a boolean.
const ProgressCompleted = "true"

// TravelProgress is a checklist milestone for the trip. MilestoneID is the
// stable external key; ID is the storage identifier. Day is the optional
// calendar day-of-month the milestone belongs to.
type TravelProgress struct {
	ID          int     `json:"id"`
	MilestoneID string  `json:"milestoneId"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsCompleted *string `json:"isCompleted"`
	CompletedAt *string `json:"completedAt"`
	Day         *int    `json:"day"`
	Category    string  `json:"category"`
	Icon        string  `json:"icon"`
	Order       int     `json:"order"`
}

// Completed reports whether the milestone has been ticked off.
func (p TravelProgress) Completed() bool {
	return p.IsCompleted != nil && *p.IsCompleted == ProgressCompleted
}
