package request_models

// UpdateProgressRequest carries a partial update for a milestone. Nil fields
// were not supplied and must leave the stored value untouched.
type UpdateProgressRequest struct {
	MilestoneID *string `json:"milestoneId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsCompleted *string `json:"isCompleted"`
	CompletedAt *string `json:"completedAt"`
	Day         *int    `json:"day"`
	Category    *string `json:"category"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
}
