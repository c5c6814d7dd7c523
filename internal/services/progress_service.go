package services

import (
	"context"
	"math"

	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/internal/models/response_models"
	"teithio/internal/repositories"
)

type ProgressServiceInterface interface {
	ListMilestones(ctx context.Context) ([]db_models.TravelProgress, error)
	UpdateMilestone(ctx context.Context, id int, req request_models.UpdateProgressRequest) (db_models.TravelProgress, error)
	Summary(ctx context.Context) (response_models.ProgressSummary, error)
}

type progressService struct {
	progressRepository repositories.ProgressRepository
}

func NewProgressService(progressRepository repositories.ProgressRepository) ProgressServiceInterface {
	return &progressService{progressRepository: progressRepository}
}

func (s *progressService) ListMilestones(ctx context.Context) ([]db_models.TravelProgress, error) {
	return s.progressRepository.List(ctx)
}

func (s *progressService) UpdateMilestone(ctx context.Context, id int, req request_models.UpdateProgressRequest) (db_models.TravelProgress, error) {
	return s.progressRepository.Update(ctx, id, req)
}

// Summary rolls the milestone list up into completed/total counts, a rounded
// overall percentage and per-category pairs. An empty list yields 0%.
func (s *progressService) Summary(ctx context.Context) (response_models.ProgressSummary, error) {
	milestones, err := s.progressRepository.List(ctx)
	if err != nil {
		return response_models.ProgressSummary{}, err
	}

	summary := response_models.ProgressSummary{
		Total:      len(milestones),
		Categories: make(map[string]response_models.CategoryProgress),
	}
	for _, m := range milestones {
		cat := summary.Categories[m.Category]
		cat.Total++
		if m.Completed() {
			summary.Completed++
			cat.Completed++
		}
		summary.Categories[m.Category] = cat
	}
	if summary.Total > 0 {
		summary.Percent = int(math.Round(100 * float64(summary.Completed) / float64(summary.Total)))
	}
	return summary, nil
}
