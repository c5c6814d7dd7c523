package repositories

import (
	"context"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/pkg/utils"
)

type ProgressRepository interface {
	List(ctx context.Context) ([]db_models.TravelProgress, error)
	GetByID(ctx context.Context, id int) (*db_models.TravelProgress, error)
	Create(ctx context.Context, milestone db_models.TravelProgress) (db_models.TravelProgress, error)
	Update(ctx context.Context, id int, req request_models.UpdateProgressRequest) (db_models.TravelProgress, error)
}

type progressRepository struct {
	store *infra.MemStore
}

func NewProgressRepository(store *infra.MemStore) ProgressRepository {
	return &progressRepository{store: store}
}

func (r *progressRepository) List(ctx context.Context) ([]db_models.TravelProgress, error) {
	return r.store.Progress.List(), nil
}

func (r *progressRepository) GetByID(ctx context.Context, id int) (*db_models.TravelProgress, error) {
	m, ok := r.store.Progress.Get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *progressRepository) Create(ctx context.Context, milestone db_models.TravelProgress) (db_models.TravelProgress, error) {
	return r.store.Progress.Insert(func(id int) db_models.TravelProgress {
		milestone.ID = id
		return milestone
	}), nil
}

// Update merges only the supplied fields over the stored milestone. Marking a
// milestone not-completed clears its completion timestamp; the client cannot
// express "set to null" in a partial payload, so the clear rides on the flag.
func (r *progressRepository) Update(ctx context.Context, id int, req request_models.UpdateProgressRequest) (db_models.TravelProgress, error) {
	updated, ok := r.store.Progress.Update(id, func(m db_models.TravelProgress) db_models.TravelProgress {
		if req.MilestoneID != nil {
			m.MilestoneID = *req.MilestoneID
		}
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Description != nil {
			m.Description = req.Description
		}
		if req.IsCompleted != nil {
			m.IsCompleted = req.IsCompleted
		}
		if req.CompletedAt != nil {
			m.CompletedAt = req.CompletedAt
		}
		if req.IsCompleted != nil && *req.IsCompleted != db_models.ProgressCompleted {
			m.CompletedAt = nil
		}
		if req.Day != nil {
			m.Day = req.Day
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
		if req.Icon != nil {
			m.Icon = *req.Icon
		}
		if req.Order != nil {
			m.Order = *req.Order
		}
		return m
	})
	if !ok {
		return db_models.TravelProgress{}, utils.ErrMilestoneNotFound
	}
	return updated, nil
}
