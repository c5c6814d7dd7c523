package repositories

import (
	"context"
	"time"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/pkg/utils"
)

type MoodRatingRepository interface {
	List(ctx context.Context) ([]db_models.LocationMoodRating, error)
	GetByID(ctx context.Context, id int) (*db_models.LocationMoodRating, error)
	Create(ctx context.Context, req request_models.CreateMoodRatingRequest) (db_models.LocationMoodRating, error)
	Update(ctx context.Context, id int, req request_models.UpdateMoodRatingRequest) (db_models.LocationMoodRating, error)
	Delete(ctx context.Context, id int) error
}

type moodRatingRepository struct {
	store *infra.MemStore
}

func NewMoodRatingRepository(store *infra.MemStore) MoodRatingRepository {
	return &moodRatingRepository{store: store}
}

// Timestamps use nanosecond precision so UpdatedAt observably changes even
// for mutations within the same second.
func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (r *moodRatingRepository) List(ctx context.Context) ([]db_models.LocationMoodRating, error) {
	return r.store.MoodRatings.List(), nil
}

func (r *moodRatingRepository) GetByID(ctx context.Context, id int) (*db_models.LocationMoodRating, error) {
	rating, ok := r.store.MoodRatings.Get(id)
	if !ok {
		return nil, nil
	}
	return &rating, nil
}

// Create stores a new rating with both timestamps set to now. Uniqueness per
// location is not enforced here; the client checks for an existing rating
// before choosing create over update.
func (r *moodRatingRepository) Create(ctx context.Context, req request_models.CreateMoodRatingRequest) (db_models.LocationMoodRating, error) {
	now := nowStamp()
	return r.store.MoodRatings.Insert(func(id int) db_models.LocationMoodRating {
		return db_models.LocationMoodRating{
			ID:           id,
			LocationID:   req.LocationID,
			LocationName: req.LocationName,
			Rating:       req.Rating,
			Notes:        req.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}), nil
}

// Update merges only the supplied fields and re-stamps UpdatedAt on every
// call, whether or not anything changed. CreatedAt is never touched.
func (r *moodRatingRepository) Update(ctx context.Context, id int, req request_models.UpdateMoodRatingRequest) (db_models.LocationMoodRating, error) {
	updated, ok := r.store.MoodRatings.Update(id, func(rating db_models.LocationMoodRating) db_models.LocationMoodRating {
		if req.LocationID != nil {
			rating.LocationID = req.LocationID
		}
		if req.LocationName != nil {
			rating.LocationName = *req.LocationName
		}
		if req.Rating != nil {
			rating.Rating = *req.Rating
		}
		if req.Notes != nil {
			rating.Notes = req.Notes
		}
		rating.UpdatedAt = nowStamp()
		return rating
	})
	if !ok {
		return db_models.LocationMoodRating{}, utils.ErrRatingNotFound
	}
	return updated, nil
}

// Delete removes the rating if present. Idempotent: deleting an unknown id
// is not an error.
func (r *moodRatingRepository) Delete(ctx context.Context, id int) error {
	r.store.MoodRatings.Delete(id)
	return nil
}
