package repositories

import (
	"context"
	"sort"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
)

type ItineraryRepository interface {
	List(ctx context.Context) ([]db_models.ItineraryDay, error)
	GetByID(ctx context.Context, id int) (*db_models.ItineraryDay, error)
	Create(ctx context.Context, day db_models.ItineraryDay) (db_models.ItineraryDay, error)
}

type itineraryRepository struct {
	store *infra.MemStore
}

func NewItineraryRepository(store *infra.MemStore) ItineraryRepository {
	return &itineraryRepository{store: store}
}

// List returns all itinerary days sorted ascending by day-of-month. Day
// values are not guaranteed unique; the sort is stable so ties keep
// insertion order.
func (r *itineraryRepository) List(ctx context.Context) ([]db_models.ItineraryDay, error) {
	days := r.store.Itinerary.List()
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Day < days[j].Day
	})
	return days, nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id int) (*db_models.ItineraryDay, error) {
	day, ok := r.store.Itinerary.Get(id)
	if !ok {
		return nil, nil
	}
	return &day, nil
}

// Create assigns the next identifier and stores the day. Any identifier on
// the input is ignored.
func (r *itineraryRepository) Create(ctx context.Context, day db_models.ItineraryDay) (db_models.ItineraryDay, error) {
	return r.store.Itinerary.Insert(func(id int) db_models.ItineraryDay {
		day.ID = id
		return day
	}), nil
}
