package repositories

import (
	"context"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
)

type LocationRepository interface {
	List(ctx context.Context) ([]db_models.Location, error)
	GetByID(ctx context.Context, id int) (*db_models.Location, error)
	Create(ctx context.Context, location db_models.Location) (db_models.Location, error)
}

type locationRepository struct {
	store *infra.MemStore
}

func NewLocationRepository(store *infra.MemStore) LocationRepository {
	return &locationRepository{store: store}
}

func (r *locationRepository) List(ctx context.Context) ([]db_models.Location, error) {
	return r.store.Locations.List(), nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int) (*db_models.Location, error) {
	loc, ok := r.store.Locations.Get(id)
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *locationRepository) Create(ctx context.Context, location db_models.Location) (db_models.Location, error) {
	return r.store.Locations.Insert(func(id int) db_models.Location {
		location.ID = id
		return location
	}), nil
}
