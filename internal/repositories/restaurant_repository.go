package repositories

import (
	"context"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
)

type RestaurantRepository interface {
	List(ctx context.Context) ([]db_models.Restaurant, error)
	GetByID(ctx context.Context, id int) (*db_models.Restaurant, error)
	Create(ctx context.Context, restaurant db_models.Restaurant) (db_models.Restaurant, error)
}

type restaurantRepository struct {
	store *infra.MemStore
}

func NewRestaurantRepository(store *infra.MemStore) RestaurantRepository {
	return &restaurantRepository{store: store}
}

func (r *restaurantRepository) List(ctx context.Context) ([]db_models.Restaurant, error) {
	return r.store.Restaurants.List(), nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int) (*db_models.Restaurant, error) {
	rest, ok := r.store.Restaurants.Get(id)
	if !ok {
		return nil, nil
	}
	return &rest, nil
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant db_models.Restaurant) (db_models.Restaurant, error) {
	return r.store.Restaurants.Insert(func(id int) db_models.Restaurant {
		restaurant.ID = id
		return restaurant
	}), nil
}
