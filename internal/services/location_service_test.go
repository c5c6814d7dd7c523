package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
	"teithio/internal/repositories"
)

func TestListLocationsSeeded(t *testing.T) {
	t.Parallel()

	svc := NewLocationService(repositories.NewLocationRepository(infra.NewMemStore()))
	locations, err := svc.ListLocations(context.Background())
	require.NoError(t, err)

	require.Len(t, locations, 13)
	assert.Equal(t, "Tresaith Beach", locations[0].Name)
	assert.Equal(t, 1, locations[0].ID)
}

func TestGroupLocationsByCategory(t *testing.T) {
	t.Parallel()

	svc := NewLocationService(repositories.NewLocationRepository(infra.NewMemStore()))
	grouped, err := svc.GroupedByCategory(context.Background())
	require.NoError(t, err)

	require.Len(t, grouped, 4)
	assert.Len(t, grouped[db_models.LocationCategoryBeach], 4)
	assert.Len(t, grouped[db_models.LocationCategoryHistoric], 3)
	assert.Len(t, grouped[db_models.LocationCategoryNature], 3)
	assert.Len(t, grouped[db_models.LocationCategoryTown], 3)

	beaches := grouped[db_models.LocationCategoryBeach]
	assert.Equal(t, "Tresaith Beach", beaches[0].Name)
	assert.Equal(t, "Aberporth Beach", beaches[3].Name)
}
