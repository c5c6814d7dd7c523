package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/pkg/utils"
)

func strp(s string) *string { return &s }

func TestProgressUpdateUnknownID(t *testing.T) {
	t.Parallel()

	repo := NewProgressRepository(infra.NewEmptyMemStore())
	_, err := repo.Update(context.Background(), 99, request_models.UpdateProgressRequest{
		IsCompleted: strp("true"),
	})
	assert.ErrorIs(t, err, utils.ErrMilestoneNotFound)
}

func TestProgressUpdatePartialMerge(t *testing.T) {
	t.Parallel()

	repo := NewProgressRepository(infra.NewEmptyMemStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, db_models.TravelProgress{
		MilestoneID: "packing",
		Name:        "Packed for trip",
		Description: strp("Clothes, toiletries, and beach gear"),
		IsCompleted: strp("false"),
		Category:    db_models.ProgressCategoryPlanning,
		Icon:        "map",
		Order:       2,
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, request_models.UpdateProgressRequest{
		IsCompleted: strp("true"),
		CompletedAt: strp("2024-07-10T09:00:00Z"),
	})
	require.NoError(t, err)

	assert.True(t, updated.Completed())
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "2024-07-10T09:00:00Z", *updated.CompletedAt)

	// Untouched fields survive the merge.
	assert.Equal(t, "packing", updated.MilestoneID)
	assert.Equal(t, "Packed for trip", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Clothes, toiletries, and beach gear", *updated.Description)
	assert.Equal(t, db_models.ProgressCategoryPlanning, updated.Category)
	assert.Equal(t, 2, updated.Order)
}

func TestProgressToggleOffClearsCompletedAt(t *testing.T) {
	t.Parallel()

	repo := NewProgressRepository(infra.NewEmptyMemStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, db_models.TravelProgress{
		MilestoneID: "booking",
		Name:        "Booked accommodation",
		IsCompleted: strp("true"),
		CompletedAt: strp("2024-07-01T10:00:00Z"),
		Category:    db_models.ProgressCategoryPlanning,
		Icon:        "calendar",
		Order:       1,
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, request_models.UpdateProgressRequest{
		IsCompleted: strp("false"),
	})
	require.NoError(t, err)

	assert.False(t, updated.Completed())
	assert.Nil(t, updated.CompletedAt)
}
