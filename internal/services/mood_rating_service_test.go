package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teithio/internal/infra"
	"teithio/internal/models/db_models"
	"teithio/internal/models/request_models"
	"teithio/internal/repositories"
	"teithio/pkg/utils"
)

func intp(n int) *int { return &n }

func newMoodService() MoodRatingServiceInterface {
	return NewMoodRatingService(repositories.NewMoodRatingRepository(infra.NewEmptyMemStore()))
}

func TestMoodRatingLifecycle(t *testing.T) {
	t.Parallel()

	svc := newMoodService()
	ctx := context.Background()

	created, err := svc.CreateRating(ctx, request_models.CreateMoodRatingRequest{
		LocationID:   intp(1),
		LocationName: "Tresaith Beach",
		Rating:       db_models.MoodGood,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Nil(t, created.Notes)

	ratings, err := svc.ListRatings(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "Tresaith Beach", ratings[0].LocationName)
	assert.Nil(t, ratings[0].Notes)

	updated, err := svc.UpdateRating(ctx, created.ID, request_models.UpdateMoodRatingRequest{
		Notes: strp("lovely"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "lovely", *updated.Notes)
	assert.Equal(t, db_models.MoodGood, updated.Rating)

	require.NoError(t, svc.DeleteRating(ctx, created.ID))

	ratings, err = svc.ListRatings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestCreateRatingValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  request_models.CreateMoodRatingRequest
	}{
		{
			name: "unknown rating bucket",
			req:  request_models.CreateMoodRatingRequest{LocationName: "Mwnt Beach", Rating: "amazing"},
		},
		{
			name: "empty rating",
			req:  request_models.CreateMoodRatingRequest{LocationName: "Mwnt Beach"},
		},
		{
			name: "blank location name",
			req:  request_models.CreateMoodRatingRequest{LocationName: "   ", Rating: db_models.MoodOkay},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMoodService()
			_, err := svc.CreateRating(context.Background(), tt.req)
			assert.ErrorIs(t, err, utils.ErrInvalidRating)
		})
	}
}

func TestUpdateRatingRejectsUnknownBucket(t *testing.T) {
	t.Parallel()

	svc := newMoodService()
	ctx := context.Background()

	created, err := svc.CreateRating(ctx, request_models.CreateMoodRatingRequest{
		LocationName: "Cardigan Castle",
		Rating:       db_models.MoodOkay,
	})
	require.NoError(t, err)

	_, err = svc.UpdateRating(ctx, created.ID, request_models.UpdateMoodRatingRequest{
		Rating: strp("meh"),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRating)

	got, err := svc.ListRatings(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, db_models.MoodOkay, got[0].Rating)
}
