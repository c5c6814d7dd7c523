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
)

func strp(s string) *string { return &s }

func newProgressFixture(t *testing.T, milestones []db_models.TravelProgress) (ProgressServiceInterface, repositories.ProgressRepository) {
	t.Helper()
	repo := repositories.NewProgressRepository(infra.NewEmptyMemStore())
	for _, m := range milestones {
		_, err := repo.Create(context.Background(), m)
		require.NoError(t, err)
	}
	return NewProgressService(repo), repo
}

func TestSummaryEmptyList(t *testing.T) {
	t.Parallel()

	svc, _ := newProgressFixture(t, nil)
	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0, summary.Completed)
	assert.Equal(t, 0, summary.Percent)
	assert.Empty(t, summary.Categories)
}

func TestSummaryRounding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		total       int
		completed   int
		wantPercent int
	}{
		{name: "one of three", total: 3, completed: 1, wantPercent: 33},
		{name: "two of three", total: 3, completed: 2, wantPercent: 67},
		{name: "half", total: 12, completed: 6, wantPercent: 50},
		{name: "all done", total: 5, completed: 5, wantPercent: 100},
		{name: "none done", total: 5, completed: 0, wantPercent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			milestones := make([]db_models.TravelProgress, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				flag := "false"
				if i < tt.completed {
					flag = "true"
				}
				milestones = append(milestones, db_models.TravelProgress{
					MilestoneID: "m",
					IsCompleted: strp(flag),
					Category:    db_models.ProgressCategoryActivities,
				})
			}
			svc, _ := newProgressFixture(t, milestones)

			summary, err := svc.Summary(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPercent, summary.Percent)
			assert.Equal(t, tt.completed, summary.Completed)
			assert.Equal(t, tt.total, summary.Total)
		})
	}
}

func TestSummaryPerCategoryPairs(t *testing.T) {
	t.Parallel()

	svc, _ := newProgressFixture(t, []db_models.TravelProgress{
		{MilestoneID: "booking", IsCompleted: strp("true"), Category: db_models.ProgressCategoryPlanning},
		{MilestoneID: "packing", IsCompleted: strp("false"), Category: db_models.ProgressCategoryPlanning},
		{MilestoneID: "seafood", IsCompleted: strp("false"), Category: db_models.ProgressCategoryDining},
	})

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	planning := summary.Categories[db_models.ProgressCategoryPlanning]
	assert.Equal(t, 1, planning.Completed)
	assert.Equal(t, 2, planning.Total)

	dining := summary.Categories[db_models.ProgressCategoryDining]
	assert.Equal(t, 0, dining.Completed)
	assert.Equal(t, 1, dining.Total)
}

func TestToggleMilestoneIncrementsSummary(t *testing.T) {
	t.Parallel()

	svc, _ := newProgressFixture(t, []db_models.TravelProgress{
		{MilestoneID: "travel", IsCompleted: strp("false"), Category: db_models.ProgressCategoryTravel},
		{MilestoneID: "checkin", IsCompleted: strp("false"), Category: db_models.ProgressCategoryTravel},
	})
	ctx := context.Background()

	before, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, before.Completed)

	_, err = svc.UpdateMilestone(ctx, 1, request_models.UpdateProgressRequest{
		IsCompleted: strp("true"),
		CompletedAt: strp("2024-07-11T12:00:00Z"),
	})
	require.NoError(t, err)

	after, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Completed+1, after.Completed)
	assert.Equal(t, 50, after.Percent)
}
