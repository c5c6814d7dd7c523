package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teithio/internal/models/db_models"
)

func TestCollectionAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	c := NewCollection[db_models.Location]()
	first := c.Insert(func(id int) db_models.Location {
		return db_models.Location{ID: id, Name: "Tresaith Beach"}
	})
	second := c.Insert(func(id int) db_models.Location {
		return db_models.Location{ID: id, Name: "Mwnt Beach"}
	})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCollectionNeverReusesIDs(t *testing.T) {
	t.Parallel()

	c := NewCollection[db_models.Location]()
	row := c.Insert(func(id int) db_models.Location {
		return db_models.Location{ID: id}
	})
	c.Delete(row.ID)

	next := c.Insert(func(id int) db_models.Location {
		return db_models.Location{ID: id}
	})
	assert.Equal(t, 2, next.ID)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionDeleteIdempotent(t *testing.T) {
	t.Parallel()

	c := NewCollection[db_models.Location]()
	row := c.Insert(func(id int) db_models.Location {
		return db_models.Location{ID: id}
	})

	c.Delete(row.ID)
	c.Delete(row.ID)
	c.Delete(99)
	assert.Equal(t, 0, c.Len())
}

func TestCollectionListPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	c := NewCollection[db_models.Location]()
	names := []string{"Cardigan Town", "Aberystwyth", "New Quay"}
	for _, name := range names {
		name := name
		c.Insert(func(id int) db_models.Location {
			return db_models.Location{ID: id, Name: name}
		})
	}

	rows := c.List()
	require.Len(t, rows, 3)
	for i, name := range names {
		assert.Equal(t, name, rows[i].Name)
	}
}

func TestCollectionUpdateMissingRow(t *testing.T) {
	t.Parallel()

	c := NewCollection[db_models.Location]()
	_, ok := c.Update(42, func(l db_models.Location) db_models.Location { return l })
	assert.False(t, ok)
}

func TestNewMemStoreSeedsDataset(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	assert.Equal(t, 8, s.Itinerary.Len())
	assert.Equal(t, 13, s.Locations.Len())
	assert.Equal(t, 13, s.Restaurants.Len())
	assert.Equal(t, 12, s.Progress.Len())
	assert.Equal(t, 0, s.MoodRatings.Len())
}

func TestSeedMilestoneStates(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	milestones := s.Progress.List()

	completed := 0
	for _, m := range milestones {
		if m.Completed() {
			completed++
		}
	}
	// Only the accommodation booking starts completed.
	assert.Equal(t, 1, completed)

	first, ok := s.Progress.Get(1)
	require.True(t, ok)
	assert.Equal(t, "booking", first.MilestoneID)
	require.NotNil(t, first.CompletedAt)
	assert.Equal(t, "2024-07-01T10:00:00Z", *first.CompletedAt)
}
