package infra

import (
	"sync"

	"teithio/internal/models/db_models"
)

// Collection is an in-memory table: rows keyed by an int identifier assigned
// from a monotonic counter starting at 1. Identifiers are never reused, even
// after a delete. Each collection carries its own lock so overlapping browser
// requests stay safe; there is no cross-collection coordination because no
// operation ever touches more than one collection.
type Collection[E any] struct {
	mu     sync.RWMutex
	rows   map[int]E
	order  []int
	nextID int
}

// NewCollection returns an empty collection with its counter at 1.
func NewCollection[E any]() *Collection[E] {
	return &Collection[E]{
		rows:   make(map[int]E),
		nextID: 1,
	}
}

// List returns a snapshot of all rows in insertion order.
func (c *Collection[E]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]E, 0, len(c.rows))
	for _, id := range c.order {
		if row, ok := c.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out
}

// Get returns the row stored under id.
func (c *Collection[E]) Get(id int) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	row, ok := c.rows[id]
	return row, ok
}

// Insert assigns the next identifier, builds the row with it and stores it.
func (c *Collection[E]) Insert(build func(id int) E) E {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	row := build(id)
	c.rows[id] = row
	c.order = append(c.order, id)
	return row
}

// Update replaces the row under id with merge(current). The second return is
// false when no row exists; the merge function is not called in that case.
func (c *Collection[E]) Update(id int, merge func(current E) E) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.rows[id]
	if !ok {
		var zero E
		return zero, false
	}
	updated := merge(current)
	c.rows[id] = updated
	return updated, true
}

// Delete removes the row under id. Deleting an absent id is a no-op, and the
// identifier is never handed out again.
func (c *Collection[E]) Delete(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.rows[id]; !ok {
		return
	}
	delete(c.rows, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Len returns the current row count.
func (c *Collection[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rows)
}

// MemStore holds the authoritative in-memory state for all five entity types.
// It is constructed once at startup, pre-populated with the fixed holiday
// dataset, and handed to the repository layer; all mutable state vanishes on
// process restart by design.
type MemStore struct {
	Itinerary   *Collection[db_models.ItineraryDay]
	Locations   *Collection[db_models.Location]
	Restaurants *Collection[db_models.Restaurant]
	Progress    *Collection[db_models.TravelProgress]
	MoodRatings *Collection[db_models.LocationMoodRating]
}

// NewMemStore returns a store seeded with the holiday dataset.
func NewMemStore() *MemStore {
	s := &MemStore{
		Itinerary:   NewCollection[db_models.ItineraryDay](),
		Locations:   NewCollection[db_models.Location](),
		Restaurants: NewCollection[db_models.Restaurant](),
		Progress:    NewCollection[db_models.TravelProgress](),
		MoodRatings: NewCollection[db_models.LocationMoodRating](),
	}
	s.seed()
	return s
}

// NewEmptyMemStore returns a store without seed data. Used by tests that need
// full control over collection contents.
func NewEmptyMemStore() *MemStore {
	return &MemStore{
		Itinerary:   NewCollection[db_models.ItineraryDay](),
		Locations:   NewCollection[db_models.Location](),
		Restaurants: NewCollection[db_models.Restaurant](),
		Progress:    NewCollection[db_models.TravelProgress](),
		MoodRatings: NewCollection[db_models.LocationMoodRating](),
	}
}
