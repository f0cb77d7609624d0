package catalog

import (
	"context"
	"fmt"
	"slices"

	"hotelbooking/internal/domain"
)

// Catalog is the immutable, ordered room list. It is safe to share between
// goroutines once built.
type Catalog struct {
	rooms []domain.Room
	index map[int64]int
}

func New(rooms []domain.Room) *Catalog {
	c := &Catalog{
		rooms: make([]domain.Room, len(rooms)),
		index: make(map[int64]int, len(rooms)),
	}
	for i, r := range rooms {
		c.rooms[i] = cloneRoom(r)
		c.index[r.ID] = i
	}
	return c
}

// Load reads every room from src once. The result is never refreshed.
func Load(ctx context.Context, src RoomSource) (*Catalog, error) {
	rooms, err := src.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(rooms), nil
}

// Rooms returns a deep copy of the room list in catalog order.
func (c *Catalog) Rooms() []domain.Room {
	out := make([]domain.Room, len(c.rooms))
	for i, r := range c.rooms {
		out[i] = cloneRoom(r)
	}
	return out
}

// Get returns a deep copy of the room.
func (c *Catalog) Get(id int64) (domain.Room, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.Room{}, ErrRoomNotFound
	}
	return cloneRoom(c.rooms[i]), nil
}

func cloneRoom(r domain.Room) domain.Room {
	r.Features = slices.Clone(r.Features)
	r.Facilities = slices.Clone(r.Facilities)
	r.Images = slices.Clone(r.Images)
	r.Reviews = slices.Clone(r.Reviews)
	return r
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}
