package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomSource supplies the rooms the catalog is built from.
type RoomSource interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// ResultCache stores filter results as ordered room ids keyed by Criteria.Key.
type ResultCache interface {
	GetIDs(ctx context.Context, key string) ([]int64, bool)
	SetIDs(ctx context.Context, key string, ids []int64)
}
