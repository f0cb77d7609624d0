package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type Service struct {
	catalog *Catalog
	cache   ResultCache
}

// NewService builds the catalog service. cache may be nil.
func NewService(catalog *Catalog, cache ResultCache) *Service {
	return &Service{catalog: catalog, cache: cache}
}

// Search filters the catalog. Cached id lists are used when every id still
// resolves; otherwise the filter runs again.
func (s *Service) Search(ctx context.Context, criteria Criteria) []domain.Room {
	if s.cache == nil {
		return Filter(s.catalog.Rooms(), criteria)
	}

	key := criteria.Key()
	if ids, ok := s.cache.GetIDs(ctx, key); ok {
		if rooms, ok := s.resolve(ids); ok {
			return rooms
		}
	}

	rooms := Filter(s.catalog.Rooms(), criteria)
	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	s.cache.SetIDs(ctx, key, ids)
	return rooms
}

func (s *Service) resolve(ids []int64) ([]domain.Room, bool) {
	rooms := make([]domain.Room, 0, len(ids))
	for _, id := range ids {
		r, err := s.catalog.Get(id)
		if err != nil {
			return nil, false
		}
		rooms = append(rooms, r)
	}
	return rooms, true
}

func (s *Service) GetRoom(_ context.Context, id int64) (domain.Room, error) {
	return s.catalog.Get(id)
}

func (s *Service) Options() OptionsResponse {
	return OptionsResponse{
		Features:   FeatureOptions(),
		Facilities: FacilityOptions(),
		Price: PriceRange{
			Min:  DefaultPriceMin,
			Max:  DefaultPriceMax,
			Step: DefaultPriceStep,
		},
	}
}
