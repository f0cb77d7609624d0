package catalog

import (
	"strings"

	"hotelbooking/internal/domain"
)

// Filter returns the rooms matching every predicate of the criteria, in
// catalog order. The input slice is not modified.
func Filter(rooms []domain.Room, criteria Criteria) []domain.Room {
	c := criteria.Normalize()
	query := strings.ToLower(c.Query)

	out := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !matchesQuery(room, query) {
			continue
		}
		if !containsAll(room.Features, c.RequiredFeatures) {
			continue
		}
		if !containsAll(room.Facilities, c.RequiredFacilities) {
			continue
		}
		if room.Price < c.PriceMin {
			continue
		}
		if c.PriceMax != nil && room.Price > *c.PriceMax {
			continue
		}
		if c.MinAdults > 0 && room.Adult < c.MinAdults {
			continue
		}
		if c.MinChildren > 0 && room.Children < c.MinChildren {
			continue
		}
		out = append(out, room)
	}
	return out
}

// query is already lower-cased
func matchesQuery(room domain.Room, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(room.Name), query) {
		return true
	}
	for _, label := range room.Features {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}
	for _, label := range room.Facilities {
		if strings.Contains(strings.ToLower(label), query) {
			return true
		}
	}
	return false
}

func containsAll(labels, required []string) bool {
	for _, want := range required {
		found := false
		for _, have := range labels {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
