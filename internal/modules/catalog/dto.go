package catalog

import "hotelbooking/internal/domain"

// CriteriaRequest is the wire form of Criteria, shared by the query-string
// handler and the live channel.
type CriteriaRequest struct {
	Query      string   `json:"q"`
	Features   []string `json:"features"`
	Facilities []string `json:"facilities"`
	MinPrice   int      `json:"min_price"`
	MaxPrice   *int     `json:"max_price"`
	Adults     int      `json:"adults"`
	Children   int      `json:"children"`
}

func (r CriteriaRequest) Criteria() Criteria {
	return Criteria{
		Query:              r.Query,
		RequiredFeatures:   r.Features,
		RequiredFacilities: r.Facilities,
		PriceMin:           r.MinPrice,
		PriceMax:           r.MaxPrice,
		MinAdults:          r.Adults,
		MinChildren:        r.Children,
	}
}

// RoomCard is the list view of a room.
type RoomCard struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Price      int      `json:"price"`
	Features   []string `json:"features"`
	Facilities []string `json:"facilities"`
	Adult      int      `json:"adult"`
	Children   int      `json:"children"`
	Rating     int      `json:"rating"`
	Image      string   `json:"image,omitempty"`
}

func toRoomCards(rooms []domain.Room) []RoomCard {
	cards := make([]RoomCard, 0, len(rooms))
	for _, r := range rooms {
		cards = append(cards, RoomCard{
			ID:         r.ID,
			Name:       r.Name,
			Price:      r.Price,
			Features:   r.Features,
			Facilities: r.Facilities,
			Adult:      r.Adult,
			Children:   r.Children,
			Rating:     r.Rating,
			Image:      r.Thumbnail(),
		})
	}
	return cards
}

type PriceRange struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

type OptionsResponse struct {
	Features   []string   `json:"features"`
	Facilities []string   `json:"facilities"`
	Price      PriceRange `json:"price"`
}
