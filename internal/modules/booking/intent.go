package booking

import (
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/pricing"

	"github.com/google/uuid"
)

// Intent is a validated booking request, ready to be handed to checkout.
type Intent struct {
	Reference    string
	RoomID       int64
	RoomName     string
	RoomImage    string
	NightlyPrice int
	CheckIn      time.Time
	CheckOut     time.Time
	Adults       int
	Children     int
	TotalNights  int
	TotalPrice   int
}

// BuildIntent validates the selection against the room and prices the stay.
// Occupancy above the room's capacity is accepted.
func BuildIntent(room domain.Room, checkIn, checkOut *time.Time, adults, children int) (*Intent, error) {
	if checkIn == nil || checkOut == nil {
		return nil, ErrMissingDates
	}

	stay, err := pricing.ComputeStay(room.Price, *checkIn, *checkOut)
	if err != nil {
		return nil, err
	}

	if adults < 1 || children < 0 {
		return nil, ErrInvalidOccupancy
	}

	return &Intent{
		Reference:    uuid.NewString(),
		RoomID:       room.ID,
		RoomName:     room.Name,
		RoomImage:    room.Thumbnail(),
		NightlyPrice: room.Price,
		CheckIn:      *checkIn,
		CheckOut:     *checkOut,
		Adults:       adults,
		Children:     children,
		TotalNights:  stay.Nights,
		TotalPrice:   stay.Total,
	}, nil
}
