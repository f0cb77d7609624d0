package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomFinder looks rooms up in the loaded catalog.
type RoomFinder interface {
	Get(id int64) (domain.Room, error)
}

// BookingRepository defines the booking store operations the service uses.
// status nil lists every booking.
type BookingRepository interface {
	List(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CancelConfirmed(ctx context.Context, id int64) (bool, error)
}

// CheckoutPublisher hands a built intent to the checkout collaborator.
type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, msg CheckoutMessage) error
}
