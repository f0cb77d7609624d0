package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns bookings ordered by id. A nil status lists all of them.
func (r *BookingRepository) List(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	bookings := []domain.Booking{}

	q := r.db.WithContext(ctx).Order("id")
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	err := q.Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &b, nil
}

// CancelConfirmed cancels and refunds the booking only if it is still
// confirmed. It reports whether a row changed.
func (r *BookingRepository) CancelConfirmed(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, domain.BookingConfirmed).
		Updates(map[string]any{
			"status":         domain.BookingCancelled,
			"payment_status": domain.PaymentRefunded,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
