package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
	BookingCompleted BookingStatus = "Completed"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPending  PaymentStatus = "Pending"
	PaymentRefunded PaymentStatus = "Refunded"
)

// ParseBookingStatus matches a status case-insensitively.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range []BookingStatus{BookingConfirmed, BookingCancelled, BookingCompleted} {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	RoomID        int64         `json:"room_id" gorm:"index"`
	RoomName      string        `json:"room_name"`
	CheckIn       string        `json:"check_in" gorm:"type:varchar(10)"`
	CheckOut      string        `json:"check_out" gorm:"type:varchar(10)"`
	Adult         int           `json:"adult"`
	Children      int           `json:"children"`
	Amount        int           `json:"amount"`
	BookingDate   string        `json:"booking_date" gorm:"type:varchar(10)"`
	Status        BookingStatus `json:"status" gorm:"type:varchar(16);index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(16)"`
	CreatedAt     time.Time     `json:"-"`
	UpdatedAt     time.Time     `json:"-"`
}
