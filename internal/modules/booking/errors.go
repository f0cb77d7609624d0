package booking

import "errors"

var (
	ErrMissingDates     = errors.New("check-in and check-out dates are required")
	ErrInvalidOccupancy = errors.New("at least one adult is required and children cannot be negative")
	ErrLoginRequired    = errors.New("login required")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotCancellable   = errors.New("only confirmed bookings can be cancelled")
	ErrFlowClosed       = errors.New("intent already built")
)
