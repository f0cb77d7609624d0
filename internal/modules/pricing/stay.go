package pricing

import (
	"errors"
	"math"
	"time"

	"hotelbooking/internal/domain"
)

var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrInvalidPrice     = errors.New("nightly price must not be negative")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
)

// Day is the fixed night length. Stays spanning a DST change are off by an hour
// before rounding, which rounding absorbs.
const Day = 24 * time.Hour

type Stay struct {
	Nights int `json:"nights"`
	Total  int `json:"total"`
}

// ComputeStay returns the number of nights between the two dates and the flat
// total for the given nightly rate. No taxes or discounts are applied.
func ComputeStay(nightlyPrice int, checkIn, checkOut time.Time) (Stay, error) {
	if nightlyPrice < 0 {
		return Stay{}, ErrInvalidPrice
	}
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidDateRange
	}

	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return Stay{}, ErrInvalidDateRange
	}

	return Stay{
		Nights: nights,
		Total:  nightlyPrice * nights,
	}, nil
}

// Nights rounds the difference to the nearest whole day.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Round(float64(checkOut.Sub(checkIn)) / float64(Day)))
}

// ParseDate parses a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
