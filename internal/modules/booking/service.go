package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/pricing"
	"hotelbooking/internal/repository"

	"github.com/sirupsen/logrus"
)

// FilterAll lists bookings of every status.
const FilterAll = "all"

type Service struct {
	rooms     RoomFinder
	bookings  BookingRepository
	publisher CheckoutPublisher
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewService(rooms RoomFinder, bookings BookingRepository, publisher CheckoutPublisher, log logrus.FieldLogger) *Service {
	return &Service{
		rooms:     rooms,
		bookings:  bookings,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

// Quote prices a stay without building an intent.
func (s *Service) Quote(_ context.Context, roomID int64, req StayRequest) (*QuoteResponse, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := parseDates(req)
	if err != nil {
		return nil, err
	}
	if checkIn == nil || checkOut == nil {
		return nil, ErrMissingDates
	}

	stay, err := pricing.ComputeStay(room.Price, *checkIn, *checkOut)
	if err != nil {
		return nil, err
	}

	return &QuoteResponse{
		RoomID:       room.ID,
		NightlyPrice: room.Price,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		TotalNights:  stay.Nights,
		TotalPrice:   stay.Total,
	}, nil
}

// PrepareIntent runs the room detail flow for one request.
func (s *Service) PrepareIntent(_ context.Context, roomID int64, req StayRequest) (*Intent, error) {
	room, err := s.rooms.Get(roomID)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut, err := parseDates(req)
	if err != nil {
		return nil, err
	}

	flow := NewFlow(room)
	_ = flow.SetCheckIn(checkIn)
	_ = flow.SetCheckOut(checkOut)
	_ = flow.SetGuests(req.adults(), req.Children)
	return flow.Submit()
}

// Book checks the session before anything else, then builds the intent and
// hands it to checkout.
func (s *Service) Book(ctx context.Context, session *auth.Session, roomID int64, req StayRequest) (*Intent, error) {
	if session == nil || !session.IsAuthenticated {
		return nil, ErrLoginRequired
	}

	intent, err := s.PrepareIntent(ctx, roomID, req)
	if err != nil {
		return nil, err
	}

	if err := s.Checkout(ctx, session, intent); err != nil {
		return nil, err
	}
	return intent, nil
}

func (s *Service) Checkout(ctx context.Context, session *auth.Session, intent *Intent) error {
	if session == nil || !session.IsAuthenticated {
		return ErrLoginRequired
	}

	msg := CheckoutMessage{
		IntentResponse: toIntentResponse(intent),
		UserName:       session.UserName,
		RequestedAt:    s.now().UTC(),
	}
	if err := s.publisher.PublishCheckout(ctx, msg); err != nil {
		return fmt.Errorf("checkout handoff: %w", err)
	}
	return nil
}

// ListBookings returns every booking for "all" or an empty filter, otherwise
// the bookings whose status matches case-insensitively. An unknown status
// matches nothing.
func (s *Service) ListBookings(ctx context.Context, filter string) ([]domain.Booking, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return s.bookings.List(ctx, nil)
	}

	status, ok := domain.ParseBookingStatus(filter)
	if !ok {
		return []domain.Booking{}, nil
	}
	return s.bookings.List(ctx, &status)
}

// CancelBooking moves a confirmed booking to cancelled and refunds it.
func (s *Service) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.Status != domain.BookingConfirmed {
		return nil, ErrNotCancellable
	}

	ok, err := s.bookings.CancelConfirmed(ctx, id)
	if err != nil {
		return nil, err
	}
	// lost a race with another cancel
	if !ok {
		return nil, ErrNotCancellable
	}

	s.log.WithField("booking_id", id).Info("booking cancelled")

	b.Status = domain.BookingCancelled
	b.PaymentStatus = domain.PaymentRefunded
	return b, nil
}

func parseDates(req StayRequest) (*time.Time, *time.Time, error) {
	checkIn, err := pricing.ParseOptionalDate(req.CheckIn)
	if err != nil {
		return nil, nil, err
	}
	checkOut, err := pricing.ParseOptionalDate(req.CheckOut)
	if err != nil {
		return nil, nil, err
	}
	return checkIn, checkOut, nil
}
