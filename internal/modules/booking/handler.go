package booking

import (
	"errors"
	"net/http"
	"strconv"

	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/pricing"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stay routes on the public group and the
// booking history on the protected one.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	rooms := public.Group("/rooms")
	{
		rooms.POST("/:id/quote", h.Quote)
		rooms.POST("/:id/intent", h.BuildIntent)
		rooms.POST("/:id/book", h.Book)
	}

	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)              // GET /api/v1/bookings?status=confirmed
		bookings.POST("/:id/cancel", h.CancelBooking) // POST /api/v1/bookings/:id/cancel
	}
}

// Quote handles POST /api/v1/rooms/:id/quote
func (h *Handler) Quote(c *gin.Context) {
	roomID, req, ok := bindStay(c)
	if !ok {
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), roomID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, quote)
}

// BuildIntent handles POST /api/v1/rooms/:id/intent
func (h *Handler) BuildIntent(c *gin.Context) {
	roomID, req, ok := bindStay(c)
	if !ok {
		return
	}

	intent, err := h.service.PrepareIntent(c.Request.Context(), roomID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"intent": toIntentResponse(intent)})
}

// Book handles POST /api/v1/rooms/:id/book
func (h *Handler) Book(c *gin.Context) {
	roomID, req, ok := bindStay(c)
	if !ok {
		return
	}

	intent, err := h.service.Book(c.Request.Context(), auth.CurrentSession(c), roomID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{"intent": toIntentResponse(intent)})
}

// ListBookings handles GET /api/v1/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.DefaultQuery("status", FilterAll))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func bindStay(c *gin.Context) (int64, StayRequest, bool) {
	var req StayRequest

	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, req, false
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return 0, req, false
	}

	return roomID, req, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	case errors.Is(err, ErrMissingDates):
		response.Error(c, http.StatusBadRequest, "MISSING_DATES", "Please select check-in and check-out dates")
	case errors.Is(err, pricing.ErrInvalidDateRange):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
	case errors.Is(err, pricing.ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be formatted as YYYY-MM-DD")
	case errors.Is(err, ErrInvalidOccupancy):
		response.Error(c, http.StatusBadRequest, "INVALID_OCCUPANCY", "At least one adult is required")
	case errors.Is(err, ErrLoginRequired):
		response.Error(c, http.StatusUnauthorized, "LOGIN_REQUIRED", "Please log in to book a room")
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrNotCancellable):
		response.Error(c, http.StatusConflict, "NOT_CANCELLABLE", "Only confirmed bookings can be cancelled")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
