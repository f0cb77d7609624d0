package profile

import (
	"errors"
	"net/http"

	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group that already requires a session.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	p := protected.Group("/profile")
	{
		p.GET("", h.GetProfile)
		p.PUT("", h.UpdateProfile)
		p.PUT("/password", h.ChangePassword)
	}
}

// GetProfile handles GET /api/v1/profile
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context(), auth.CurrentSession(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

// UpdateProfile handles PUT /api/v1/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body")
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), auth.CurrentSession(c), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

// ChangePassword handles PUT /api/v1/profile/password
func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), auth.CurrentSession(c), req); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}

func handleError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data", verr.Fields)
	case errors.Is(err, ErrPasswordMismatch):
		response.Error(c, http.StatusBadRequest, "PASSWORD_MISMATCH", "New password and confirm password do not match")
	case errors.Is(err, ErrIncorrectPassword):
		response.Error(c, http.StatusBadRequest, "INCORRECT_PASSWORD", "Current password is incorrect")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
