package catalog

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the public catalog routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rooms := r.Group("/rooms")
	{
		rooms.GET("", h.GetRooms)           // GET /api/v1/rooms?q=...&features=...
		rooms.GET("/options", h.GetOptions) // GET /api/v1/rooms/options
		rooms.GET("/:id", h.GetRoomByID)    // GET /api/v1/rooms/:id
	}
}

// GetRooms handles GET /api/v1/rooms with filters.
// Unparseable numbers are ignored rather than rejected.
func (h *Handler) GetRooms(c *gin.Context) {
	var req CriteriaRequest

	req.Query = c.Query("q")
	req.Features = labelsParam(c, "features")
	req.Facilities = labelsParam(c, "facilities")

	if v, ok := intParam(c, "min_price"); ok {
		req.MinPrice = v
	}
	if v, ok := intParam(c, "max_price"); ok {
		req.MaxPrice = &v
	}
	if v, ok := intParam(c, "adults"); ok {
		req.Adults = v
	}
	if v, ok := intParam(c, "children"); ok {
		req.Children = v
	}

	rooms := h.service.Search(c.Request.Context(), req.Criteria())

	response.Success(c, http.StatusOK, gin.H{
		"rooms": toRoomCards(rooms),
		"count": len(rooms),
	})
}

// GetOptions handles GET /api/v1/rooms/options
func (h *Handler) GetOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Options())
}

// GetRoomByID handles GET /api/v1/rooms/:id
func (h *Handler) GetRoomByID(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

// labelsParam accepts both repeated parameters and comma separated values.
func labelsParam(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, label := range strings.Split(raw, ",") {
			if label = strings.TrimSpace(label); label != "" {
				out = append(out, label)
			}
		}
	}
	return out
}

func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
