package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 16 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // origins are enforced by the CORS middleware
}

// LiveEvent is pushed back for every criteria message.
type LiveEvent struct {
	Type  string     `json:"type"`
	Count int        `json:"count"`
	Rooms []RoomCard `json:"rooms"`
	Error *LiveError `json:"error,omitempty"`
}

type LiveError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	EventRooms = "rooms"
	EventError = "error"
)

// LiveHandler re-runs the filter for every criteria document a client sends.
type LiveHandler struct {
	service *Service
	log     logrus.FieldLogger
}

func NewLiveHandler(service *Service, log logrus.FieldLogger) *LiveHandler {
	return &LiveHandler{service: service, log: log}
}

func (h *LiveHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ws/rooms", h.HandleWebSocket)
}

// HandleWebSocket handles GET /api/v1/ws/rooms
func (h *LiveHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go pingLoop(conn, done)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithError(err).Warn("live filter connection closed")
			}
			return
		}

		var req CriteriaRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			if !h.write(conn, LiveEvent{Type: EventError, Error: &LiveError{Code: "INVALID_JSON", Message: "Failed to parse criteria"}}) {
				return
			}
			continue
		}

		rooms := h.service.Search(c.Request.Context(), req.Criteria())
		if !h.write(conn, LiveEvent{Type: EventRooms, Count: len(rooms), Rooms: toRoomCards(rooms)}) {
			return
		}
	}
}

func (h *LiveHandler) write(conn *websocket.Conn, ev LiveEvent) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(ev); err != nil {
		h.log.WithError(err).Debug("live filter write failed")
		return false
	}
	return true
}

// WriteControl may run concurrently with the reader's writes.
func pingLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
