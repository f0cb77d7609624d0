package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/database"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/catalog"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	hook   *test.Hook
}

type TestResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   *ErrorDetail   `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, hook := test.NewNullLogger()

	db, err := database.Connect("file:"+t.Name()+"?mode=memory&cache=shared", log)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	ctx := context.Background()
	require.NoError(t, database.Seed(ctx, db, catalog.SampleRooms(), booking.SampleBookings(time.Now())))

	rooms, err := catalog.Load(ctx, repository.NewRoomRepository(db))
	require.NoError(t, err)

	r := NewRouter(Deps{
		DB:        db,
		Catalog:   rooms,
		Publisher: booking.NewLogPublisher(log),
		JWT:       jwtsvc.New("test_secret_key_32_characters_min", time.Hour),
		Log:       log,
	})

	return &E2ETestSuite{router: r, hook: hook}
}

func (s *E2ETestSuite) makeRequest(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, *TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Logf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
		}
	}
	return w, &resp
}

func (s *E2ETestSuite) register(t *testing.T) string {
	t.Helper()

	w, resp := s.makeRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     "Asha Rao",
		"email":    "asha@example.com",
		"phonenum": "+91 98765 43210",
		"address":  "12 Lake Road",
		"pincode":  "560001",
		"dob":      "1994-06-12",
		"pass":     "secret",
		"cpass":    "secret",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	suite := setupTestSuite(t)

	w, _ := suite.makeRequest(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rooms":6`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// =============================================================================
// Flow 1: guest browses and filters the catalog
// =============================================================================

func TestFlow1_GuestBrowsesCatalog(t *testing.T) {
	suite := setupTestSuite(t)

	t.Run("GET /rooms lists every room", func(t *testing.T) {
		w, resp := suite.makeRequest(t, http.MethodGet, "/api/v1/rooms", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 6, resp.Data["count"])
	})

	t.Run("GET /rooms filters by feature and price", func(t *testing.T) {
		w, resp := suite.makeRequest(t, http.MethodGet, "/api/v1/rooms?features=King%20Bed&max_price=4000", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, resp.Data["count"])
		assert.Contains(t, w.Body.String(), "Executive Room")
		assert.NotContains(t, w.Body.String(), "Honeymoon Suite")
	})

	t.Run("GET /rooms/:id returns reviews", func(t *testing.T) {
		w, _ := suite.makeRequest(t, http.MethodGet, "/api/v1/rooms/3", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Family Suite")
		assert.Contains(t, w.Body.String(), "David")
	})

	t.Run("guest cannot book", func(t *testing.T) {
		w, resp := suite.makeRequest(t, http.MethodPost, "/api/v1/rooms/2/book", map[string]any{
			"check_in": "2023-09-05", "check_out": "2023-09-07",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "LOGIN_REQUIRED", resp.Error.Code)
	})

	t.Run("guest cannot see bookings", func(t *testing.T) {
		w, _ := suite.makeRequest(t, http.MethodGet, "/api/v1/bookings", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: registered user books, reviews history and cancels
// =============================================================================

func TestFlow2_RegisterBookAndCancel(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.register(t)

	t.Run("GET /auth/me", func(t *testing.T) {
		w, _ := suite.makeRequest(t, http.MethodGet, "/api/v1/auth/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_authenticated":true`)
		assert.Contains(t, w.Body.String(), `"user_name":"Asha Rao"`)
	})

	t.Run("POST /rooms/:id/quote", func(t *testing.T) {
		w, resp := suite.makeRequest(t, http.MethodPost, "/api/v1/rooms/1/quote", map[string]any{
			"check_in": "2023-08-15", "check_out": "2023-08-18",
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 7497, resp.Data["total_price"])
	})

	t.Run("POST /rooms/:id/book hands off checkout", func(t *testing.T) {
		w, _ := suite.makeRequest(t, http.MethodPost, "/api/v1/rooms/2/book", map[string]any{
			"check_in": "2023-09-05", "check_out": "2023-09-07", "adults": 2,
		}, token)
		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"total_price":6998`)

		var handedOff bool
		for _, e := range suite.hook.AllEntries() {
			if e.Message == "checkout handed off" && e.Data["user"] == "Asha Rao" {
				handedOff = true
			}
		}
		assert.True(t, handedOff)
	})

	t.Run("GET /bookings?status=confirmed", func(t *testing.T) {
		w, resp := suite.makeRequest(t, http.MethodGet, "/api/v1/bookings?status=confirmed", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, resp.Data["count"])
	})

	t.Run("POST /bookings/:id/cancel", func(t *testing.T) {
		w, _ := suite.makeRequest(t, http.MethodPost, "/api/v1/bookings/3/cancel", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w, resp := suite.makeRequest(t, http.MethodGet, "/api/v1/bookings?status=cancelled", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 2, resp.Data["count"])
	})
}

// =============================================================================
// Flow 3: profile management
// =============================================================================

func TestFlow3_Profile(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.register(t)

	w, _ := suite.makeRequest(t, http.MethodGet, "/api/v1/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Asha Rao"`)

	w, _ = suite.makeRequest(t, http.MethodPut, "/api/v1/profile", map[string]any{
		"name": "Asha R", "email": "asha@example.com",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = suite.makeRequest(t, http.MethodGet, "/api/v1/profile", nil, token)
	assert.Contains(t, w.Body.String(), `"name":"Asha R"`)

	w, resp := suite.makeRequest(t, http.MethodPut, "/api/v1/profile/password", map[string]any{
		"current": "x", "new": "a", "confirm": "b",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PASSWORD_MISMATCH", resp.Error.Code)
}
