package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSession_LoginLogout(t *testing.T) {
	var s Session

	s.Login(UserData{Name: "Asha", Pic: "https://example.com/a.png"})
	assert.Equal(t, Session{IsAuthenticated: true, UserName: "Asha", UserPic: "https://example.com/a.png"}, s)

	s.Logout()
	assert.Equal(t, Session{}, s)
}

func TestSession_LoginDefaultsName(t *testing.T) {
	var s Session
	s.Login(UserData{})

	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, DefaultUserName, s.UserName)
	assert.Empty(t, s.UserPic)
}

func TestCurrentSession_MissingIsLoggedOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	s := CurrentSession(c)
	assert.NotNil(t, s)
	assert.False(t, s.IsAuthenticated)

	SetSession(c, &Session{IsAuthenticated: true, UserName: "Asha"})
	assert.Equal(t, "Asha", CurrentSession(c).UserName)
}
