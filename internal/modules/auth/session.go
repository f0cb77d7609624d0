package auth

import "github.com/gin-gonic/gin"

const DefaultUserName = "User"

// UserData is what a successful login or registration hands to the session.
type UserData struct {
	Name string `json:"name"`
	Pic  string `json:"pic"`
}

// Session is the per-request authentication state. It is created by the
// session middleware and passed explicitly to services that need it.
type Session struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	UserName        string `json:"user_name"`
	UserPic         string `json:"user_pic"`
}

func (s *Session) Login(u UserData) {
	s.IsAuthenticated = true
	s.UserName = u.Name
	if s.UserName == "" {
		s.UserName = DefaultUserName
	}
	s.UserPic = u.Pic
}

func (s *Session) Logout() {
	s.IsAuthenticated = false
	s.UserName = ""
	s.UserPic = ""
}

const sessionKey = "session"

func SetSession(c *gin.Context, s *Session) {
	c.Set(sessionKey, s)
}

// CurrentSession never returns nil; requests without a session get a
// logged-out one.
func CurrentSession(c *gin.Context) *Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*Session); ok && s != nil {
			return s
		}
	}
	return &Session{}
}
