package middleware

import (
	"net/http"
	"strings"

	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenValidator resolves a bearer token into its claims.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// SessionAuth attaches a session to every request. Requests without an
// Authorization header get a logged-out session; a malformed or invalid
// token is rejected.
func SessionAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := &auth.Session{}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			auth.SetSession(c, session)
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		session.Login(auth.UserData{Name: claims.Name, Pic: claims.Pic})
		auth.SetSession(c, session)
		c.Set("user_name", session.UserName)
		c.Next()
	}
}

// RequireSession rejects requests whose session is not authenticated.
// It must run after SessionAuth.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !auth.CurrentSession(c).IsAuthenticated {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}
