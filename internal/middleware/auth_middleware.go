package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-outpass/internal/auth/errors"
	"go-outpass/internal/session"
	"go-outpass/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const SessionContextKey = "session_state"

// AuthMiddleware validates the bearer token and resolves the live session.
// A valid token whose session was destroyed (logout, restart) is rejected:
// the session holds the lifecycle store, so without it there is no state to
// act on.
func AuthMiddleware(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Session ID not found in token", nil)
			c.Abort()
			return
		}

		studentID, ok := claims["student_id"].(string)
		if !ok || studentID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Student ID not found in token", nil)
			c.Abort()
			return
		}

		st, ok := sessions.Get(sessionID)
		if !ok {
			errObj := autherrors.ErrSessionExpired
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Set("student_id", studentID)
		c.Set(SessionContextKey, st)

		c.Next()
	}
}

// SessionFromContext returns the session state installed by AuthMiddleware.
func SessionFromContext(c *gin.Context) (*session.State, bool) {
	v, ok := c.Get(SessionContextKey)
	if !ok {
		return nil, false
	}
	st, ok := v.(*session.State)
	return st, ok
}
