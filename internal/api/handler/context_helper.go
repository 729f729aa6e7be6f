package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dwahderian-ui/uniform/pkg/response"
)

// MustGetUsername extracts the authenticated username from the Gin context.
// Writes a 401 and returns false if the auth middleware did not run.
func MustGetUsername(c *gin.Context) (string, bool) {
	v, exists := c.Get("username")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetTokenID extracts the JWT ID and expiry of the presented token.
func MustGetTokenID(c *gin.Context) (string, time.Time, bool) {
	jti, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	expiresAt, exists := c.Get("token_expires_at")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	id, ok1 := jti.(string)
	exp, ok2 := expiresAt.(time.Time)
	if !ok1 || !ok2 || id == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", time.Time{}, false
	}
	return id, exp, true
}
