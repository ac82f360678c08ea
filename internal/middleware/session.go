package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"genaizone/internal/config"
	"genaizone/internal/domain"
)

const ContextKeySessionID = "session_id"

// Session ties each browser to a session id carried in a cookie. A missing or
// malformed cookie starts a new session. The cookie is re-issued on every
// request so the expiry slides with activity.
func Session(cfg *config.SessionConfig, basePath string) gin.HandlerFunc {
	cookiePath := basePath
	if cookiePath == "" {
		cookiePath = "/"
	}
	maxAge := int(cfg.TTL / time.Second)

	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(cfg.CookieName); err == nil {
			if id, parseErr := uuid.Parse(raw); parseErr == nil {
				sid = id.String()
			}
		}
		if sid == "" {
			sid = uuid.New().String()
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, sid, maxAge, cookiePath, "", c.Request.TLS != nil, true)
		c.Set(ContextKeySessionID, sid)
		c.Next()
	}
}

// GetSessionID extracts the session ID from the Gin context.
func GetSessionID(c *gin.Context) (string, error) {
	val, exists := c.Get(ContextKeySessionID)
	if !exists {
		return "", domain.ErrMissingSession
	}
	sid, ok := val.(string)
	if !ok || sid == "" {
		return "", domain.ErrMissingSession
	}
	return sid, nil
}
