package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/session"
)

const (
	SessionHeader = "X-Session-Token"
	sessionIDKey  = "sessionId"
)

// Session resolves the caller's storefront session from the token header.
// A missing, invalid or expired token starts a fresh session whose token
// is returned in the same header.
func Session(manager *session.Manager, tokens *session.Tokens, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, manager, tokens)
		if err != nil {
			logger.WithError(err).Error("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
			return
		}
		if id != "" {
			c.Set(sessionIDKey, id)
			c.Next()
			return
		}

		if !StartSession(c, manager, tokens, logger) {
			return
		}
		c.Next()
	}
}

// ExistingSession is like Session but never starts one: without a live
// session the request is rejected with 401.
func ExistingSession(manager *session.Manager, tokens *session.Tokens, logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, manager, tokens)
		if err != nil {
			logger.WithError(err).Error("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
			return
		}
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "No active session"))
			return
		}
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// resolve returns the id of the live session named by the token header,
// or "" when there is none.
func resolve(c *gin.Context, manager *session.Manager, tokens *session.Tokens) (string, error) {
	tokenStr := c.GetHeader(SessionHeader)
	if tokenStr == "" {
		return "", nil
	}
	id, err := tokens.Parse(tokenStr)
	if err != nil {
		return "", nil
	}
	ok, err := manager.Exists(c.Request.Context(), id)
	if err != nil || !ok {
		return "", err
	}
	return id, nil
}

// StartSession creates a session, stores its id in c and writes the token
// header. It aborts c and returns false on failure.
func StartSession(c *gin.Context, manager *session.Manager, tokens *session.Tokens, logger logrus.FieldLogger) bool {
	id, _, err := manager.Start(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to start session")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return false
	}
	token, err := tokens.Issue(id)
	if err != nil {
		logger.WithError(err).Error("failed to issue session token")
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return false
	}
	c.Set(sessionIDKey, id)
	c.Header(SessionHeader, token)
	logger.WithField("session_id", id).Debug("session started")
	return true
}

// SessionID returns the id stored by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
