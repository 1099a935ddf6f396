package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/contacts"
	"github.com/autoparts/storefront/middleware"
	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/session"
	"github.com/autoparts/storefront/storefront"
)

// Storefront serves the session-bound storefront endpoints and the
// stateless catalog endpoints.
type Storefront struct {
	Catalog  catalog.Provider
	Sessions *session.Manager
	Tokens   *session.Tokens
	Inbox    contacts.Inbox
	Logger   logrus.FieldLogger
}

func (s *Storefront) loadCatalog(c *gin.Context) (storefront.Catalog, bool) {
	cat, err := storefront.LoadCatalog(c.Request.Context(), s.Catalog)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to load catalog", err)
		return storefront.Catalog{}, false
	}
	return cat, true
}

// fail logs err and writes the error envelope.
func (s *Storefront) fail(c *gin.Context, status int, message string, err error) {
	entry := s.Logger.WithField("path", c.FullPath())
	if id := middleware.SessionID(c); id != "" {
		entry = entry.WithField("session_id", id)
	}
	if err != nil {
		entry = entry.WithError(err)
		_ = c.Error(err)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Debug(message)
	}
	c.AbortWithStatusJSON(status, models.ErrorResponse(c, message))
}

// sessionError maps a session layer error onto a response.
func (s *Storefront) sessionError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		s.fail(c, http.StatusUnauthorized, "Session expired", err)
		return
	}
	s.fail(c, http.StatusInternalServerError, "Failed to update session", err)
}

// apply runs actions against the caller's session and responds with the view.
func (s *Storefront) apply(c *gin.Context, message string, actions ...storefront.Action) {
	state, err := s.Sessions.Apply(c.Request.Context(), middleware.SessionID(c), actions...)
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondView(c, message, state)
}

func (s *Storefront) respondView(c *gin.Context, message string, state storefront.State) {
	cat, ok := s.loadCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, storefront.BuildView(state, cat)))
}

func (s *Storefront) respondCart(c *gin.Context, message string, state storefront.State) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, storefront.Summarize(state.Cart)))
}
