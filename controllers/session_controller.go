package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoparts/storefront/middleware"
	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/storefront"
)

// StartSession always opens a new session, ignoring any token sent.
func (s *Storefront) StartSession(c *gin.Context) {
	if !middleware.StartSession(c, s.Sessions, s.Tokens, s.Logger) {
		return
	}
	s.respondView(c, "Session started", storefront.NewState())
}

func (s *Storefront) GetView(c *gin.Context) {
	state, err := s.Sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondView(c, "View fetched successfully", state)
}

func (s *Storefront) EndSession(c *gin.Context) {
	if err := s.Sessions.End(c.Request.Context(), middleware.SessionID(c)); err != nil {
		s.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session ended", nil))
}

type navigateRequest struct {
	Page string `json:"page" binding:"required"`
}

func (s *Storefront) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	page, err := models.ParsePage(req.Page)
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Unknown page", err)
		return
	}
	s.apply(c, "Page changed", storefront.Navigate{Page: page})
}
