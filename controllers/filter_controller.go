package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/storefront"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Storefront) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	s.apply(c, "Search updated", storefront.Search{Query: req.Query})
}

// Bounds are pointers so that an explicit zero is accepted.
type priceRequest struct {
	Low  *int64 `json:"low" binding:"required"`
	High *int64 `json:"high" binding:"required"`
}

func (s *Storefront) SetPriceRange(c *gin.Context) {
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	s.apply(c, "Price range updated", storefront.SetPriceRange{
		Range: models.PriceRange{Low: *req.Low, High: *req.High},
	})
}

var errUnknownBrand = errors.New("brand not in catalog")

// ToggleBrand only accepts brands the catalog lists.
func (s *Storefront) ToggleBrand(c *gin.Context) {
	brand := c.Param("brand")
	cat, ok := s.loadCatalog(c)
	if !ok {
		return
	}
	if !containsString(cat.Brands, brand) {
		s.fail(c, http.StatusNotFound, "Brand not found", errors.Wrapf(errUnknownBrand, "%q", brand))
		return
	}
	s.apply(c, "Brand filter updated", storefront.ToggleBrand{Brand: brand})
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

type compatibilityRequest struct {
	Compatibility string `json:"compatibility"`
}

func (s *Storefront) SetCompatibility(c *gin.Context) {
	var req compatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	s.apply(c, "Compatibility filter updated", storefront.SetCompatibility{Compatibility: req.Compatibility})
}

func (s *Storefront) ClearFilters(c *gin.Context) {
	s.apply(c, "Filters cleared", storefront.ClearFilters{})
}

// GetFilterMetadata returns brands, price bounds and availability counts.
func (s *Storefront) GetFilterMetadata(c *gin.Context) {
	cat, ok := s.loadCatalog(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully",
		catalog.Metadata(cat.Products, cat.Brands)))
}
