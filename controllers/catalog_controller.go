package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/contacts"
	"github.com/autoparts/storefront/middleware"
	"github.com/autoparts/storefront/models"
	"github.com/autoparts/storefront/storefront"
)

// ListProducts filters the catalog from query parameters without touching
// the session: q, brand (repeatable), compatibility, minPrice, maxPrice.
// Unparseable prices fall back to the defaults.
func (s *Storefront) ListProducts(c *gin.Context) {
	f := models.DefaultFilterState()
	f.Query = c.Query("q")
	f.Compatibility = c.Query("compatibility")
	for _, b := range c.QueryArray("brand") {
		if b = strings.TrimSpace(b); b != "" && !f.HasBrand(b) {
			f.Brands = append(f.Brands, b)
		}
	}
	if v, err := strconv.ParseInt(c.Query("minPrice"), 10, 64); err == nil {
		f.PriceRange.Low = v
	}
	if v, err := strconv.ParseInt(c.Query("maxPrice"), 10, 64); err == nil {
		f.PriceRange.High = v
	}

	products, err := s.Catalog.Products(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully",
		models.NewProductViews(catalog.Filter(products, f))))
}

func (s *Storefront) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid product id", err)
		return
	}
	products, err := s.Catalog.Products(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch product", err)
		return
	}
	product, ok := catalog.ByID(products, id)
	if !ok {
		s.fail(c, http.StatusNotFound, "Product not found", nil)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", models.NewProductView(product)))
}

func (s *Storefront) ListPromos(c *gin.Context) {
	products, err := s.Catalog.Products(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch products", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Promo products fetched successfully",
		models.NewProductViews(catalog.Promos(products))))
}

func (s *Storefront) ListCategories(c *gin.Context) {
	categories, err := s.Catalog.Categories(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to fetch categories", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}

func (s *Storefront) GetPage(c *gin.Context) {
	page, err := models.ParsePage(c.Param("page"))
	if err != nil {
		s.fail(c, http.StatusNotFound, "Page not found", err)
		return
	}
	content, _ := storefront.Content(page)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page fetched successfully", content))
}

func (s *Storefront) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	ctx := contacts.WithSession(c.Request.Context(), middleware.SessionID(c))
	receipt, err := s.Inbox.Submit(ctx, msg)
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to send message", err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent", receipt))
}
