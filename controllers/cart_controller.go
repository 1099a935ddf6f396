package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/autoparts/storefront/catalog"
	"github.com/autoparts/storefront/middleware"
	"github.com/autoparts/storefront/storefront"
)

var (
	errUnknownProduct = errors.New("product not in catalog")
	errOutOfStock     = errors.New("product out of stock")
)

func (s *Storefront) GetCart(c *gin.Context) {
	state, err := s.Sessions.Get(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondCart(c, "Cart fetched successfully", state)
}

type addToCartRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// AddToCart resolves the product from the catalog so the cart always
// carries the current catalog price. Products out of stock are refused.
func (s *Storefront) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	products, err := s.Catalog.Products(c.Request.Context())
	if err != nil {
		s.fail(c, http.StatusInternalServerError, "Failed to load catalog", err)
		return
	}
	product, ok := catalog.ByID(products, req.ProductID)
	if !ok {
		s.fail(c, http.StatusNotFound, "Product not found",
			errors.Wrapf(errUnknownProduct, "id %d", req.ProductID))
		return
	}
	if !product.InStock {
		s.fail(c, http.StatusConflict, "Product is out of stock",
			errors.Wrapf(errOutOfStock, "id %d", req.ProductID))
		return
	}

	state, err := s.Sessions.Apply(c.Request.Context(), middleware.SessionID(c), storefront.AddToCart{Product: product})
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondCart(c, "Product added to cart", state)
}

type updateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCart sets a line's quantity; zero or less removes the line and
// an id that is not in the cart is ignored.
func (s *Storefront) UpdateCart(c *gin.Context) {
	productID, ok := s.productIDParam(c)
	if !ok {
		return
	}
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "invalid input", err)
		return
	}
	state, err := s.Sessions.Apply(c.Request.Context(), middleware.SessionID(c),
		storefront.UpdateQuantity{ProductID: productID, Quantity: *req.Quantity})
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondCart(c, "Cart updated", state)
}

func (s *Storefront) RemoveCartItem(c *gin.Context) {
	productID, ok := s.productIDParam(c)
	if !ok {
		return
	}
	state, err := s.Sessions.Apply(c.Request.Context(), middleware.SessionID(c),
		storefront.RemoveFromCart{ProductID: productID})
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondCart(c, "Product removed from cart", state)
}

func (s *Storefront) ClearCart(c *gin.Context) {
	state, err := s.Sessions.Apply(c.Request.Context(), middleware.SessionID(c), storefront.ClearCart{})
	if err != nil {
		s.sessionError(c, err)
		return
	}
	s.respondCart(c, "Cart cleared", state)
}

func (s *Storefront) productIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		s.fail(c, http.StatusBadRequest, "Invalid product id", err)
		return 0, false
	}
	return id, true
}
