// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/domain/cart"
	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, catalogStore *catalog.Store) *CartHandler {
	return &CartHandler{
		cart:    cartStore,
		catalog: catalogStore,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart returns the cart lines, totals and drawer state
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, ok := h.catalog.ByCode(req.Code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.cart.Add(product)

	c.JSON(http.StatusOK, h.cartResponse())
}

// RemoveItem removes the whole line for a product code
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.Remove(c.Param("code"))

	c.JSON(http.StatusOK, h.cartResponse())
}

// ClearCart removes every line
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()

	c.JSON(http.StatusOK, h.cartResponse())
}

// OpenDrawer marks the cart drawer visible
func (h *CartHandler) OpenDrawer(c *gin.Context) {
	h.cart.Open()

	c.JSON(http.StatusOK, gin.H{"is_open": true})
}

// CloseDrawer marks the cart drawer hidden
func (h *CartHandler) CloseDrawer(c *gin.Context) {
	h.cart.Close()

	c.JSON(http.StatusOK, gin.H{"is_open": false})
}

func (h *CartHandler) cartResponse() gin.H {
	totals := h.cart.Totals()
	return gin.H{
		"data": gin.H{
			"items":   h.cart.Lines(),
			"totals":  totals,
			"is_open": h.cart.IsOpen(),
		},
	}
}
