// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles product browsing endpoints
type CatalogHandler struct {
	catalog    *catalog.Store
	categories []catalog.Category
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogStore *catalog.Store, categories []catalog.Category) *CatalogHandler {
	return &CatalogHandler{
		catalog:    catalogStore,
		categories: categories,
	}
}

// GetProducts lists products, optionally filtered by category and
// subcategory query parameters.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	subcategory := c.Query("subcategory")

	var products []catalog.Product
	if category != "" {
		products = h.catalog.ByCategory(category, subcategory)
	} else {
		products = h.catalog.Products()
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  products,
		"count": len(products),
	})
}

// SearchProducts handles free-text search by the q query parameter
func (h *CatalogHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Search query is required",
		})
		return
	}

	products := h.catalog.Search(query)

	c.JSON(http.StatusOK, gin.H{
		"data":  products,
		"count": len(products),
		"query": query,
	})
}

// GetProduct returns the product detail for a code path segment
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	code := c.Param("code")

	product, ok := h.catalog.ByCode(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GetCategories returns the storefront menu tree
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": h.categories,
	})
}
