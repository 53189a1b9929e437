// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/domain/catalog"
	"github.com/Zevk4/levelup-store/internal/pkg/forms"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	catalog *catalog.Store
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalogStore *catalog.Store) *AdminHandler {
	return &AdminHandler{
		catalog: catalogStore,
	}
}

// CreateProductRequest represents an admin product submission. The code
// is generated server-side from the subcategory, never supplied.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Image       string `json:"image"`
}

// CreateProduct validates the submission, generates the product code and
// adds the product to the catalog.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	form := forms.New(map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"category":    req.Category,
		"subcategory": req.Subcategory,
	})
	if !form.Validate() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": form.Errors(),
		})
		return
	}

	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": gin.H{"price": "price cannot be negative"},
		})
		return
	}

	product := catalog.Product{
		Code:        h.catalog.NextCode(req.Category, req.Subcategory),
		Image:       req.Image,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}

	h.catalog.Add(product)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"data":    product,
	})
}
