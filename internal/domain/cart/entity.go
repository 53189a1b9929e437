// internal/domain/cart/entity.go
package cart

import "github.com/Zevk4/levelup-store/internal/domain/catalog"

// Line is one cart entry: a product snapshot plus quantity. The product
// is embedded, not referenced, so later catalog changes don't touch carts
// already holding the item. At most one line exists per product code.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Totals summarizes a cart for the presentation layer.
type Totals struct {
	ItemCount int   `json:"item_count"` // sum of quantities, not line count
	Total     int64 `json:"total"`      // Σ price × quantity
}
