// internal/domain/catalog/entity.go
package catalog

// Product represents a purchasable item. Products are immutable once
// created and are never deleted; the code is the unique key, with a
// prefix that encodes the subcategory (e.g. JM001, MO003).
type Product struct {
	Code        string `json:"code"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // integer currency units (CLP)
	Description string `json:"description"`
}

// Subcategory is one entry of a category's menu branch.
type Subcategory struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Category is one branch of the storefront menu tree.
type Category struct {
	Title         string        `json:"title"`
	Link          string        `json:"link"`
	Subcategories []Subcategory `json:"subcategories"`
}
