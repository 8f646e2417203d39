// Package entity contains the core business objects of the project.
package entity

// ProductCategory classifies catalog items.
type ProductCategory string

const (
	// CategoryCan is a single water can purchase.
	CategoryCan ProductCategory = "can"
	// CategorySubscription is a recurring delivery plan.
	CategorySubscription ProductCategory = "subscription"
	// CategoryAccessory is dispensing hardware (pumps, dispensers).
	CategoryAccessory ProductCategory = "accessory"
)

// IsValid checks if the category is a known value.
func (c ProductCategory) IsValid() bool {
	switch c {
	case CategoryCan, CategorySubscription, CategoryAccessory:
		return true
	default:
		return false
	}
}

// Product is a catalog item. Prices are integer currency units (rupees).
// Products are created and edited only through the admin catalog interface.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       int             `json:"price"`
	Unit        string          `json:"unit"`
	Image       string          `json:"image,omitempty"`
	Category    ProductCategory `json:"category"`
}

// DocumentID keys the product in the products collection.
func (p Product) DocumentID() string {
	return p.ID
}

// CartItem is a product snapshot with a quantity. Orders carry copies of the
// product as it was at purchase time, so later catalog edits do not alter
// historical orders.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
