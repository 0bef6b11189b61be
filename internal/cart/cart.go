// Package cart holds a customer's pending selection before checkout.
//
// A Cart is a plain value owned by one request at a time; persistence between
// requests goes through a Store.
package cart

import (
	"github.com/google/uuid"

	"github.com/example/geprek/internal/models"
)

// Item is one product line in the cart. Prices are snapshotted when added.
type Item struct {
	ProductID     uuid.UUID `json:"productId"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	DiscountPrice *int64    `json:"discountPrice,omitempty"`
	Quantity      int       `json:"quantity"`
	Image         *string   `json:"image,omitempty"`
}

// UnitPrice is the discounted price when one is set, otherwise the list price.
func (i Item) UnitPrice() int64 {
	if i.DiscountPrice != nil && *i.DiscountPrice > 0 {
		return *i.DiscountPrice
	}
	return i.Price
}

// Subtotal is UnitPrice times Quantity.
func (i Item) Subtotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
}

// Cart is the set of items a user intends to order.
type Cart struct {
	UserID uuid.UUID `json:"userId"`
	Items  []Item    `json:"items"`
}

// New returns an empty cart for the user.
func New(userID uuid.UUID) *Cart {
	return &Cart{UserID: userID, Items: []Item{}}
}

// Add puts an item in the cart, adding to the quantity when the product is
// already present. Non-positive quantities are ignored.
func (c *Cart) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// Remove drops the product from the cart. It reports whether it was present.
func (c *Cart) Remove(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity replaces the quantity of a product; zero or less removes it.
// It reports whether the product was in the cart.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []Item{}
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total sums every item subtotal.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// Count is the number of units across all items.
func (c *Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// OrderItems converts the cart into order lines priced at checkout time.
func (c *Cart) OrderItems() []models.OrderItem {
	items := make([]models.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		productID := item.ProductID
		items = append(items, models.OrderItem{
			ProductID: &productID,
			Quantity:  item.Quantity,
			Price:     item.UnitPrice(),
			Subtotal:  item.Subtotal(),
		})
	}
	return items
}
