package models

import "github.com/google/uuid"

// OrderStatus is the lifecycle state of an order. Admins may move an order
// between any two states.
type OrderStatus string

const (
	StatusAwaitingApproval OrderStatus = "MENUNGGU_PERSETUJUAN"
	StatusApproved         OrderStatus = "DISETUJUI"
	StatusInProgress       OrderStatus = "SEDANG_DIPROSES"
	StatusCompleted        OrderStatus = "SELESAI"
	StatusCancelled        OrderStatus = "CANCEL"
)

// OrderStatuses lists every state in display order.
var OrderStatuses = []OrderStatus{
	StatusAwaitingApproval,
	StatusApproved,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports whether s is one of the defined states.
func (s OrderStatus) Valid() bool {
	for _, candidate := range OrderStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Label is the customer-facing Indonesian name of the state.
func (s OrderStatus) Label() string {
	switch s {
	case StatusAwaitingApproval:
		return "Menunggu Persetujuan"
	case StatusApproved:
		return "Disetujui"
	case StatusInProgress:
		return "Sedang Diproses"
	case StatusCompleted:
		return "Selesai"
	case StatusCancelled:
		return "Dibatalkan"
	default:
		return string(s)
	}
}

// Order is a checkout. UserID and TotalAmount never change after creation.
type Order struct {
	BaseModel
	UserID      uuid.UUID   `gorm:"type:uuid;index;not null" json:"userId"`
	User        *User       `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Status      OrderStatus `gorm:"type:varchar(32);index;not null" json:"status"`
	TotalAmount int64       `gorm:"not null" json:"totalAmount"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is an immutable line of an order. Price is the unit price at
// checkout time; ProductID becomes nil when the product is deleted. Position
// keeps the line order the customer submitted.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"orderId"`
	Position  int        `gorm:"not null;default:0" json:"position"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"productId"`
	Product   *Product   `gorm:"constraint:OnDelete:SET NULL" json:"product"`
	Quantity  int        `gorm:"not null" json:"quantity"`
	Price     int64      `gorm:"not null" json:"price"`
	Subtotal  int64      `gorm:"not null" json:"subtotal"`
}

// DeletedProductName is shown for items whose product no longer exists.
const DeletedProductName = "Produk Terhapus"

// ProductName returns the linked product's name or the deleted placeholder.
func (i *OrderItem) ProductName() string {
	if i.Product == nil || i.ProductID == nil {
		return DeletedProductName
	}
	return i.Product.Name
}
