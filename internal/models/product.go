package models

// Category is the menu section a product is listed under.
type Category string

const (
	CategoryMakanan Category = "MAKANAN"
	CategoryMinuman Category = "MINUMAN"
)

// Valid reports whether c is a known menu category.
func (c Category) Valid() bool {
	return c == CategoryMakanan || c == CategoryMinuman
}

// Product is a menu entry. Prices are whole rupiah.
type Product struct {
	BaseModel
	Name          string   `gorm:"not null" json:"name"`
	Description   *string  `json:"description"`
	Price         int64    `gorm:"not null" json:"price"`
	DiscountPrice *int64   `json:"discountPrice"`
	Category      Category `gorm:"type:varchar(16);index;not null" json:"category"`
	Image         *string  `json:"image"`
	IsPromotion   bool     `gorm:"not null;default:false" json:"isPromotion"`
	IsNew         bool     `gorm:"not null;default:false" json:"isNew"`
}

// EffectivePrice is the price a customer pays for one unit.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}
