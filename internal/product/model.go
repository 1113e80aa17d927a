package product

import "github.com/shopspring/decimal"

// Product is a catalog record. Price is stored as numeric(10,2) and always
// carries exactly two fractional digits.
type Product struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
}
