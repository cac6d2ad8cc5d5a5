package entity

import (
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Title    string          `gorm:"not null;index" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
	Featured bool            `gorm:"not null;default:false" json:"featured"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"category"`

	// Cart lines vanish with the item; order lines keep history and
	// block the delete instead.
	CartItems  []CartItem  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OrderItems []OrderItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
