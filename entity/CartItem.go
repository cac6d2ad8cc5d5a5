package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_cart_items_user_menu_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_cart_items_user_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null" json:"quantity"`

	// UnitPrice is the menu price captured when the line was added or
	// last replaced; Price is always UnitPrice * Quantity.
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`

	CreatedAt time.Time `json:"createdAt"`
}
