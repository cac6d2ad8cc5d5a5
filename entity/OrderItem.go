package entity

import (
	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID uint  `gorm:"not null;uniqueIndex:idx_order_items_order_menu_item" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null;uniqueIndex:idx_order_items_order_menu_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	// Copied from the cart line at checkout, immutable afterwards.
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
}
