package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	// Status false = pending, true = delivered.
	Status bool `gorm:"not null;default:false" json:"status"`

	// Total is fixed at checkout; later menu price edits never touch it.
	Total decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	CreatedAt time.Time `json:"createdAt"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
}
