package entity

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations, preloaded only when needed
	Groups    []GroupMember `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CartItems []CartItem    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	// Orders this user delivers; unassigned when the account goes away.
	AssignedOrders []Order `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL" json:"-"`
}
