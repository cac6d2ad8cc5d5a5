package entity

type Category struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Title string `gorm:"not null" json:"title"`

	// Deleting a category with menu items is refused at the store level.
	MenuItems []MenuItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
