package entity

type GroupMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;uniqueIndex:idx_group_members_user_role" json:"userId"`
	User   User `json:"-"`

	Role Role `gorm:"not null;size:32;uniqueIndex:idx_group_members_user_role" json:"role"`
}
