package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"littlelemon/entity"
)

// GroupRepository persists role membership. The (user_id, role) unique
// index makes Assign naturally idempotent.
type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// Assign adds the user to the role group; assigning twice is a no-op.
func (r *GroupRepository) Assign(userID uint, role entity.Role) error {
	gm := entity.GroupMember{UserID: userID, Role: role}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&gm).Error
}

// Revoke removes the membership. Returns false when it was not there,
// which callers treat as a no-op, not an error.
func (r *GroupRepository) Revoke(userID uint, role entity.Role) (bool, error) {
	res := r.DB.Where("user_id = ? AND role = ?", userID, role).Delete(&entity.GroupMember{})
	return res.RowsAffected > 0, res.Error
}

func (r *GroupRepository) ListMembers(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN group_members gm ON gm.user_id = users.id").
		Where("gm.role = ?", role).
		Order("users.id").
		Find(&users).Error
	return users, err
}

func (r *GroupRepository) RolesOf(userID uint) ([]entity.Role, error) {
	var roles []entity.Role
	err := r.DB.Model(&entity.GroupMember{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles).Error
	return roles, err
}

func (r *GroupRepository) IsMember(userID uint, role entity.Role) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.GroupMember{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}
