package services

import (
	"errors"

	"gorm.io/gorm"

	"littlelemon/entity"
	"littlelemon/repository"
)

// GroupService is the role registry: it moves users in and out of the
// manager and delivery_crew groups. Both directions are idempotent,
// and revoking never touches orders the user was assigned while a
// member.
type GroupService struct {
	groupRepo *repository.GroupRepository
	userRepo  *repository.UserRepository
}

func NewGroupService(groups *repository.GroupRepository, users *repository.UserRepository) *GroupService {
	return &GroupService{groupRepo: groups, userRepo: users}
}

func (s *GroupService) Assign(role entity.Role, userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.groupRepo.Assign(userID, role); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *GroupService) Revoke(role entity.Role, userID uint) error {
	exists, err := s.userRepo.ExistsByID(userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	// Removing a non-member is a no-op, same as assigning twice.
	_, err = s.groupRepo.Revoke(userID, role)
	return err
}

func (s *GroupService) Members(role entity.Role) ([]entity.User, error) {
	return s.groupRepo.ListMembers(role)
}

func (s *GroupService) RolesOf(userID uint) ([]entity.Role, error) {
	return s.groupRepo.RolesOf(userID)
}
