package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/utils"
)

// AuthService handles register/login plus the current profile.
type AuthService struct {
	userRepo  *repository.UserRepository
	groupRepo *repository.GroupRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, groups *repository.GroupRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  users,
		groupRepo: groups,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a customer account. Email is normalized; a taken
// email fails whether caught by the pre-check or the unique index.
func (s *AuthService) Register(email, password, firstName, lastName string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
	}

	if err := s.userRepo.Create(user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a token carrying the user id
// only; the role is looked up fresh on every request.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Profile returns the user together with the role they act under.
func (s *AuthService) Profile(userID uint) (*entity.User, entity.Role, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, "", ErrUserNotFound
	}
	groups, err := s.groupRepo.RolesOf(userID)
	if err != nil {
		return nil, "", err
	}
	return user, entity.HighestRole(user.IsAdmin, groups), nil
}
