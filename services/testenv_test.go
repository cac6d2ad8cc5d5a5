package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"littlelemon/authz"
	"littlelemon/entity"
	"littlelemon/repository"
)

var testDBSeq atomic.Int64

// newTestDB opens a fresh named in-memory database per test with the
// same settings production runs on, foreign keys included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared&_foreign_keys=on", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.GroupMember{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func newAuthServiceForTest(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), repository.NewGroupRepository(db), "test-secret", time.Hour)
}

func newGroupServiceForTest(db *gorm.DB) *GroupService {
	return NewGroupService(repository.NewGroupRepository(db), repository.NewUserRepository(db))
}

func newMenuServiceForTest(db *gorm.DB) *MenuService {
	return NewMenuService(db, repository.NewMenuRepository(db), repository.NewCategoryRepository(db))
}

func newCartServiceForTest(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderServiceForTest(db *gorm.DB, n OrderNotifier) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), repository.NewUserRepository(db), n)
}

func seedUser(t *testing.T, db *gorm.DB, email string, isAdmin bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Test",
		LastName:  "User",
		IsAdmin:   isAdmin,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGroup(t *testing.T, db *gorm.DB, userID uint, role entity.Role) {
	t.Helper()
	require.NoError(t, db.Create(&entity.GroupMember{UserID: userID, Role: role}).Error)
}

func seedCategory(t *testing.T, db *gorm.DB, slug, title string) *entity.Category {
	t.Helper()
	c := &entity.Category{Slug: slug, Title: title}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedMenuItem(t *testing.T, db *gorm.DB, categoryID uint, title, unitPrice string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		Title:      title,
		Price:      price(unitPrice),
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// requireDecimal compares decimals by value, so 37.98 matches 37.980.
func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(price(want)), "want %s, got %s", want, got)
}

func asCustomer(u *entity.User) authz.Caller {
	return authz.Caller{UserID: u.ID, Role: entity.RoleCustomer}
}

func asCrew(u *entity.User) authz.Caller {
	return authz.Caller{UserID: u.ID, Role: entity.RoleDeliveryCrew}
}

func asManager(u *entity.User) authz.Caller {
	return authz.Caller{UserID: u.ID, Role: entity.RoleManager}
}
