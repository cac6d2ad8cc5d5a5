package configs

import (
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"littlelemon/entity"
)

// SeedAdmin creates the bootstrap admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		slog.Warn("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		IsAdmin:   true,
	}
	return db.Create(&admin).Error
}

// SeedMenu fills starter categories and menu items so a fresh install
// has something to browse.
func SeedMenu() error {
	db := DB()

	cats := []entity.Category{
		{Slug: "appetizers", Title: "Appetizers"},
		{Slug: "mains", Title: "Mains"},
		{Slug: "desserts", Title: "Desserts"},
	}
	bySlug := map[string]uint{}
	for i := range cats {
		if err := db.FirstOrCreate(&cats[i], entity.Category{Slug: cats[i].Slug}).Error; err != nil {
			return err
		}
		bySlug[cats[i].Slug] = cats[i].ID
	}

	items := []struct {
		title    string
		price    string
		slug     string
		featured bool
	}{
		{"Bruschetta", "8.50", "appetizers", false},
		{"Greek Salad", "12.00", "appetizers", false},
		{"Grilled Fish", "19.99", "mains", false},
		{"Beef Pasta", "13.50", "mains", false},
		{"Lemon Dessert", "7.99", "desserts", true},
	}
	for _, it := range items {
		attrs := entity.MenuItem{
			Title:      it.title,
			Price:      decimal.RequireFromString(it.price),
			Featured:   it.featured,
			CategoryID: bySlug[it.slug],
		}
		var item entity.MenuItem
		if err := db.Where(entity.MenuItem{Title: it.title}).Attrs(attrs).FirstOrCreate(&item).Error; err != nil {
			return err
		}
	}

	slog.Info("lookup data seeded")
	return nil
}
