package configs

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"littlelemon/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectDatabase opens the configured driver. TranslateError lets
// repositories match gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated
// instead of driver-specific errors.
func ConnectDatabase(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite":
		dial = sqlite.Open(sqliteDSN(cfg.DBSource))
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

// sqlite leaves foreign keys off per connection unless the DSN turns
// them on; without this the schema's CASCADE/RESTRICT rules are inert.
func sqliteDSN(source string) string {
	if strings.Contains(source, "_foreign_keys") || strings.Contains(source, "_fk") {
		return source
	}
	if strings.Contains(source, "?") {
		return source + "&_foreign_keys=on"
	}
	return source + "?_foreign_keys=on"
}

// SetupDatabase migrates the schema.
func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.GroupMember{},
		&entity.Category{},
		&entity.MenuItem{},
		&entity.CartItem{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
