package db

import (
	"tienda/internal/product"
	"tienda/internal/user"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

// AutoMigrate creates the users and products tables. The unique index on
// users.email comes from the model tags.
func AutoMigrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&user.User{},
		&product.Product{},
	)
}
