package config

import (
	"fmt"

	"gorm.io/driver/postgres"

	"gorm.io/gorm"
)

func (db *DB) GormConnect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		db.USER, db.PASSWORD, db.URL, db.NAME, db.SSLMODE,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
