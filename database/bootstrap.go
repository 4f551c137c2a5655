package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmmate/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	// Only the mirrored profile lives here; everything else is in the
	// per-device record store.
	if err := db.AutoMigrate(&entities.Profile{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}
