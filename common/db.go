package common

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDb opens the sqlite database named by the sqlite_db env var.
// The returned handle is owned by main and handed to each module; nothing
// else in the codebase opens connections.
func ConnectDb() *gorm.DB {
	dbFile := os.Getenv("sqlite_db")
	if dbFile == "" {
		log.Println("sqlite_db not set")
		return nil
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Println("Error opening sqlite db: " + err.Error())
		return nil
	}
	log.Println("opened sqlite db at:", dbFile)
	return db
}

// CloseDb releases the underlying sql.DB pool. Called from main on shutdown.
func CloseDb(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Println("Error fetching underlying sql.DB: " + err.Error())
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Println("Error closing sqlite db: " + err.Error())
	}
}
