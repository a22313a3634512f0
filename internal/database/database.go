package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

// Connect opens the backing store. A postgres:// DSN selects PostgreSQL;
// anything else is treated as a path to a local SQLite file (":memory:"
// works for tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite database:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite", // pure-Go driver, no cgo
			DSN:        dsn,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Warn)},
	)
}
