package database

import (
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenMemory membuka SQLite in-memory yang sudah dimigrasi (dipakai test & dev).
func OpenMemory() (*gorm.DB, error) {
	db, err := OpenSQLite(":memory:", gormlogger.Discard)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
