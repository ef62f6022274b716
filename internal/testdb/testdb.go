// Package testdb opens throwaway in-memory databases for package tests.
package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/qa-service/config"
	"github.com/lshigami/qa-service/database"
	"gorm.io/gorm"
)

// Open returns a migrated SQLite database with foreign keys enforced. A single
// connection keeps the in-memory database alive for the whole test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), config.Database{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.AutoMigrate(db, false); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
