package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lshigami/qa-service/config"
	"github.com/lshigami/qa-service/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), config.Database{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestAutoMigrateCreatesTables(t *testing.T) {
	db := openSQLite(t)
	if err := AutoMigrate(db, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []string{"questions", "answer"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %q", table)
		}
	}
	if !db.Migrator().HasConstraint(&model.Answer{}, "fk_questions_answers") {
		t.Fatalf("expected foreign key constraint on answer")
	}
}

func TestAutoMigrateResetDropsRows(t *testing.T) {
	db := openSQLite(t)
	if err := AutoMigrate(db, false); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	q := model.Question{Text: "old"}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("create question: %v", err)
	}
	if err := db.Create(&model.Answer{QuestionID: q.ID, Text: "old", UserID: uuid.New()}).Error; err != nil {
		t.Fatalf("create answer: %v", err)
	}

	if err := AutoMigrate(db, true); err != nil {
		t.Fatalf("reset migrate: %v", err)
	}
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty questions table after reset, got %d", count)
	}
}

func TestGormLoggerLogMode(t *testing.T) {
	l := NewGormLogger(50 * time.Millisecond)
	silent := l.LogMode(gormlogger.Silent).(*GormLogger)
	if silent.level != gormlogger.Silent {
		t.Fatalf("expected silent level, got %v", silent.level)
	}
	if l.level != gormlogger.Info {
		t.Fatalf("LogMode must not mutate the receiver")
	}

	called := false
	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, nil)
	if called {
		t.Fatalf("silent logger must not render SQL")
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"000001_initial_tables.up.sql", "000001_initial_tables.down.sql"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %s in %v", want, names)
		}
	}

	up, err := fs.ReadFile(migrationsFS, "migrations/000001_initial_tables.up.sql")
	if err != nil {
		t.Fatalf("read up migration: %v", err)
	}
	if !strings.Contains(string(up), "ON DELETE CASCADE") {
		t.Fatalf("expected cascade delete in initial migration")
	}
}
