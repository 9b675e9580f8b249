package store_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kyudon/police-intake/internal/models"
)

// testDB opens a throwaway sqlite database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "intake.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Report{}, &models.Case{}, &models.GuildSettings{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
