package services_test

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kyudon/police-intake/internal/models"
	"github.com/kyudon/police-intake/internal/store"
)

func testStores(t *testing.T) (*store.Reports, *store.Cases) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "intake.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Report{}, &models.Case{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return store.NewReports(db), store.NewCases(db)
}
