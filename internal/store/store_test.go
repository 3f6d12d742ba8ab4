package store

import (
	"testing"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB creates an in-memory SQLite database with all required tables.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Project{},
		&models.Task{},
		&models.ContactMessage{},
		&models.Document{},
		&models.SiteLog{},
		&models.Resource{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestProject(t *testing.T, db *gorm.DB) *models.Project {
	t.Helper()
	p, err := CreateProject(db, ProjectOpts{
		Name:   "Tour X",
		Budget: 100000,
		Status: "Planification",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}
