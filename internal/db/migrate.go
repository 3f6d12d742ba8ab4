package db

import (
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Project{},
		&models.Task{},
		&models.ContactMessage{},
		&models.Document{},
		&models.SiteLog{},
		&models.Resource{},
		&models.AdminUser{},
		&models.AdminSession{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// SeedAdmin upserts the admin account for the configured email. The hash
// must already be a bcrypt hash.
func SeedAdmin(db *gorm.DB, email, passwordHash string) error {
	admin := models.AdminUser{
		Email:        email,
		PasswordHash: passwordHash,
	}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(&admin)
	if result.Error != nil {
		return fmt.Errorf("db: seed admin %q: %w", email, result.Error)
	}
	return nil
}

// SeedDemo inserts a small demo dataset when the projects table is empty.
// It replaces the hard-coded demo arrays the admin screens used to ship with.
func SeedDemo(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("db: count projects: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	deadline := func(days int) *time.Time {
		d := time.Now().AddDate(0, 0, days)
		return &d
	}

	projects := []models.Project{
		{
			Name:        "Tour Horizon",
			Description: "Immeuble de bureaux de 18 étages, quartier d'affaires.",
			Status:      "En cours",
			Progress:    45,
			Budget:      12500000,
			Deadline:    deadline(240),
			Location:    "Lyon Part-Dieu",
			TeamSize:    32,
			DelayDays:   0,
			Issues:      2,
		},
		{
			Name:        "Résidence Les Cèdres",
			Description: "Ensemble résidentiel de 60 logements avec parking souterrain.",
			Status:      "Planification",
			Progress:    5,
			Budget:      8400000,
			Deadline:    deadline(540),
			Location:    "Bordeaux Bastide",
			TeamSize:    12,
			DelayDays:   0,
			Issues:      0,
		},
		{
			Name:        "Pont de la Brèche",
			Description: "Réhabilitation d'un pont routier, circulation alternée.",
			Status:      "En cours",
			Progress:    70,
			Budget:      3200000,
			Deadline:    deadline(90),
			Location:    "Niort",
			TeamSize:    18,
			DelayDays:   12,
			Issues:      5,
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		return 0, fmt.Errorf("db: seed projects: %w", err)
	}

	tasks := []models.Task{
		{Title: "Coulage dalle niveau 8", Status: "En cours", Priority: "Haute", ProjectID: projects[0].ID, Assignee: "M. Caron", Completion: 60},
		{Title: "Étude de sol complémentaire", Status: "À faire", Priority: "Moyenne", ProjectID: projects[1].ID, Assignee: "Bureau Veritas"},
		{Title: "Inspection des haubans", Status: "En révision", Priority: "Urgente", ProjectID: projects[2].ID, Assignee: "S. Lemaire", Completion: 90},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return 0, fmt.Errorf("db: seed tasks: %w", err)
	}

	resources := []models.Resource{
		{Name: "Grue à tour GT-220", Type: "Équipement", Quantity: 1, Unit: "unité", Status: "En service", ProjectID: projects[0].ID},
		{Name: "Béton C35/45", Type: "Matériau", Quantity: 400, Unit: "m³", Status: "Disponible", ProjectID: projects[0].ID},
	}
	if err := db.Create(&resources).Error; err != nil {
		return 0, fmt.Errorf("db: seed resources: %w", err)
	}

	return len(projects) + len(tasks) + len(resources), nil
}
