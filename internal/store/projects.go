package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// ProjectOpts holds parameters for creating a project.
type ProjectOpts struct {
	Name        string
	Description string
	Status      string
	Progress    int
	Budget      float64
	Deadline    *time.Time
	Location    string
	TeamSize    int
	DelayDays   int
	Issues      int
}

// ProjectPatch holds optional field updates for a project. Nil fields are
// left untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *string
	Progress    *int
	Budget      *float64
	Deadline    *time.Time
	Location    *string
	TeamSize    *int
	DelayDays   *int
	Issues      *int
}

func validateProject(status string, progress int, budget float64, teamSize, delayDays, issues int) error {
	if status != "" && !oneOf(status, models.ProjectStatuses) {
		return validationError("unknown project status %q", status)
	}
	if progress < 0 || progress > 100 {
		return validationError("progress %d out of range [0,100]", progress)
	}
	if budget <= 0 {
		return validationError("budget must be positive, got %v", budget)
	}
	if teamSize < 0 {
		return validationError("team_size must not be negative")
	}
	if delayDays < 0 {
		return validationError("delay_days must not be negative")
	}
	if issues < 0 {
		return validationError("issues must not be negative")
	}
	return nil
}

// CreateProject validates and inserts a new project.
func CreateProject(db *gorm.DB, opts ProjectOpts) (*models.Project, error) {
	if opts.Name == "" {
		return nil, validationError("project name is required")
	}
	if opts.Status == "" {
		opts.Status = "Planification"
	}
	if err := validateProject(opts.Status, opts.Progress, opts.Budget, opts.TeamSize, opts.DelayDays, opts.Issues); err != nil {
		return nil, err
	}

	p := models.Project{
		Name:        opts.Name,
		Description: opts.Description,
		Status:      opts.Status,
		Progress:    opts.Progress,
		Budget:      opts.Budget,
		Deadline:    opts.Deadline,
		Location:    opts.Location,
		TeamSize:    opts.TeamSize,
		DelayDays:   opts.DelayDays,
		Issues:      opts.Issues,
	}
	if err := db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("store: create project: %w", err)
	}
	return &p, nil
}

// ListProjects returns all projects, newest first.
func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("store: list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a single project by ID.
func GetProject(db *gorm.DB, id uint) (*models.Project, error) {
	var p models.Project
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get project %d: %w", id, err)
	}
	return &p, nil
}

// UpdateProject applies a patch to a project. Last write wins; there is no
// version check.
func UpdateProject(db *gorm.DB, id uint, patch ProjectPatch) (*models.Project, error) {
	p, err := GetProject(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, validationError("project name is required")
		}
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Progress != nil {
		updates["progress"] = *patch.Progress
	}
	if patch.Budget != nil {
		updates["budget"] = *patch.Budget
	}
	if patch.Deadline != nil {
		updates["deadline"] = *patch.Deadline
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.TeamSize != nil {
		updates["team_size"] = *patch.TeamSize
	}
	if patch.DelayDays != nil {
		updates["delay_days"] = *patch.DelayDays
	}
	if patch.Issues != nil {
		updates["issues"] = *patch.Issues
	}

	status := p.Status
	if patch.Status != nil {
		status = *patch.Status
	}
	progress := p.Progress
	if patch.Progress != nil {
		progress = *patch.Progress
	}
	budget := p.Budget
	if patch.Budget != nil {
		budget = *patch.Budget
	}
	teamSize := p.TeamSize
	if patch.TeamSize != nil {
		teamSize = *patch.TeamSize
	}
	delayDays := p.DelayDays
	if patch.DelayDays != nil {
		delayDays = *patch.DelayDays
	}
	issues := p.Issues
	if patch.Issues != nil {
		issues = *patch.Issues
	}
	if err := validateProject(status, progress, budget, teamSize, delayDays, issues); err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return p, nil
	}
	if err := db.Model(p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("store: update project %d: %w", id, err)
	}
	return GetProject(db, id)
}

// DeleteProject removes a project by ID.
func DeleteProject(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return fmt.Errorf("store: delete project %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: project %d", ErrNotFound, id)
	}
	return nil
}
