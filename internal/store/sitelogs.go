package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// SiteLogOpts holds parameters for creating a site log entry.
type SiteLogOpts struct {
	Title     string
	Content   string
	ProjectID uint
	Author    string
	Weather   string
	LogDate   time.Time // zero value defaults to now
}

// SiteLogPatch holds optional field updates for a site log.
type SiteLogPatch struct {
	Title   *string
	Content *string
	Author  *string
	Weather *string
	LogDate *time.Time
}

// CreateSiteLog validates and inserts a site log entry.
func CreateSiteLog(db *gorm.DB, opts SiteLogOpts) (*models.SiteLog, error) {
	if opts.Title == "" {
		return nil, validationError("site log title is required")
	}
	if opts.LogDate.IsZero() {
		opts.LogDate = time.Now()
	}
	if opts.ProjectID != 0 {
		if _, err := GetProject(db, opts.ProjectID); err != nil {
			return nil, err
		}
	}

	log := models.SiteLog{
		Title:     opts.Title,
		Content:   opts.Content,
		ProjectID: opts.ProjectID,
		Author:    opts.Author,
		Weather:   opts.Weather,
		LogDate:   opts.LogDate,
	}
	if err := db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("store: create site log: %w", err)
	}
	return &log, nil
}

// ListSiteLogs returns site logs, optionally scoped to a project, newest first.
func ListSiteLogs(db *gorm.DB, projectID uint) ([]models.SiteLog, error) {
	q := db.Model(&models.SiteLog{})
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}
	var logs []models.SiteLog
	if err := q.Order("log_date DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("store: list site logs: %w", err)
	}
	return logs, nil
}

// UpdateSiteLog applies a patch to a site log entry.
func UpdateSiteLog(db *gorm.DB, id uint, patch SiteLogPatch) (*models.SiteLog, error) {
	var log models.SiteLog
	if err := db.First(&log, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: site log %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get site log %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, validationError("site log title is required")
		}
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.Weather != nil {
		updates["weather"] = *patch.Weather
	}
	if patch.LogDate != nil {
		updates["log_date"] = *patch.LogDate
	}

	if len(updates) == 0 {
		return &log, nil
	}
	if err := db.Model(&log).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("store: update site log %d: %w", id, err)
	}
	return &log, nil
}

// DeleteSiteLog removes a site log entry by ID.
func DeleteSiteLog(db *gorm.DB, id uint) error {
	result := db.Delete(&models.SiteLog{}, id)
	if result.Error != nil {
		return fmt.Errorf("store: delete site log %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: site log %d", ErrNotFound, id)
	}
	return nil
}
