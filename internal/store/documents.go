package store

import (
	"errors"
	"fmt"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// DocumentOpts holds the metadata row for an uploaded file. The object
// itself is written by the document service before this row is inserted.
type DocumentOpts struct {
	Name        string
	Description string
	ProjectID   uint
	FilePath    string
	FileType    string
	FileSize    int64
	UploadedBy  string
}

// CreateDocument inserts a document metadata row.
func CreateDocument(db *gorm.DB, opts DocumentOpts) (*models.Document, error) {
	if opts.Name == "" {
		return nil, validationError("document name is required")
	}
	if opts.FilePath == "" {
		return nil, validationError("document file_path is required")
	}
	if opts.ProjectID != 0 {
		if _, err := GetProject(db, opts.ProjectID); err != nil {
			return nil, err
		}
	}

	doc := models.Document{
		Name:        opts.Name,
		Description: opts.Description,
		ProjectID:   opts.ProjectID,
		FilePath:    opts.FilePath,
		FileType:    opts.FileType,
		FileSize:    opts.FileSize,
		UploadedBy:  opts.UploadedBy,
	}
	if err := db.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("store: create document: %w", err)
	}
	return &doc, nil
}

// ListDocuments returns documents, optionally scoped to a project, newest first.
func ListDocuments(db *gorm.DB, projectID uint) ([]models.Document, error) {
	q := db.Model(&models.Document{})
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}
	var docs []models.Document
	if err := q.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("store: list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns a single document by ID.
func GetDocument(db *gorm.DB, id uint) (*models.Document, error) {
	var doc models.Document
	if err := db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: document %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get document %d: %w", id, err)
	}
	return &doc, nil
}

// DeleteDocumentRow removes only the metadata row. Object cleanup is the
// document service's job.
func DeleteDocumentRow(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Document{}, id)
	if result.Error != nil {
		return fmt.Errorf("store: delete document %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %d", ErrNotFound, id)
	}
	return nil
}
