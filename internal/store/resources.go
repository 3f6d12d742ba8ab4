package store

import (
	"errors"
	"fmt"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// ResourceOpts holds parameters for creating a resource.
type ResourceOpts struct {
	Name      string
	Type      string
	Quantity  int
	Unit      string
	Status    string
	ProjectID uint
}

// ResourcePatch holds optional field updates for a resource.
type ResourcePatch struct {
	Name     *string
	Type     *string
	Quantity *int
	Unit     *string
	Status   *string
}

// CreateResource validates and inserts an equipment or material record.
func CreateResource(db *gorm.DB, opts ResourceOpts) (*models.Resource, error) {
	if opts.Name == "" {
		return nil, validationError("resource name is required")
	}
	if !oneOf(opts.Type, models.ResourceTypes) {
		return nil, validationError("unknown resource type %q", opts.Type)
	}
	if opts.Quantity < 0 {
		return nil, validationError("quantity must not be negative")
	}
	if opts.Status == "" {
		opts.Status = "Disponible"
	}
	if opts.ProjectID != 0 {
		if _, err := GetProject(db, opts.ProjectID); err != nil {
			return nil, err
		}
	}

	r := models.Resource{
		Name:      opts.Name,
		Type:      opts.Type,
		Quantity:  opts.Quantity,
		Unit:      opts.Unit,
		Status:    opts.Status,
		ProjectID: opts.ProjectID,
	}
	if err := db.Create(&r).Error; err != nil {
		return nil, fmt.Errorf("store: create resource: %w", err)
	}
	return &r, nil
}

// ListResources returns resources, optionally scoped to a project.
func ListResources(db *gorm.DB, projectID uint) ([]models.Resource, error) {
	q := db.Model(&models.Resource{})
	if projectID != 0 {
		q = q.Where("project_id = ?", projectID)
	}
	var resources []models.Resource
	if err := q.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("store: list resources: %w", err)
	}
	return resources, nil
}

// UpdateResource applies a patch to a resource.
func UpdateResource(db *gorm.DB, id uint, patch ResourcePatch) (*models.Resource, error) {
	var r models.Resource
	if err := db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: resource %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get resource %d: %w", id, err)
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, validationError("resource name is required")
		}
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		if !oneOf(*patch.Type, models.ResourceTypes) {
			return nil, validationError("unknown resource type %q", *patch.Type)
		}
		updates["type"] = *patch.Type
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return nil, validationError("quantity must not be negative")
		}
		updates["quantity"] = *patch.Quantity
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}

	if len(updates) == 0 {
		return &r, nil
	}
	if err := db.Model(&r).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("store: update resource %d: %w", id, err)
	}
	return &r, nil
}

// DeleteResource removes a resource by ID.
func DeleteResource(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Resource{}, id)
	if result.Error != nil {
		return fmt.Errorf("store: delete resource %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: resource %d", ErrNotFound, id)
	}
	return nil
}
