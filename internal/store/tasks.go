package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// TaskOpts holds parameters for creating a task.
type TaskOpts struct {
	Title       string
	Description string
	Status      string
	Priority    string
	ProjectID   uint
	DueDate     *time.Time
	Assignee    string
	Completion  int
}

// TaskPatch holds optional field updates for a task.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	Assignee    *string
	Completion  *int
}

// TaskFilters holds optional filters for listing tasks.
type TaskFilters struct {
	ProjectID uint
	Status    string
	Assignee  string
}

// CreateTask validates and inserts a new task.
func CreateTask(db *gorm.DB, opts TaskOpts) (*models.Task, error) {
	if opts.Title == "" {
		return nil, validationError("task title is required")
	}
	if opts.Status == "" {
		opts.Status = "À faire"
	}
	if opts.Priority == "" {
		opts.Priority = "Moyenne"
	}
	if !oneOf(opts.Status, models.TaskStatuses) {
		return nil, validationError("unknown task status %q", opts.Status)
	}
	if !oneOf(opts.Priority, models.TaskPriorities) {
		return nil, validationError("unknown task priority %q", opts.Priority)
	}
	if opts.Completion < 0 || opts.Completion > 100 {
		return nil, validationError("completion %d out of range [0,100]", opts.Completion)
	}
	if opts.ProjectID != 0 {
		if _, err := GetProject(db, opts.ProjectID); err != nil {
			return nil, err
		}
	}

	task := models.Task{
		Title:       opts.Title,
		Description: opts.Description,
		Status:      opts.Status,
		Priority:    opts.Priority,
		ProjectID:   opts.ProjectID,
		DueDate:     opts.DueDate,
		Assignee:    opts.Assignee,
		Completion:  opts.Completion,
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, fmt.Errorf("store: create task: %w", err)
	}
	return &task, nil
}

// ListTasks returns tasks matching the filters, newest first.
func ListTasks(db *gorm.DB, filters TaskFilters) ([]models.Task, error) {
	q := db.Model(&models.Task{})
	if filters.ProjectID != 0 {
		q = q.Where("project_id = ?", filters.ProjectID)
	}
	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.Assignee != "" {
		q = q.Where("assignee = ?", filters.Assignee)
	}

	var tasks []models.Task
	if err := q.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("store: list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task by ID.
func GetTask(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	if err := db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get task %d: %w", id, err)
	}
	return &task, nil
}

// UpdateTask applies a patch to a task. Status changes are manual only;
// there is no automatic transition logic.
func UpdateTask(db *gorm.DB, id uint, patch TaskPatch) (*models.Task, error) {
	task, err := GetTask(db, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, validationError("task title is required")
		}
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Status != nil {
		if !oneOf(*patch.Status, models.TaskStatuses) {
			return nil, validationError("unknown task status %q", *patch.Status)
		}
		updates["status"] = *patch.Status
	}
	if patch.Priority != nil {
		if !oneOf(*patch.Priority, models.TaskPriorities) {
			return nil, validationError("unknown task priority %q", *patch.Priority)
		}
		updates["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if patch.Assignee != nil {
		updates["assignee"] = *patch.Assignee
	}
	if patch.Completion != nil {
		if *patch.Completion < 0 || *patch.Completion > 100 {
			return nil, validationError("completion %d out of range [0,100]", *patch.Completion)
		}
		updates["completion"] = *patch.Completion
	}

	if len(updates) == 0 {
		return task, nil
	}
	if err := db.Model(task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("store: update task %d: %w", id, err)
	}
	return GetTask(db, id)
}

// DeleteTask removes a task by ID.
func DeleteTask(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Task{}, id)
	if result.Error != nil {
		return fmt.Errorf("store: delete task %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return nil
}
