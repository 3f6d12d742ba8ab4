package models

import "time"

// TaskStatuses are the Kanban columns, in board order.
var TaskStatuses = []string{
	"À faire",
	"En cours",
	"En révision",
	"Terminé",
}

// TaskPriorities, lowest to highest.
var TaskPriorities = []string{
	"Basse",
	"Moyenne",
	"Haute",
	"Urgente",
}

// Task is a unit of work within a project.
type Task struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"size:256;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Status       string     `gorm:"size:32;default:À faire;index" json:"status"`
	Priority     string     `gorm:"size:16;default:Moyenne" json:"priority"`
	ProjectID    uint       `gorm:"index" json:"project_id"`
	DueDate      *time.Time `json:"due_date"`
	Assignee     string     `gorm:"size:128" json:"assignee"`
	Completion   int        `gorm:"default:0" json:"completion"` // 0-100
	CommentCount int        `gorm:"default:0" json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
