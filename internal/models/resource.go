package models

import "time"

// Resource kinds.
var ResourceTypes = []string{
	"Équipement",
	"Matériau",
}

// Resource is a piece of equipment or a material allocated to a project.
type Resource struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Type      string    `gorm:"size:32;not null;index" json:"type"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	Unit      string    `gorm:"size:32" json:"unit"`
	Status    string    `gorm:"size:32;default:Disponible" json:"status"`
	ProjectID uint      `gorm:"index" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
