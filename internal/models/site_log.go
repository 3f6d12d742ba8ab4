package models

import "time"

// SiteLog is a dated journal entry recorded on a construction site.
type SiteLog struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"size:256;not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	ProjectID uint      `gorm:"index" json:"project_id"`
	Author    string    `gorm:"size:128" json:"author"`
	Weather   string    `gorm:"size:64" json:"weather"`
	LogDate   time.Time `gorm:"index" json:"log_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
