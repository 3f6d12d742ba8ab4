package models

import "time"

// Document is the metadata row for an uploaded file. The binary itself
// lives in object storage under FilePath.
type Document struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:256;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ProjectID   uint      `gorm:"index" json:"project_id"`
	FilePath    string    `gorm:"size:512;not null" json:"file_path"`
	FileType    string    `gorm:"size:128" json:"file_type"`
	FileSize    int64     `gorm:"default:0" json:"file_size"`
	UploadedBy  string    `gorm:"size:128" json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
