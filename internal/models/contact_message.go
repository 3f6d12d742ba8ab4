package models

import "time"

// ContactMessage is a message submitted through the public contact form.
// Inserts are unauthenticated; the admin inbox flips Read and deletes.
type ContactMessage struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string    `gorm:"size:128;not null" json:"name"`
	Email   string    `gorm:"size:256;not null" json:"email"`
	Subject *string   `gorm:"size:256" json:"subject"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Date    time.Time `gorm:"index" json:"date"`
	Read    bool      `gorm:"default:false;index" json:"read"`
}
