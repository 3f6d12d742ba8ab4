package models

import "time"

// AdminUser is a back-office account. PasswordHash is a bcrypt hash,
// never the plain password.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"size:256;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminSession is a server-side session issued at login. The token is the
// primary key and is handed to the client as an opaque bearer credential.
// Expired rows are deleted on first sight and swept hourly.
type AdminSession struct {
	Token     string    `gorm:"primaryKey;size:36" json:"token"`
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	Email     string    `gorm:"size:256;not null" json:"email"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
