package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"gorm.io/gorm"
)

// ContactOpts holds a submitted contact form. Subject may be empty; it is
// stored as NULL rather than an empty string.
type ContactOpts struct {
	Name    string
	Email   string
	Subject string
	Message string
	Date    time.Time // zero value defaults to now
}

// CreateContactMessage inserts a contact form submission. This is the one
// unauthenticated write in the system; new messages start unread.
func CreateContactMessage(db *gorm.DB, opts ContactOpts) (*models.ContactMessage, error) {
	if opts.Name == "" {
		return nil, validationError("name is required")
	}
	if opts.Email == "" {
		return nil, validationError("email is required")
	}
	if opts.Message == "" {
		return nil, validationError("message is required")
	}
	if opts.Date.IsZero() {
		opts.Date = time.Now()
	}

	msg := models.ContactMessage{
		Name:    opts.Name,
		Email:   opts.Email,
		Message: opts.Message,
		Date:    opts.Date,
		Read:    false,
	}
	if opts.Subject != "" {
		msg.Subject = &opts.Subject
	}
	if err := db.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("store: create contact message: %w", err)
	}
	return &msg, nil
}

// ListContactMessages returns all messages, newest first.
func ListContactMessages(db *gorm.DB) ([]models.ContactMessage, error) {
	var msgs []models.ContactMessage
	if err := db.Order("date DESC").Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("store: list contact messages: %w", err)
	}
	return msgs, nil
}

// CountUnreadMessages returns the number of unread inbox messages.
func CountUnreadMessages(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.ContactMessage{}).Where("read = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("store: count unread messages: %w", err)
	}
	return count, nil
}

// MarkMessageRead sets the read flag on a message.
func MarkMessageRead(db *gorm.DB, id uint, read bool) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := db.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contact message %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: get contact message %d: %w", id, err)
	}
	if err := db.Model(&msg).Update("read", read).Error; err != nil {
		return nil, fmt.Errorf("store: mark message %d read: %w", id, err)
	}
	return &msg, nil
}

// DeleteContactMessages removes messages by ID.
func DeleteContactMessages(db *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	result := db.Where("id IN ?", ids).Delete(&models.ContactMessage{})
	if result.Error != nil {
		return fmt.Errorf("store: delete contact messages: %w", result.Error)
	}
	return nil
}
