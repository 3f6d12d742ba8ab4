// Package auth implements admin login and the session gate. Sessions are
// server-side rows keyed by an opaque token; there is exactly one
// authentication mechanism, and nothing a client stores locally can grant
// access on its own.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/chantierhq/chantier/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// ErrUnauthenticated is returned when a session token is absent, unknown,
// or expired.
var ErrUnauthenticated = errors.New("auth: unauthenticated")

// DefaultTTL is the session lifetime when config does not override it.
const DefaultTTL = 24 * time.Hour

// Gate validates credentials and session tokens. The clock is injected so
// expiry behavior is testable.
type Gate struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewGate creates a session gate. A zero ttl falls back to DefaultTTL and
// a nil clock falls back to time.Now.
func NewGate(db *gorm.DB, ttl time.Duration, now func() time.Time) *Gate {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Gate{db: db, ttl: ttl, now: now}
}

// HashPassword returns a bcrypt hash for storage in admin_users.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("auth: password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks the email and password against admin_users and issues a
// new session on success.
func (g *Gate) Login(email, password string) (*models.AdminSession, error) {
	var admin models.AdminUser
	if err := g.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: lookup admin %q: %w", email, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session := models.AdminSession{
		Token:     uuid.NewString(),
		AdminID:   admin.ID,
		Email:     admin.Email,
		ExpiresAt: g.now().Add(g.ttl),
	}
	if err := g.db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("auth: create session: %w", err)
	}
	return &session, nil
}

// Check resolves a session token. An absent, unknown, or expired token
// yields ErrUnauthenticated; expired rows are deleted on sight.
func (g *Gate) Check(token string) (*models.AdminSession, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	var session models.AdminSession
	if err := g.db.Where("token = ?", token).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth: lookup session: %w", err)
	}

	if !g.now().Before(session.ExpiresAt) {
		if err := g.db.Delete(&models.AdminSession{}, "token = ?", token).Error; err != nil {
			return nil, fmt.Errorf("auth: delete expired session: %w", err)
		}
		return nil, ErrUnauthenticated
	}
	return &session, nil
}

// Logout revokes a session. Revoking an unknown token is a no-op.
func (g *Gate) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := g.db.Delete(&models.AdminSession{}, "token = ?", token).Error; err != nil {
		return fmt.Errorf("auth: logout: %w", err)
	}
	return nil
}

// SweepExpired deletes all expired sessions and returns how many were
// removed. Run hourly from the server's cron schedule.
func (g *Gate) SweepExpired() (int64, error) {
	result := g.db.Where("expires_at <= ?", g.now()).Delete(&models.AdminSession{})
	if result.Error != nil {
		return 0, fmt.Errorf("auth: sweep expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
