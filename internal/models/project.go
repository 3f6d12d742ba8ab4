package models

import "time"

// Project statuses, in lifecycle order.
var ProjectStatuses = []string{
	"Planification",
	"En cours",
	"En pause",
	"Terminé",
	"Annulé",
}

// Project is a construction project tracked by the back office.
type Project struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:256;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:32;default:Planification;index" json:"status"`
	Progress    int        `gorm:"default:0" json:"progress"` // 0-100
	Budget      float64    `gorm:"not null" json:"budget"`
	Deadline    *time.Time `json:"deadline"`
	Location    string     `gorm:"size:256" json:"location"`
	TeamSize    int        `gorm:"default:0" json:"team_size"`
	DelayDays   int        `gorm:"default:0" json:"delay_days"`
	Issues      int        `gorm:"default:0" json:"issues"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Tasks     []Task     `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Documents []Document `gorm:"foreignKey:ProjectID" json:"documents,omitempty"`
	SiteLogs  []SiteLog  `gorm:"foreignKey:ProjectID" json:"site_logs,omitempty"`
	Resources []Resource `gorm:"foreignKey:ProjectID" json:"resources,omitempty"`
}
