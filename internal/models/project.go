package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxProjectsPerUser is the hard limit on projects a single user may own.
const MaxProjectsPerUser = 4

type Project struct {
	ID      string `gorm:"primaryKey;size:36"`
	Name    string `gorm:"not null"`
	OwnerID string `gorm:"not null;index;size:36"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Owner User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Tasks []Task `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
