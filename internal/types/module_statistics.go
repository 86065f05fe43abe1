package types

import (
	"time"

	"github.com/google/uuid"
)

type ModuleStatistics struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID         uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`
	RequestID         uuid.UUID `gorm:"type:uuid;not null;index" json:"request_id"`
	TotalInsights     int       `gorm:"column:total_insights;not null;default:0" json:"total_insights"`
	TotalImplications int       `gorm:"column:total_implications;not null;default:0" json:"total_implications"`
	CreatedAt         time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ModuleStatistics) TableName() string { return "module_statistics" }
