package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"
)

type Project struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string         `gorm:"column:name;not null" json:"name"`
	Description     string         `gorm:"column:description" json:"description"`
	CreatedBy       uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Status          string         `gorm:"column:status;not null;default:active" json:"status"`
	ProjectMetadata datatypes.JSON `gorm:"column:project_metadata;type:jsonb" json:"project_metadata"`
	ModuleConfig    datatypes.JSON `gorm:"column:module_config;type:jsonb" json:"module_config"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Project) TableName() string { return "project" }
