package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SourceTypeGovernment = "government"
	SourceTypeAcademic   = "academic"
	SourceTypeClinical   = "clinical"
	SourceTypeCommercial = "commercial"
)

type SourceURL struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RequestID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"request_id"`
	URL           string         `gorm:"column:url;not null" json:"url"`
	SourceName    string         `gorm:"column:source_name" json:"source_name"`
	SourceType    string         `gorm:"column:source_type" json:"source_type"`
	CountryRegion string         `gorm:"column:country_region" json:"country_region,omitempty"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true" json:"is_active"`
	URLMetadata   datatypes.JSON `gorm:"column:url_metadata;type:jsonb" json:"url_metadata"`
	CreatedAt     time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (SourceURL) TableName() string { return "source_url" }
