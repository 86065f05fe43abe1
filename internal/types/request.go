package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RequestPriorityLow    = "low"
	RequestPriorityMedium = "medium"
	RequestPriorityHigh   = "high"

	RequestStatusPending    = "pending"
	RequestStatusProcessing = "processing"
	RequestStatusCompleted  = "completed"
	RequestStatusFailed     = "failed"
)

// TimeRange is the JSON payload stored in request.time_range. DateRange is an
// optional preformatted display string; the dates themselves stay ISO strings
// because the collection window is advisory, not queried on.
type TimeRange struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	DateRange string `json:"date_range,omitempty"`
}

type Request struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Title               string         `gorm:"column:title;not null" json:"title"`
	Description         string         `gorm:"column:description" json:"description"`
	TimeRange           datatypes.JSON `gorm:"column:time_range;type:jsonb" json:"time_range"`
	Priority            string         `gorm:"column:priority;not null;default:medium" json:"priority"`
	Status              string         `gorm:"column:status;not null;default:pending" json:"status"`
	EstimatedCompletion *time.Time     `gorm:"column:estimated_completion" json:"estimated_completion,omitempty"`
	CreatedBy           uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt           time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Request) TableName() string { return "request" }
