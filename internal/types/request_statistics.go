package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RequestStatistics aggregates advisory request counters per project. The row
// also records the request whose orchestration created it; counters are
// last-write-wins under concurrent runs.
type RequestStatistics struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProjectID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	RequestID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"request_id"`
	TotalRequests         int            `gorm:"column:total_requests;not null;default:0" json:"total_requests"`
	CompletedRequests     int            `gorm:"column:completed_requests;not null;default:0" json:"completed_requests"`
	PendingRequests       int            `gorm:"column:pending_requests;not null;default:0" json:"pending_requests"`
	FailedRequests        int            `gorm:"column:failed_requests;not null;default:0" json:"failed_requests"`
	AverageProcessingTime int            `gorm:"column:average_processing_time;not null;default:0" json:"average_processing_time"`
	LastActivityAt        *time.Time     `gorm:"column:last_activity_at" json:"last_activity_at,omitempty"`
	StatisticsMetadata    datatypes.JSON `gorm:"column:statistics_metadata;type:jsonb" json:"statistics_metadata"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (RequestStatistics) TableName() string { return "request_statistics" }
