package types

import (
	"time"

	"github.com/google/uuid"
)

// KeywordTypeUserDefined tags keywords supplied by callers; pipeline-derived
// keywords get their own type tags later in the request lifecycle.
const KeywordTypeUserDefined = "user_defined"

type Keyword struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;index" json:"request_id"`
	Keyword     string    `gorm:"column:keyword;not null" json:"keyword"`
	KeywordType string    `gorm:"column:keyword_type;not null;default:user_defined" json:"keyword_type"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Keyword) TableName() string { return "keyword" }
