package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type CreateSourceURLInput struct {
	RequestID     uuid.UUID
	URL           string
	SourceName    string
	SourceType    string
	CountryRegion string
	IsActive      bool
	URLMetadata   map[string]interface{}
}

type SourceURLService interface {
	CreateSourceURL(ctx context.Context, tx *gorm.DB, in CreateSourceURLInput) (*types.SourceURL, error)
	ListSourceURLsByRequest(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) ([]*types.SourceURL, error)
}

type sourceURLService struct {
	db      *gorm.DB
	log     *logger.Logger
	urlRepo repos.SourceURLRepo
}

func NewSourceURLService(db *gorm.DB, baseLog *logger.Logger, urlRepo repos.SourceURLRepo) SourceURLService {
	serviceLog := baseLog.With("service", "SourceURLService")
	return &sourceURLService{db: db, log: serviceLog, urlRepo: urlRepo}
}

func (s *sourceURLService) CreateSourceURL(ctx context.Context, tx *gorm.DB, in CreateSourceURLInput) (*types.SourceURL, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	rawURL := strings.TrimSpace(in.URL)
	if rawURL == "" {
		return nil, fmt.Errorf("%w: url is required", ErrValidation)
	}
	if in.RequestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}

	metadata := datatypes.JSON([]byte("{}"))
	if in.URLMetadata != nil {
		raw, err := json.Marshal(in.URLMetadata)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid url metadata", ErrValidation)
		}
		metadata = datatypes.JSON(raw)
	}

	now := time.Now().UTC()
	row := &types.SourceURL{
		ID:            uuid.New(),
		RequestID:     in.RequestID,
		URL:           rawURL,
		SourceName:    strings.TrimSpace(in.SourceName),
		SourceType:    strings.TrimSpace(in.SourceType),
		CountryRegion: strings.TrimSpace(in.CountryRegion),
		IsActive:      in.IsActive,
		URLMetadata:   metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.urlRepo.Create(ctx, transaction, []*types.SourceURL{row}); err != nil {
		s.log.Error("CreateSourceURL failed", "error", err, "request_id", in.RequestID, "url", rawURL)
		return nil, fmt.Errorf("create source url: %w", err)
	}
	return row, nil
}

func (s *sourceURLService) ListSourceURLsByRequest(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) ([]*types.SourceURL, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	urls, err := s.urlRepo.GetByRequestIDs(ctx, transaction, []uuid.UUID{requestID})
	if err != nil {
		return nil, fmt.Errorf("list source urls: %w", err)
	}
	return urls, nil
}
