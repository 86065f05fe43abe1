package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type RequestStatisticsService interface {
	// CreateZeroed inserts a fresh statistics row with every counter at zero,
	// linked to the request whose orchestration created it.
	CreateZeroed(ctx context.Context, tx *gorm.DB, projectID, requestID uuid.UUID) (*types.RequestStatistics, error)
	FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.RequestStatistics, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.RequestStatistics, error)
}

type requestStatisticsService struct {
	db        *gorm.DB
	log       *logger.Logger
	statsRepo repos.RequestStatisticsRepo
}

func NewRequestStatisticsService(db *gorm.DB, baseLog *logger.Logger, statsRepo repos.RequestStatisticsRepo) RequestStatisticsService {
	serviceLog := baseLog.With("service", "RequestStatisticsService")
	return &requestStatisticsService{db: db, log: serviceLog, statsRepo: statsRepo}
}

func (s *requestStatisticsService) CreateZeroed(ctx context.Context, tx *gorm.DB, projectID, requestID uuid.UUID) (*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}

	now := time.Now().UTC()
	row := &types.RequestStatistics{
		ID:                 uuid.New(),
		ProjectID:          projectID,
		RequestID:          requestID,
		LastActivityAt:     &now,
		StatisticsMetadata: datatypes.JSON([]byte(`{"created_by_orchestrator":true}`)),
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := s.statsRepo.Create(ctx, transaction, []*types.RequestStatistics{row}); err != nil {
		s.log.Error("CreateZeroed failed", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("create request statistics: %w", err)
	}
	return row, nil
}

func (s *requestStatisticsService) FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	row, err := s.statsRepo.FindByProjectID(ctx, transaction, projectID)
	if err != nil {
		return nil, fmt.Errorf("find request statistics: %w", err)
	}
	return row, nil
}

func (s *requestStatisticsService) UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if statID == uuid.Nil {
		return nil, fmt.Errorf("%w: statistics id is required", ErrValidation)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
	}
	row, err := s.statsRepo.UpdateFields(ctx, transaction, statID, fields)
	if err != nil {
		s.log.Error("UpdateFields failed", "error", err, "stat_id", statID)
		return nil, fmt.Errorf("update request statistics: %w", err)
	}
	return row, nil
}
