package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type ModuleStatisticsService interface {
	CreateZeroed(ctx context.Context, tx *gorm.DB, projectID, requestID uuid.UUID) (*types.ModuleStatistics, error)
	FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.ModuleStatistics, error)
}

type moduleStatisticsService struct {
	db        *gorm.DB
	log       *logger.Logger
	statsRepo repos.ModuleStatisticsRepo
}

func NewModuleStatisticsService(db *gorm.DB, baseLog *logger.Logger, statsRepo repos.ModuleStatisticsRepo) ModuleStatisticsService {
	serviceLog := baseLog.With("service", "ModuleStatisticsService")
	return &moduleStatisticsService{db: db, log: serviceLog, statsRepo: statsRepo}
}

func (s *moduleStatisticsService) CreateZeroed(ctx context.Context, tx *gorm.DB, projectID, requestID uuid.UUID) (*types.ModuleStatistics, error) {
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
	row := &types.ModuleStatistics{
		ID:        uuid.New(),
		ProjectID: projectID,
		RequestID: requestID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.statsRepo.Create(ctx, transaction, []*types.ModuleStatistics{row}); err != nil {
		s.log.Error("CreateZeroed failed", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("create module statistics: %w", err)
	}
	return row, nil
}

func (s *moduleStatisticsService) FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.ModuleStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	row, err := s.statsRepo.FindByProjectID(ctx, transaction, projectID)
	if err != nil {
		return nil, fmt.Errorf("find module statistics: %w", err)
	}
	return row, nil
}
