package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type RequestStatisticsRepo interface {
	Create(ctx context.Context, tx *gorm.DB, stats []*types.RequestStatistics) ([]*types.RequestStatistics, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, statIDs []uuid.UUID) ([]*types.RequestStatistics, error)
	// FindByProjectID returns the newest statistics row for the project, or
	// nil when none exists.
	FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.RequestStatistics, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.RequestStatistics, error)
}

type requestStatisticsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRequestStatisticsRepo(db *gorm.DB, baseLog *logger.Logger) RequestStatisticsRepo {
	repoLog := baseLog.With("repo", "RequestStatisticsRepo")
	return &requestStatisticsRepo{db: db, log: repoLog}
}

func (r *requestStatisticsRepo) Create(ctx context.Context, tx *gorm.DB, stats []*types.RequestStatistics) ([]*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(stats) == 0 {
		return []*types.RequestStatistics{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *requestStatisticsRepo) GetByIDs(ctx context.Context, tx *gorm.DB, statIDs []uuid.UUID) ([]*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RequestStatistics
	if len(statIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", statIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *requestStatisticsRepo) FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.RequestStatistics
	err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *requestStatisticsRepo) UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.RequestStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.RequestStatistics{}).
		Where("id = ?", statID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var result types.RequestStatistics
	if err := transaction.WithContext(ctx).
		Where("id = ?", statID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
