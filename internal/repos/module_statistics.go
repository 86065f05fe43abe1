package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type ModuleStatisticsRepo interface {
	Create(ctx context.Context, tx *gorm.DB, stats []*types.ModuleStatistics) ([]*types.ModuleStatistics, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, statIDs []uuid.UUID) ([]*types.ModuleStatistics, error)
	FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.ModuleStatistics, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.ModuleStatistics, error)
}

type moduleStatisticsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewModuleStatisticsRepo(db *gorm.DB, baseLog *logger.Logger) ModuleStatisticsRepo {
	repoLog := baseLog.With("repo", "ModuleStatisticsRepo")
	return &moduleStatisticsRepo{db: db, log: repoLog}
}

func (r *moduleStatisticsRepo) Create(ctx context.Context, tx *gorm.DB, stats []*types.ModuleStatistics) ([]*types.ModuleStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(stats) == 0 {
		return []*types.ModuleStatistics{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *moduleStatisticsRepo) GetByIDs(ctx context.Context, tx *gorm.DB, statIDs []uuid.UUID) ([]*types.ModuleStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ModuleStatistics
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

func (r *moduleStatisticsRepo) FindByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.ModuleStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.ModuleStatistics
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

func (r *moduleStatisticsRepo) UpdateFields(ctx context.Context, tx *gorm.DB, statID uuid.UUID, fields map[string]interface{}) (*types.ModuleStatistics, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.ModuleStatistics{}).
		Where("id = ?", statID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var result types.ModuleStatistics
	if err := transaction.WithContext(ctx).
		Where("id = ?", statID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
