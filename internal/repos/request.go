package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type RequestRepo interface {
	Create(ctx context.Context, tx *gorm.DB, requests []*types.Request) ([]*types.Request, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.Request, error)
	GetByProjectIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.Request, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, fields map[string]interface{}) (*types.Request, error)
}

type requestRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRequestRepo(db *gorm.DB, baseLog *logger.Logger) RequestRepo {
	repoLog := baseLog.With("repo", "RequestRepo")
	return &requestRepo{db: db, log: repoLog}
}

func (r *requestRepo) Create(ctx context.Context, tx *gorm.DB, requests []*types.Request) ([]*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(requests) == 0 {
		return []*types.Request{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepo) GetByIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Request
	if len(requestIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", requestIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *requestRepo) GetByProjectIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Request
	if len(projectIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *requestRepo) UpdateFields(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, fields map[string]interface{}) (*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Request{}).
		Where("id = ?", requestID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var result types.Request
	if err := transaction.WithContext(ctx).
		Where("id = ?", requestID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
