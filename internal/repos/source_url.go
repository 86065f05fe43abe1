package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type SourceURLRepo interface {
	Create(ctx context.Context, tx *gorm.DB, urls []*types.SourceURL) ([]*types.SourceURL, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, urlIDs []uuid.UUID) ([]*types.SourceURL, error)
	GetByRequestIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.SourceURL, error)
}

type sourceURLRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSourceURLRepo(db *gorm.DB, baseLog *logger.Logger) SourceURLRepo {
	repoLog := baseLog.With("repo", "SourceURLRepo")
	return &sourceURLRepo{db: db, log: repoLog}
}

func (r *sourceURLRepo) Create(ctx context.Context, tx *gorm.DB, urls []*types.SourceURL) ([]*types.SourceURL, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(urls) == 0 {
		return []*types.SourceURL{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *sourceURLRepo) GetByIDs(ctx context.Context, tx *gorm.DB, urlIDs []uuid.UUID) ([]*types.SourceURL, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SourceURL
	if len(urlIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", urlIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *sourceURLRepo) GetByRequestIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.SourceURL, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SourceURL
	if len(requestIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
