package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type KeywordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, keywords []*types.Keyword) ([]*types.Keyword, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, keywordIDs []uuid.UUID) ([]*types.Keyword, error)
	GetByRequestIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.Keyword, error)
}

type keywordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewKeywordRepo(db *gorm.DB, baseLog *logger.Logger) KeywordRepo {
	repoLog := baseLog.With("repo", "KeywordRepo")
	return &keywordRepo{db: db, log: repoLog}
}

func (r *keywordRepo) Create(ctx context.Context, tx *gorm.DB, keywords []*types.Keyword) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(keywords) == 0 {
		return []*types.Keyword{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

func (r *keywordRepo) GetByIDs(ctx context.Context, tx *gorm.DB, keywordIDs []uuid.UUID) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Keyword
	if len(keywordIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", keywordIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *keywordRepo) GetByRequestIDs(ctx context.Context, tx *gorm.DB, requestIDs []uuid.UUID) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Keyword
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
