package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type KeywordService interface {
	CreateKeyword(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, keyword, keywordType string) (*types.Keyword, error)
	ListKeywordsByRequest(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) ([]*types.Keyword, error)
}

type keywordService struct {
	db          *gorm.DB
	log         *logger.Logger
	keywordRepo repos.KeywordRepo
}

func NewKeywordService(db *gorm.DB, baseLog *logger.Logger, keywordRepo repos.KeywordRepo) KeywordService {
	serviceLog := baseLog.With("service", "KeywordService")
	return &keywordService{db: db, log: serviceLog, keywordRepo: keywordRepo}
}

func (s *keywordService) CreateKeyword(ctx context.Context, tx *gorm.DB, requestID uuid.UUID, keyword, keywordType string) (*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword text is required", ErrValidation)
	}
	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	if keywordType == "" {
		keywordType = types.KeywordTypeUserDefined
	}

	now := time.Now().UTC()
	row := &types.Keyword{
		ID:          uuid.New(),
		RequestID:   requestID,
		Keyword:     keyword,
		KeywordType: keywordType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.keywordRepo.Create(ctx, transaction, []*types.Keyword{row}); err != nil {
		s.log.Error("CreateKeyword failed", "error", err, "request_id", requestID, "keyword", keyword)
		return nil, fmt.Errorf("create keyword: %w", err)
	}
	return row, nil
}

func (s *keywordService) ListKeywordsByRequest(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) ([]*types.Keyword, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}
	keywords, err := s.keywordRepo.GetByRequestIDs(ctx, transaction, []uuid.UUID{requestID})
	if err != nil {
		return nil, fmt.Errorf("list keywords: %w", err)
	}
	return keywords, nil
}
