package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/types"
)

type fakeKeywordRepo struct {
	created []*types.Keyword
}

func (f *fakeKeywordRepo) Create(_ context.Context, _ *gorm.DB, keywords []*types.Keyword) ([]*types.Keyword, error) {
	f.created = append(f.created, keywords...)
	return keywords, nil
}

func (f *fakeKeywordRepo) GetByIDs(context.Context, *gorm.DB, []uuid.UUID) ([]*types.Keyword, error) {
	return nil, nil
}

func (f *fakeKeywordRepo) GetByRequestIDs(context.Context, *gorm.DB, []uuid.UUID) ([]*types.Keyword, error) {
	return nil, nil
}

func TestCreateKeyword(t *testing.T) {
	repo := &fakeKeywordRepo{}
	svc := NewKeywordService(nil, testLogger(), repo)

	kw, err := svc.CreateKeyword(context.Background(), nil, uuid.New(), "  solid state  ", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kw.Keyword != "solid state" {
		t.Fatalf("keyword should be trimmed, got %q", kw.Keyword)
	}
	if kw.KeywordType != types.KeywordTypeUserDefined {
		t.Fatalf("keyword type should default, got %q", kw.KeywordType)
	}
}

func TestCreateKeywordRejectsBlank(t *testing.T) {
	svc := NewKeywordService(nil, testLogger(), &fakeKeywordRepo{})

	if _, err := svc.CreateKeyword(context.Background(), nil, uuid.New(), "   ", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.CreateKeyword(context.Background(), nil, uuid.Nil, "ok", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing request id, got %v", err)
	}
}
