package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type ProjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.Project, error)
	GetByCreatedBy(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Project, error)
	GetByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]*types.Project, error)
	Exists(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (bool, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, fields map[string]interface{}) (*types.Project, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog}
}

func (r *projectRepo) Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(projects) == 0 {
		return []*types.Project{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) GetByIDs(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Project
	if len(projectIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", projectIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) GetByCreatedBy(ctx context.Context, tx *gorm.DB, userIDs []uuid.UUID) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Project
	if len(userIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("created_by IN ?", userIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) GetByStatus(ctx context.Context, tx *gorm.DB, status string, limit int) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Project
	query := transaction.WithContext(ctx).Where("status = ?", status)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) Exists(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Project{}).
		Where("id = ?", projectID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *projectRepo) UpdateFields(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, fields map[string]interface{}) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var result types.Project
	if err := transaction.WithContext(ctx).
		Where("id = ?", projectID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
