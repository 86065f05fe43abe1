package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type CreateProjectInput struct {
	Name            string
	Description     string
	CreatedBy       uuid.UUID
	Status          string
	ProjectMetadata map[string]interface{}
	ModuleConfig    map[string]interface{}
}

type ProjectService interface {
	CreateProject(ctx context.Context, tx *gorm.DB, in CreateProjectInput) (*types.Project, error)
	GetProjectByID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Project, error)
	ProjectExists(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (bool, error)
	ListProjects(ctx context.Context, tx *gorm.DB, status string, createdBy uuid.UUID, limit int) ([]*types.Project, error)
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, baseLog *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	serviceLog := baseLog.With("service", "ProjectService")
	return &projectService{db: db, log: serviceLog, projectRepo: projectRepo}
}

func (s *projectService) CreateProject(ctx context.Context, tx *gorm.DB, in CreateProjectInput) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if in.CreatedBy == uuid.Nil {
		return nil, fmt.Errorf("%w: project creator is required", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = types.ProjectStatusActive
	}
	if status != types.ProjectStatusActive && status != types.ProjectStatusArchived {
		return nil, fmt.Errorf("%w: invalid project status %q", ErrValidation, status)
	}

	now := time.Now().UTC()
	project := &types.Project{
		ID:              uuid.New(),
		Name:            name,
		Description:     strings.TrimSpace(in.Description),
		CreatedBy:       in.CreatedBy,
		Status:          status,
		ProjectMetadata: mustJSONMap(in.ProjectMetadata),
		ModuleConfig:    mustJSONMap(in.ModuleConfig),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.projectRepo.Create(ctx, transaction, []*types.Project{project}); err != nil {
		s.log.Error("CreateProject failed", "error", err, "name", name)
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}

	projects, err := s.projectRepo.GetByIDs(ctx, transaction, []uuid.UUID{projectID})
	if err != nil {
		s.log.Error("GetProjectByID failed", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("get project: %w", err)
	}
	if len(projects) == 0 || projects[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}
	return projects[0], nil
}

func (s *projectService) ProjectExists(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return false, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	exists, err := s.projectRepo.Exists(ctx, transaction, projectID)
	if err != nil {
		return false, fmt.Errorf("check project exists: %w", err)
	}
	return exists, nil
}

func (s *projectService) ListProjects(ctx context.Context, tx *gorm.DB, status string, createdBy uuid.UUID, limit int) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if createdBy != uuid.Nil {
		projects, err := s.projectRepo.GetByCreatedBy(ctx, transaction, []uuid.UUID{createdBy})
		if err != nil {
			return nil, fmt.Errorf("list projects by creator: %w", err)
		}
		if status != "" {
			filtered := projects[:0]
			for _, p := range projects {
				if p.Status == status {
					filtered = append(filtered, p)
				}
			}
			projects = filtered
		}
		if limit > 0 && len(projects) > limit {
			projects = projects[:limit]
		}
		return projects, nil
	}

	if status == "" {
		status = types.ProjectStatusActive
	}
	projects, err := s.projectRepo.GetByStatus(ctx, transaction, status, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects by status: %w", err)
	}
	return projects, nil
}

// mustJSONMap renders a map as jsonb, defaulting nil to an empty object so
// the column never stores SQL NULL.
func mustJSONMap(m map[string]interface{}) datatypes.JSON {
	if m == nil {
		return datatypes.JSON([]byte("{}"))
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}
