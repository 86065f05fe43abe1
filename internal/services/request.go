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

const maxRequestTitleLen = 255

type CreateRequestInput struct {
	ProjectID   uuid.UUID
	Title       string
	Description string
	TimeRange   *types.TimeRange
	Priority    string
	Status      string
	CreatedBy   uuid.UUID
}

type RequestService interface {
	CreateRequest(ctx context.Context, tx *gorm.DB, in CreateRequestInput) (*types.Request, error)
	GetRequestByID(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) (*types.Request, error)
	ListRequestsByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Request, error)
}

type requestService struct {
	db          *gorm.DB
	log         *logger.Logger
	requestRepo repos.RequestRepo
}

func NewRequestService(db *gorm.DB, baseLog *logger.Logger, requestRepo repos.RequestRepo) RequestService {
	serviceLog := baseLog.With("service", "RequestService")
	return &requestService{db: db, log: serviceLog, requestRepo: requestRepo}
}

func (s *requestService) CreateRequest(ctx context.Context, tx *gorm.DB, in CreateRequestInput) (*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: request title is required", ErrValidation)
	}
	if len(title) > maxRequestTitleLen {
		return nil, fmt.Errorf("%w: request title exceeds %d characters", ErrValidation, maxRequestTitleLen)
	}
	if in.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	if in.CreatedBy == uuid.Nil {
		return nil, fmt.Errorf("%w: request creator is required", ErrValidation)
	}

	priority := in.Priority
	if priority == "" {
		priority = types.RequestPriorityMedium
	}
	switch priority {
	case types.RequestPriorityLow, types.RequestPriorityMedium, types.RequestPriorityHigh:
	default:
		return nil, fmt.Errorf("%w: invalid priority %q", ErrValidation, priority)
	}

	status := in.Status
	if status == "" {
		status = types.RequestStatusPending
	}

	timeRange := datatypes.JSON([]byte("{}"))
	if in.TimeRange != nil {
		raw, err := json.Marshal(in.TimeRange)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid time range", ErrValidation)
		}
		timeRange = datatypes.JSON(raw)
	}

	now := time.Now().UTC()
	request := &types.Request{
		ID:          uuid.New(),
		ProjectID:   in.ProjectID,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		TimeRange:   timeRange,
		Priority:    priority,
		Status:      status,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.requestRepo.Create(ctx, transaction, []*types.Request{request}); err != nil {
		s.log.Error("CreateRequest failed", "error", err, "project_id", in.ProjectID)
		return nil, fmt.Errorf("create request: %w", err)
	}
	return request, nil
}

func (s *requestService) GetRequestByID(ctx context.Context, tx *gorm.DB, requestID uuid.UUID) (*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrValidation)
	}

	requests, err := s.requestRepo.GetByIDs(ctx, transaction, []uuid.UUID{requestID})
	if err != nil {
		s.log.Error("GetRequestByID failed", "error", err, "request_id", requestID)
		return nil, fmt.Errorf("get request: %w", err)
	}
	if len(requests) == 0 || requests[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, requestID)
	}
	return requests[0], nil
}

func (s *requestService) ListRequestsByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Request, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrValidation)
	}
	requests, err := s.requestRepo.GetByProjectIDs(ctx, transaction, []uuid.UUID{projectID})
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}
