package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/events"
	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/types"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 2000
)

// Item kinds used in per-item failure records.
const (
	ItemKindKeyword      = "keyword"
	ItemKindSourceURL    = "source_url"
	ItemKindRequestStats = "request_statistics"
	ItemKindModuleStats  = "module_statistics"
)

type BaseURLInput struct {
	SourceType    string                 `json:"source_type"`
	SourceName    string                 `json:"source_name"`
	URL           string                 `json:"url"`
	CountryRegion string                 `json:"country_region,omitempty"`
	IsActive      *bool                  `json:"is_active,omitempty"`
	URLMetadata   map[string]interface{} `json:"url_metadata,omitempty"`
}

// CreateProjectRequestInput is the orchestrator's typed input. ProjectID and
// CreatedBy arrive as UUID-shaped strings straight from the request adapter;
// the orchestrator owns their syntactic validation so nothing is written on a
// malformed id.
type CreateProjectRequestInput struct {
	ProjectID   string           `json:"project_id,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	TimeRange   *types.TimeRange `json:"time_range,omitempty"`
	Priority    string           `json:"priority,omitempty"`
	CreatedBy   string           `json:"created_by"`
	Keywords    []string         `json:"keywords,omitempty"`
	BaseURLs    []BaseURLInput   `json:"base_urls,omitempty"`
}

// ItemFailure records one optional step that failed without aborting the run.
// Position is the 1-based position of the item in the input list; it is zero
// for statistics failures, which are not list items.
type ItemFailure struct {
	Kind     string `json:"kind"`
	Position int    `json:"position,omitempty"`
	Value    string `json:"value,omitempty"`
	Reason   string `json:"reason"`
}

// ProjectRequestResult aggregates everything one orchestration run produced.
// Keywords and SourceURLs preserve the relative order of their inputs.
type ProjectRequestResult struct {
	Project           *types.Project           `json:"project"`
	Request           *types.Request           `json:"request"`
	Keywords          []*types.Keyword         `json:"keywords"`
	SourceURLs        []*types.SourceURL       `json:"source_urls"`
	RequestStatistics *types.RequestStatistics `json:"request_statistics,omitempty"`
	ModuleStatistics  *types.ModuleStatistics  `json:"module_statistics,omitempty"`
	Failures          []ItemFailure            `json:"failures"`
	OrchestrationID   string                   `json:"orchestration_id"`
	CreatedAt         time.Time                `json:"created_at"`
}

// ProjectRequestOrchestrator sequences the creation of a request with its
// dependent entities across the entity services:
//
//	project (created or verified) -> request -> keywords -> source urls -> statistics
//
// Failures on the project and request steps abort the run; failures on
// individual keywords, urls and statistics rows are collected in the result
// and the run keeps going. There is no compensating rollback: whatever was
// created before a required step failed stays in the store.
type ProjectRequestOrchestrator interface {
	CreateProjectRequest(ctx context.Context, in CreateProjectRequestInput) (*ProjectRequestResult, error)
}

type projectRequestOrchestrator struct {
	db           *gorm.DB
	log          *logger.Logger
	projects     ProjectService
	requests     RequestService
	keywords     KeywordService
	sourceURLs   SourceURLService
	requestStats RequestStatisticsService
	moduleStats  ModuleStatisticsService
	bus          events.Bus
}

func NewProjectRequestOrchestrator(
	db *gorm.DB,
	baseLog *logger.Logger,
	projects ProjectService,
	requests RequestService,
	keywords KeywordService,
	sourceURLs SourceURLService,
	requestStats RequestStatisticsService,
	moduleStats ModuleStatisticsService,
	bus events.Bus,
) ProjectRequestOrchestrator {
	return &projectRequestOrchestrator{
		db:           db,
		log:          baseLog.With("service", "ProjectRequestOrchestrator"),
		projects:     projects,
		requests:     requests,
		keywords:     keywords,
		sourceURLs:   sourceURLs,
		requestStats: requestStats,
		moduleStats:  moduleStats,
		bus:          bus,
	}
}

// newOrchestrationID mints the short correlator tagged onto every log line and
// the final result. It is never persisted on any entity.
func newOrchestrationID() string {
	return uuid.New().String()[:8]
}

type validatedInput struct {
	projectID uuid.UUID // uuid.Nil in new-project mode
	createdBy uuid.UUID
	title     string
}

func (o *projectRequestOrchestrator) validate(in CreateProjectRequestInput) (validatedInput, error) {
	var v validatedInput

	v.title = strings.TrimSpace(in.Title)
	if v.title == "" {
		return v, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if len(v.title) > maxTitleLen {
		return v, fmt.Errorf("%w: title exceeds %d characters", ErrValidation, maxTitleLen)
	}
	if len(in.Description) > maxDescriptionLen {
		return v, fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLen)
	}

	createdBy, err := uuid.Parse(strings.TrimSpace(in.CreatedBy))
	if err != nil || createdBy == uuid.Nil {
		return v, fmt.Errorf("%w: created_by must be a valid UUID", ErrValidation)
	}
	v.createdBy = createdBy

	if raw := strings.TrimSpace(in.ProjectID); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil || projectID == uuid.Nil {
			return v, fmt.Errorf("%w: project_id must be a valid UUID", ErrValidation)
		}
		v.projectID = projectID
	}

	switch in.Priority {
	case "", types.RequestPriorityLow, types.RequestPriorityMedium, types.RequestPriorityHigh:
	default:
		return v, fmt.Errorf("%w: invalid priority %q", ErrValidation, in.Priority)
	}

	return v, nil
}

func (o *projectRequestOrchestrator) CreateProjectRequest(ctx context.Context, in CreateProjectRequestInput) (*ProjectRequestResult, error) {
	// Validation happens before the orchestration id is minted: a rejected
	// input never appears in the run logs as a started run.
	v, err := o.validate(in)
	if err != nil {
		o.log.Warn("Orchestration input rejected", "error", err)
		return nil, err
	}

	orchestrationID := newOrchestrationID()
	runLog := o.log.With("orchestration_id", orchestrationID)

	result := &ProjectRequestResult{
		Keywords:        []*types.Keyword{},
		SourceURLs:      []*types.SourceURL{},
		Failures:        []ItemFailure{},
		OrchestrationID: orchestrationID,
		CreatedAt:       time.Now().UTC(),
	}

	existingProject := v.projectID != uuid.Nil
	runLog.Info("Starting project request orchestration",
		"step", "start", "mode", orchestrationMode(existingProject), "created_by", v.createdBy)

	// Step 1: create or verify the project. Both are required steps.
	if existingProject {
		project, err := o.projects.GetProjectByID(ctx, nil, v.projectID)
		if err != nil {
			runLog.Error("Project verification failed", "step", "verify_project", "project_id", v.projectID, "error", err)
			return nil, fmt.Errorf("verify project: %w", err)
		}
		result.Project = project
		runLog.Info("Project verified", "step", "verify_project", "project_id", project.ID)
	} else {
		project, err := o.projects.CreateProject(ctx, nil, CreateProjectInput{
			Name:        v.title,
			Description: in.Description,
			CreatedBy:   v.createdBy,
			Status:      types.ProjectStatusActive,
			ProjectMetadata: map[string]interface{}{
				"source":   "project_request_creation",
				"priority": priorityOrDefault(in.Priority),
			},
		})
		if err != nil {
			runLog.Error("Project creation failed", "step", "create_project", "error", err)
			return nil, fmt.Errorf("create project: %w", err)
		}
		result.Project = project
		runLog.Info("Project created", "step", "create_project", "project_id", project.ID)
	}

	// Step 2: create the request. Required; a failure here leaves the
	// freshly created project in place (accepted inconsistency).
	request, err := o.requests.CreateRequest(ctx, nil, CreateRequestInput{
		ProjectID:   result.Project.ID,
		Title:       v.title,
		Description: in.Description,
		TimeRange:   in.TimeRange,
		Priority:    in.Priority,
		CreatedBy:   v.createdBy,
	})
	if err != nil {
		runLog.Error("Request creation failed", "step", "create_request", "project_id", result.Project.ID, "error", err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	result.Request = request
	runLog.Info("Request created", "step", "create_request", "request_id", request.ID)

	// Step 3: keywords, one at a time, input order preserved.
	o.createKeywords(ctx, runLog, in.Keywords, request.ID, result)

	// Step 4: source urls, same per-item contract.
	o.createSourceURLs(ctx, runLog, in.BaseURLs, request.ID, result)

	// Steps 5-6: statistics. Failures here are recorded, not fatal.
	o.initStatistics(ctx, runLog, existingProject, result)

	runLog.Info("Orchestration completed",
		"step", "done",
		"project_id", result.Project.ID,
		"request_id", request.ID,
		"keywords", len(result.Keywords),
		"source_urls", len(result.SourceURLs),
		"failures", len(result.Failures))

	o.publishCompleted(ctx, runLog, result)

	return result, nil
}

func (o *projectRequestOrchestrator) createKeywords(ctx context.Context, runLog *logger.Logger, keywords []string, requestID uuid.UUID, result *ProjectRequestResult) {
	runLog.Info("Creating keywords", "step", "create_keywords", "count", len(keywords))
	for i, raw := range keywords {
		if strings.TrimSpace(raw) == "" {
			runLog.Warn("Skipping blank keyword", "step", "create_keywords", "position", i+1)
			continue
		}
		kw, err := o.keywords.CreateKeyword(ctx, nil, requestID, raw, types.KeywordTypeUserDefined)
		if err != nil {
			runLog.Error("Keyword creation failed", "step", "create_keywords", "position", i+1, "keyword", raw, "error", err)
			result.Failures = append(result.Failures, ItemFailure{
				Kind:     ItemKindKeyword,
				Position: i + 1,
				Value:    raw,
				Reason:   err.Error(),
			})
			continue
		}
		result.Keywords = append(result.Keywords, kw)
		runLog.Debug("Keyword created", "step", "create_keywords", "position", i+1, "keyword_id", kw.ID)
	}
	runLog.Info("Keywords step completed", "step", "create_keywords", "created", len(result.Keywords), "requested", len(keywords))
}

func (o *projectRequestOrchestrator) createSourceURLs(ctx context.Context, runLog *logger.Logger, baseURLs []BaseURLInput, requestID uuid.UUID, result *ProjectRequestResult) {
	runLog.Info("Creating source urls", "step", "create_source_urls", "count", len(baseURLs))
	for i, in := range baseURLs {
		if strings.TrimSpace(in.URL) == "" {
			runLog.Warn("Skipping blank source url", "step", "create_source_urls", "position", i+1)
			continue
		}
		isActive := true
		if in.IsActive != nil {
			isActive = *in.IsActive
		}
		su, err := o.sourceURLs.CreateSourceURL(ctx, nil, CreateSourceURLInput{
			RequestID:     requestID,
			URL:           in.URL,
			SourceName:    in.SourceName,
			SourceType:    in.SourceType,
			CountryRegion: in.CountryRegion,
			IsActive:      isActive,
			URLMetadata:   in.URLMetadata,
		})
		if err != nil {
			runLog.Error("Source url creation failed", "step", "create_source_urls", "position", i+1, "url", in.URL, "error", err)
			result.Failures = append(result.Failures, ItemFailure{
				Kind:     ItemKindSourceURL,
				Position: i + 1,
				Value:    in.URL,
				Reason:   err.Error(),
			})
			continue
		}
		result.SourceURLs = append(result.SourceURLs, su)
		runLog.Debug("Source url created", "step", "create_source_urls", "position", i+1, "source_url_id", su.ID)
	}
	runLog.Info("Source urls step completed", "step", "create_source_urls", "created", len(result.SourceURLs), "requested", len(baseURLs))
}

// initStatistics creates the two statistics rows for the request. In
// existing-project mode a prior request-statistics row for the project is
// bumped instead of creating a second one, and a prior module-statistics row
// is reused untouched.
func (o *projectRequestOrchestrator) initStatistics(ctx context.Context, runLog *logger.Logger, existingProject bool, result *ProjectRequestResult) {
	projectID := result.Project.ID
	requestID := result.Request.ID

	if existingProject {
		stats, err := o.requestStats.FindByProjectID(ctx, nil, projectID)
		if err != nil {
			runLog.Warn("Request statistics lookup failed, creating fresh row", "step", "init_request_statistics", "error", err)
		}
		if stats != nil {
			now := time.Now().UTC()
			updated, err := o.requestStats.UpdateFields(ctx, nil, stats.ID, map[string]interface{}{
				"total_requests":   stats.TotalRequests + 1,
				"pending_requests": stats.PendingRequests + 1,
				"last_activity_at": now,
			})
			if err != nil {
				runLog.Error("Request statistics update failed", "step", "init_request_statistics", "stat_id", stats.ID, "error", err)
				result.Failures = append(result.Failures, ItemFailure{Kind: ItemKindRequestStats, Reason: err.Error()})
			} else {
				result.RequestStatistics = updated
				runLog.Info("Request statistics updated", "step", "init_request_statistics", "stat_id", updated.ID)
			}
		} else {
			o.createRequestStats(ctx, runLog, projectID, requestID, result)
		}

		moduleStats, err := o.moduleStats.FindByProjectID(ctx, nil, projectID)
		if err != nil {
			runLog.Warn("Module statistics lookup failed, creating fresh row", "step", "init_module_statistics", "error", err)
		}
		if moduleStats != nil {
			result.ModuleStatistics = moduleStats
			runLog.Info("Module statistics reused", "step", "init_module_statistics", "stat_id", moduleStats.ID)
		} else {
			o.createModuleStats(ctx, runLog, projectID, requestID, result)
		}
		return
	}

	o.createRequestStats(ctx, runLog, projectID, requestID, result)
	o.createModuleStats(ctx, runLog, projectID, requestID, result)
}

func (o *projectRequestOrchestrator) createRequestStats(ctx context.Context, runLog *logger.Logger, projectID, requestID uuid.UUID, result *ProjectRequestResult) {
	stats, err := o.requestStats.CreateZeroed(ctx, nil, projectID, requestID)
	if err != nil {
		runLog.Error("Request statistics creation failed", "step", "init_request_statistics", "error", err)
		result.Failures = append(result.Failures, ItemFailure{Kind: ItemKindRequestStats, Reason: err.Error()})
		return
	}
	result.RequestStatistics = stats
	runLog.Info("Request statistics created", "step", "init_request_statistics", "stat_id", stats.ID)
}

func (o *projectRequestOrchestrator) createModuleStats(ctx context.Context, runLog *logger.Logger, projectID, requestID uuid.UUID, result *ProjectRequestResult) {
	stats, err := o.moduleStats.CreateZeroed(ctx, nil, projectID, requestID)
	if err != nil {
		runLog.Error("Module statistics creation failed", "step", "init_module_statistics", "error", err)
		result.Failures = append(result.Failures, ItemFailure{Kind: ItemKindModuleStats, Reason: err.Error()})
		return
	}
	result.ModuleStatistics = stats
	runLog.Info("Module statistics created", "step", "init_module_statistics", "stat_id", stats.ID)
}

// publishCompleted is fire-and-forget: downstream collectors poll anyway, the
// event just shortens their pickup latency.
func (o *projectRequestOrchestrator) publishCompleted(ctx context.Context, runLog *logger.Logger, result *ProjectRequestResult) {
	if o.bus == nil {
		return
	}
	ev := events.OrchestrationEvent{
		Event:           events.EventOrchestrationCompleted,
		OrchestrationID: result.OrchestrationID,
		ProjectID:       result.Project.ID.String(),
		RequestID:       result.Request.ID.String(),
		KeywordCount:    len(result.Keywords),
		SourceURLCount:  len(result.SourceURLs),
		OccurredAt:      time.Now().UTC(),
	}
	if err := o.bus.Publish(ctx, ev); err != nil {
		runLog.Warn("Failed to publish orchestration event", "step", "publish_event", "error", err)
	}
}

func orchestrationMode(existingProject bool) string {
	if existingProject {
		return "existing_project"
	}
	return "new_project"
}

func priorityOrDefault(priority string) string {
	if priority == "" {
		return types.RequestPriorityMedium
	}
	return priority
}
