package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/services"
)

type ProjectHandler struct {
	log            *logger.Logger
	projectService services.ProjectService
	requestService services.RequestService
	requestStats   services.RequestStatisticsService
	moduleStats    services.ModuleStatisticsService
}

func NewProjectHandler(
	log *logger.Logger,
	projectService services.ProjectService,
	requestService services.RequestService,
	requestStats services.RequestStatisticsService,
	moduleStats services.ModuleStatisticsService,
) *ProjectHandler {
	return &ProjectHandler{
		log:            log.With("handler", "ProjectHandler"),
		projectService: projectService,
		requestService: requestService,
		requestStats:   requestStats,
		moduleStats:    moduleStats,
	}
}

type createProjectBody struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description,omitempty"`
	CreatedBy       string                 `json:"created_by"`
	Status          string                 `json:"status,omitempty"`
	ProjectMetadata map[string]interface{} `json:"project_metadata,omitempty"`
	ModuleConfig    map[string]interface{} `json:"module_config,omitempty"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var body createProjectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	createdBy, err := uuid.Parse(body.CreatedBy)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "created_by must be a valid UUID", err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), nil, services.CreateProjectInput{
		Name:            body.Name,
		Description:     body.Description,
		CreatedBy:       createdBy,
		Status:          body.Status,
		ProjectMetadata: body.ProjectMetadata,
		ModuleConfig:    body.ModuleConfig,
	})
	if err != nil {
		h.log.Error("Create failed", "error", err, "name", body.Name)
		RespondServiceError(c, "project creation failed", err)
		return
	}
	RespondCreated(c, "project created", gin.H{"project": project})
}

func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "project id must be a valid UUID", err)
		return
	}
	project, err := h.projectService.GetProjectByID(c.Request.Context(), nil, projectID)
	if err != nil {
		RespondServiceError(c, "project lookup failed", err)
		return
	}
	RespondOK(c, "project found", gin.H{"project": project})
}

func (h *ProjectHandler) List(c *gin.Context) {
	var createdBy uuid.UUID
	if raw := c.Query("created_by"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "created_by must be a valid UUID", err)
			return
		}
		createdBy = id
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), nil, c.Query("status"), createdBy, limit)
	if err != nil {
		h.log.Error("List failed", "error", err)
		RespondServiceError(c, "project listing failed", err)
		return
	}
	RespondOK(c, "projects listed", gin.H{"projects": projects, "count": len(projects)})
}

// GetStatistics returns both statistics rows tracked for a project. Either
// row may be null when no orchestration has initialized it yet.
func (h *ProjectHandler) GetStatistics(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "project id must be a valid UUID", err)
		return
	}
	if _, err := h.projectService.GetProjectByID(c.Request.Context(), nil, projectID); err != nil {
		RespondServiceError(c, "project lookup failed", err)
		return
	}

	requestStats, err := h.requestStats.FindByProjectID(c.Request.Context(), nil, projectID)
	if err != nil {
		h.log.Error("GetStatistics failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "statistics lookup failed", err)
		return
	}
	moduleStats, err := h.moduleStats.FindByProjectID(c.Request.Context(), nil, projectID)
	if err != nil {
		h.log.Error("GetStatistics failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "statistics lookup failed", err)
		return
	}
	RespondOK(c, "statistics found", gin.H{
		"request_statistics": requestStats,
		"module_statistics":  moduleStats,
	})
}

func (h *ProjectHandler) ListRequests(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "project id must be a valid UUID", err)
		return
	}
	if _, err := h.projectService.GetProjectByID(c.Request.Context(), nil, projectID); err != nil {
		RespondServiceError(c, "project lookup failed", err)
		return
	}
	requests, err := h.requestService.ListRequestsByProject(c.Request.Context(), nil, projectID)
	if err != nil {
		h.log.Error("ListRequests failed", "error", err, "project_id", projectID)
		RespondServiceError(c, "request listing failed", err)
		return
	}
	RespondOK(c, "requests listed", gin.H{"requests": requests, "count": len(requests)})
}
