package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/services"
)

type ProjectRequestHandler struct {
	log          *logger.Logger
	orchestrator services.ProjectRequestOrchestrator
}

func NewProjectRequestHandler(log *logger.Logger, orchestrator services.ProjectRequestOrchestrator) *ProjectRequestHandler {
	return &ProjectRequestHandler{
		log:          log.With("handler", "ProjectRequestHandler"),
		orchestrator: orchestrator,
	}
}

// Create runs the full project request orchestration. When project_id is
// present in the body the request is attached to that project; otherwise a
// project is created from the request title.
func (h *ProjectRequestHandler) Create(c *gin.Context) {
	var in services.CreateProjectRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.orchestrator.CreateProjectRequest(c.Request.Context(), in)
	if err != nil {
		h.log.Error("Create failed", "error", err, "title", in.Title)
		RespondServiceError(c, "project request creation failed", err)
		return
	}

	message := "project request created"
	if n := len(result.Failures); n > 0 {
		message = fmt.Sprintf("project request created with %d partial failure(s)", n)
	}
	RespondCreated(c, message, result)
}
