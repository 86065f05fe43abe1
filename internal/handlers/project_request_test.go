package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/middleware"
	"github.com/yungbote/marketlens-backend/internal/services"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeOrchestrator struct {
	result *services.ProjectRequestResult
	err    error
	lastIn services.CreateProjectRequestInput
}

func (f *fakeOrchestrator) CreateProjectRequest(_ context.Context, in services.CreateProjectRequestInput) (*services.ProjectRequestResult, error) {
	f.lastIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestRouter(orchestrator services.ProjectRequestOrchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	h := NewProjectRequestHandler(testLogger(), orchestrator)
	router.POST("/api/project-requests", h.Create)
	return router
}

func successResult() *services.ProjectRequestResult {
	projectID := uuid.New()
	requestID := uuid.New()
	return &services.ProjectRequestResult{
		Project:         &types.Project{ID: projectID, Name: "scan"},
		Request:         &types.Request{ID: requestID, ProjectID: projectID, Title: "scan"},
		Keywords:        []*types.Keyword{},
		SourceURLs:      []*types.SourceURL{},
		Failures:        []services.ItemFailure{},
		OrchestrationID: "ab12cd34",
		CreatedAt:       time.Now().UTC(),
	}
}

func TestProjectRequestCreate(t *testing.T) {
	fake := &fakeOrchestrator{result: successResult()}
	router := newTestRouter(fake)

	body := fmt.Sprintf(`{"title":"scan","created_by":%q,"keywords":["a","b"]}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/project-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("expected success status, got %q", resp.Status)
	}
	if resp.RequestID == "" {
		t.Fatalf("request id missing from envelope")
	}
	if w.Header().Get("X-Request-ID") != resp.RequestID {
		t.Fatalf("request id header and envelope disagree")
	}
	if len(fake.lastIn.Keywords) != 2 {
		t.Fatalf("keywords not passed through: %+v", fake.lastIn)
	}
}

func TestProjectRequestCreatePartialFailureMessage(t *testing.T) {
	result := successResult()
	result.Failures = []services.ItemFailure{{Kind: services.ItemKindKeyword, Position: 1, Reason: "insert failed"}}
	router := newTestRouter(&fakeOrchestrator{result: result})

	body := fmt.Sprintf(`{"title":"scan","created_by":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/project-requests", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("partial failure should still be 201, got %d", w.Code)
	}
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !strings.Contains(resp.Message, "partial failure") {
		t.Fatalf("message should mention partial failures, got %q", resp.Message)
	}
}

func TestProjectRequestCreateErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("%w: title is required", services.ErrValidation), http.StatusBadRequest},
		{"project not found", fmt.Errorf("verify project: %w", services.ErrProjectNotFound), http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&fakeOrchestrator{err: tc.err})

			body := fmt.Sprintf(`{"title":"scan","created_by":%q}`, uuid.New())
			req := httptest.NewRequest(http.MethodPost, "/api/project-requests", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body: %v", err)
			}
			if resp.Status != "error" {
				t.Fatalf("expected error status, got %q", resp.Status)
			}
		})
	}
}

func TestProjectRequestCreateBadBody(t *testing.T) {
	router := newTestRouter(&fakeOrchestrator{result: successResult()})

	req := httptest.NewRequest(http.MethodPost, "/api/project-requests", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", w.Code)
	}
}
