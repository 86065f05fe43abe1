package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/types"
)

type fakeRequestRepo struct {
	created []*types.Request
}

func (f *fakeRequestRepo) Create(_ context.Context, _ *gorm.DB, requests []*types.Request) ([]*types.Request, error) {
	f.created = append(f.created, requests...)
	return requests, nil
}

func (f *fakeRequestRepo) GetByIDs(context.Context, *gorm.DB, []uuid.UUID) ([]*types.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) GetByProjectIDs(context.Context, *gorm.DB, []uuid.UUID) ([]*types.Request, error) {
	return nil, nil
}

func (f *fakeRequestRepo) UpdateFields(context.Context, *gorm.DB, uuid.UUID, map[string]interface{}) (*types.Request, error) {
	return nil, nil
}

func TestCreateRequestDefaults(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewRequestService(nil, testLogger(), repo)

	request, err := svc.CreateRequest(context.Background(), nil, CreateRequestInput{
		ProjectID: uuid.New(),
		Title:     "  padded title  ",
		CreatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if request.Title != "padded title" {
		t.Fatalf("title should be trimmed, got %q", request.Title)
	}
	if request.Priority != types.RequestPriorityMedium {
		t.Fatalf("priority should default to medium, got %q", request.Priority)
	}
	if request.Status != types.RequestStatusPending {
		t.Fatalf("status should default to pending, got %q", request.Status)
	}
	if string(request.TimeRange) != "{}" {
		t.Fatalf("time range should default to empty object, got %s", request.TimeRange)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.created))
	}
}

func TestCreateRequestTimeRange(t *testing.T) {
	repo := &fakeRequestRepo{}
	svc := NewRequestService(nil, testLogger(), repo)

	request, err := svc.CreateRequest(context.Background(), nil, CreateRequestInput{
		ProjectID: uuid.New(),
		Title:     "scoped scan",
		CreatedBy: uuid.New(),
		TimeRange: &types.TimeRange{DateRange: "last_quarter"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(request.TimeRange), "last_quarter") {
		t.Fatalf("time range not serialized: %s", request.TimeRange)
	}
}

func TestCreateRequestValidation(t *testing.T) {
	svc := NewRequestService(nil, testLogger(), &fakeRequestRepo{})

	cases := []struct {
		name string
		in   CreateRequestInput
	}{
		{"missing title", CreateRequestInput{ProjectID: uuid.New(), CreatedBy: uuid.New()}},
		{"title too long", CreateRequestInput{ProjectID: uuid.New(), CreatedBy: uuid.New(), Title: strings.Repeat("x", 256)}},
		{"missing project", CreateRequestInput{Title: "ok", CreatedBy: uuid.New()}},
		{"missing creator", CreateRequestInput{Title: "ok", ProjectID: uuid.New()}},
		{"bad priority", CreateRequestInput{Title: "ok", ProjectID: uuid.New(), CreatedBy: uuid.New(), Priority: "asap"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateRequest(context.Background(), nil, tc.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
