package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/marketlens-backend/internal/repos/testutil"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func TestRequestRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewRequestRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "requestrepo@example.com")
	p := testutil.SeedProject(t, ctx, tx, u.ID)

	r := &types.Request{
		ID:        uuid.New(),
		ProjectID: p.ID,
		Title:     "quarterly scan",
		TimeRange: datatypes.JSON([]byte(`{"date_range":"last_quarter"}`)),
		Priority:  types.RequestPriorityHigh,
		Status:    types.RequestStatusPending,
		CreatedBy: u.ID,
	}
	if _, err := repo.Create(ctx, tx, []*types.Request{r}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{r.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByProjectIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByProjectIDs: err=%v len=%d", err, len(rows))
	}

	updated, err := repo.UpdateFields(ctx, tx, r.ID, map[string]interface{}{"status": types.RequestStatusProcessing})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.Status != types.RequestStatusProcessing {
		t.Fatalf("UpdateFields did not persist status, got %q", updated.Status)
	}
}
