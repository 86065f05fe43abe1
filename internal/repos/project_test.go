package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/marketlens-backend/internal/repos/testutil"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func TestProjectRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewProjectRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "projectrepo@example.com")
	p := &types.Project{
		ID:              uuid.New(),
		Name:            "battery market",
		CreatedBy:       u.ID,
		Status:          types.ProjectStatusActive,
		ProjectMetadata: datatypes.JSON([]byte("{}")),
		ModuleConfig:    datatypes.JSON([]byte("{}")),
	}
	if _, err := repo.Create(ctx, tx, []*types.Project{p}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{p.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByCreatedBy(ctx, tx, []uuid.UUID{u.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByCreatedBy: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.GetByStatus(ctx, tx, types.ProjectStatusActive, 10); err != nil || len(rows) == 0 {
		t.Fatalf("GetByStatus: err=%v len=%d", err, len(rows))
	}

	exists, err := repo.Exists(ctx, tx, p.ID)
	if err != nil || !exists {
		t.Fatalf("Exists: err=%v exists=%v", err, exists)
	}
	exists, err = repo.Exists(ctx, tx, uuid.New())
	if err != nil || exists {
		t.Fatalf("Exists for unknown id: err=%v exists=%v", err, exists)
	}

	updated, err := repo.UpdateFields(ctx, tx, p.ID, map[string]interface{}{"status": types.ProjectStatusArchived})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.Status != types.ProjectStatusArchived {
		t.Fatalf("UpdateFields did not persist status, got %q", updated.Status)
	}
}
