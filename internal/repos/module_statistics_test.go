package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/marketlens-backend/internal/repos/testutil"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func TestModuleStatisticsRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewModuleStatisticsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "modulestats@example.com")
	p := testutil.SeedProject(t, ctx, tx, u.ID)
	r := testutil.SeedRequest(t, ctx, tx, p.ID, u.ID)

	if row, err := repo.FindByProjectID(ctx, tx, p.ID); err != nil || row != nil {
		t.Fatalf("FindByProjectID before insert: err=%v row=%+v", err, row)
	}

	stat := &types.ModuleStatistics{
		ID:        uuid.New(),
		ProjectID: p.ID,
		RequestID: r.ID,
	}
	if _, err := repo.Create(ctx, tx, []*types.ModuleStatistics{stat}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{stat.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}

	found, err := repo.FindByProjectID(ctx, tx, p.ID)
	if err != nil || found == nil || found.ID != stat.ID {
		t.Fatalf("FindByProjectID: err=%v found=%+v", err, found)
	}

	updated, err := repo.UpdateFields(ctx, tx, stat.ID, map[string]interface{}{"total_insights": 5})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.TotalInsights != 5 {
		t.Fatalf("UpdateFields did not persist total_insights: %+v", updated)
	}
}
