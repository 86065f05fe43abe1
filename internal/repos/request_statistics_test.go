package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/marketlens-backend/internal/repos/testutil"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func TestRequestStatisticsRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewRequestStatisticsRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "requeststats@example.com")
	p := testutil.SeedProject(t, ctx, tx, u.ID)
	r := testutil.SeedRequest(t, ctx, tx, p.ID, u.ID)

	if row, err := repo.FindByProjectID(ctx, tx, p.ID); err != nil || row != nil {
		t.Fatalf("FindByProjectID before insert: err=%v row=%+v", err, row)
	}

	now := time.Now().UTC()
	stat := &types.RequestStatistics{
		ID:                 uuid.New(),
		ProjectID:          p.ID,
		RequestID:          r.ID,
		LastActivityAt:     &now,
		StatisticsMetadata: datatypes.JSON([]byte("{}")),
	}
	if _, err := repo.Create(ctx, tx, []*types.RequestStatistics{stat}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{stat.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}

	found, err := repo.FindByProjectID(ctx, tx, p.ID)
	if err != nil || found == nil {
		t.Fatalf("FindByProjectID: err=%v found=%v", err, found)
	}
	if found.ID != stat.ID {
		t.Fatalf("FindByProjectID returned wrong row")
	}

	updated, err := repo.UpdateFields(ctx, tx, stat.ID, map[string]interface{}{
		"total_requests":   3,
		"pending_requests": 2,
	})
	if err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if updated.TotalRequests != 3 || updated.PendingRequests != 2 {
		t.Fatalf("UpdateFields did not persist counters: %+v", updated)
	}
}
