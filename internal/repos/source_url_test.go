package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/marketlens-backend/internal/repos/testutil"
	"github.com/yungbote/marketlens-backend/internal/types"
)

func TestSourceURLRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSourceURLRepo(db, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "sourceurlrepo@example.com")
	p := testutil.SeedProject(t, ctx, tx, u.ID)
	r := testutil.SeedRequest(t, ctx, tx, p.ID, u.ID)

	su := &types.SourceURL{
		ID:          uuid.New(),
		RequestID:   r.ID,
		URL:         "https://data.example.gov/reports",
		SourceName:  "example gov data",
		SourceType:  types.SourceTypeGovernment,
		IsActive:    true,
		URLMetadata: datatypes.JSON([]byte("{}")),
	}
	if _, err := repo.Create(ctx, tx, []*types.SourceURL{su}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if rows, err := repo.GetByIDs(ctx, tx, []uuid.UUID{su.ID}); err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	rows, err := repo.GetByRequestIDs(ctx, tx, []uuid.UUID{r.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByRequestIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].URL != su.URL {
		t.Fatalf("unexpected url %q", rows[0].URL)
	}
}
