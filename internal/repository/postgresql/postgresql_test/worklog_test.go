package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
	"github.com/workdesk/workdesk-backend-go/internal/repository/postgresql"
)

func TestWorkLogRepository_CreateAndGet(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewWorkLogRepository(db)
	userID := createTestUser(t, db, "Alice", "alice@example.com", "engineering")

	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, worklog.DailyWorkRecord{
		UserID:   userID,
		Date:     date,
		CheckIn:  &checkIn,
		WorkType: worklog.WorkTypeNormal,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.GetByUserAndDate(ctx, userID, date)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Alice", found.UserName)
	assert.Nil(t, found.CheckOut)

	missing, err := repo.GetByUserAndDate(ctx, userID, date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWorkLogRepository_UpdateClosesSession(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewWorkLogRepository(db)
	userID := createTestUser(t, db, "Alice", "alice@example.com", "engineering")

	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.June, 3, 18, 0, 0, 0, time.UTC)
	total := 540

	created, err := repo.Create(ctx, worklog.DailyWorkRecord{
		UserID:   userID,
		Date:     date,
		CheckIn:  &checkIn,
		WorkType: worklog.WorkTypeNormal,
	})
	require.NoError(t, err)

	created.CheckOut = &checkOut
	created.TotalMinutes = &total
	require.NoError(t, repo.Update(ctx, created))

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.TotalMinutes)
	assert.Equal(t, 540, *found.TotalMinutes)
}

func TestWorkLogRepository_ListByDateRangeFiltersDepartment(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)

	ctx := context.Background()
	repo := postgresql.NewWorkLogRepository(db)
	engID := createTestUser(t, db, "Alice", "alice@example.com", "engineering")
	salesID := createTestUser(t, db, "Bob", "bob@example.com", "sales")

	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	for _, userID := range []string{engID, salesID} {
		_, err := repo.Create(ctx, worklog.DailyWorkRecord{
			UserID:   userID,
			Date:     date,
			WorkType: worklog.WorkTypeRemote,
		})
		require.NoError(t, err)
	}

	all, err := repo.ListByDateRange(ctx, date, date, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	eng, err := repo.ListByDateRange(ctx, date, date, "engineering")
	require.NoError(t, err)
	require.Len(t, eng, 1)
	assert.Equal(t, engID, eng[0].UserID)
}
