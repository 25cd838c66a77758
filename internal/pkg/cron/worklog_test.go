package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	open      []worklog.DailyWorkRecord
	updated   []worklog.DailyWorkRecord
	updateErr map[string]error
}

func (f *fakeWorkLogRepo) Create(ctx context.Context, record worklog.DailyWorkRecord) (worklog.DailyWorkRecord, error) {
	return record, nil
}

func (f *fakeWorkLogRepo) GetByID(ctx context.Context, id string) (worklog.DailyWorkRecord, error) {
	return worklog.DailyWorkRecord{}, worklog.ErrWorkRecordNotFound
}

func (f *fakeWorkLogRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*worklog.DailyWorkRecord, error) {
	return nil, nil
}

func (f *fakeWorkLogRepo) Update(ctx context.Context, record worklog.DailyWorkRecord) error {
	if err := f.updateErr[record.ID]; err != nil {
		return err
	}
	f.updated = append(f.updated, record)
	return nil
}

func (f *fakeWorkLogRepo) ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error) {
	return nil, nil
}

func (f *fakeWorkLogRepo) ListOpenSessions(ctx context.Context, before time.Time) ([]worklog.DailyWorkRecord, error) {
	return f.open, nil
}

func openSession(id string, date time.Time, checkIn time.Time) worklog.DailyWorkRecord {
	return worklog.DailyWorkRecord{
		ID:       id,
		UserID:   "u-" + id,
		Date:     date,
		WorkType: worklog.WorkTypeNormal,
		CheckIn:  &checkIn,
	}
}

func TestCloseDanglingSessions(t *testing.T) {
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)

	repo := &fakeWorkLogRepo{open: []worklog.DailyWorkRecord{
		openSession("rec-1", date, checkIn),
	}}

	err := CloseDanglingSessions(repo, "19:00")(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	rec := repo.updated[0]
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, 19, rec.CheckOut.Hour())
	assert.Equal(t, 0, rec.CheckOut.Minute())
	assert.Equal(t, date.Day(), rec.CheckOut.Day())
	require.NotNil(t, rec.TotalMinutes)
	assert.Equal(t, 600, *rec.TotalMinutes)
}

func TestCloseDanglingSessions_CheckInAfterDayEnd(t *testing.T) {
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 3, 22, 30, 0, 0, time.UTC)

	repo := &fakeWorkLogRepo{open: []worklog.DailyWorkRecord{
		openSession("rec-1", date, checkIn),
	}}

	err := CloseDanglingSessions(repo, "19:00")(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	rec := repo.updated[0]
	require.NotNil(t, rec.CheckOut)
	assert.True(t, rec.CheckOut.Equal(checkIn))
	require.NotNil(t, rec.TotalMinutes)
	assert.Equal(t, 0, *rec.TotalMinutes)
}

func TestCloseDanglingSessions_ContinuesPastUpdateFailure(t *testing.T) {
	date := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)

	repo := &fakeWorkLogRepo{
		open: []worklog.DailyWorkRecord{
			openSession("rec-1", date, checkIn),
			openSession("rec-2", date, checkIn),
		},
		updateErr: map[string]error{"rec-1": errors.New("boom")},
	}

	err := CloseDanglingSessions(repo, "19:00")(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Equal(t, "rec-2", repo.updated[0].ID)
}

func TestCloseDanglingSessions_RejectsInvalidDayEnd(t *testing.T) {
	repo := &fakeWorkLogRepo{}
	err := CloseDanglingSessions(repo, "25:00")(context.Background())
	assert.Error(t, err)
}
