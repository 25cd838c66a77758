package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	nextID  int
	byID    map[string]worklog.DailyWorkRecord
	updates int
}

func newFakeWorkLogRepo() *fakeWorkLogRepo {
	return &fakeWorkLogRepo{byID: make(map[string]worklog.DailyWorkRecord)}
}

func (f *fakeWorkLogRepo) Create(ctx context.Context, record worklog.DailyWorkRecord) (worklog.DailyWorkRecord, error) {
	f.nextID++
	record.ID = time.Now().Format("150405.000000") + string(rune('a'+f.nextID))
	f.byID[record.ID] = record
	return record, nil
}

func (f *fakeWorkLogRepo) GetByID(ctx context.Context, id string) (worklog.DailyWorkRecord, error) {
	record, ok := f.byID[id]
	if !ok {
		return worklog.DailyWorkRecord{}, worklog.ErrWorkRecordNotFound
	}
	return record, nil
}

func (f *fakeWorkLogRepo) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*worklog.DailyWorkRecord, error) {
	for _, record := range f.byID {
		if record.UserID == userID && record.Date.Equal(date) {
			r := record
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkLogRepo) Update(ctx context.Context, record worklog.DailyWorkRecord) error {
	if _, ok := f.byID[record.ID]; !ok {
		return worklog.ErrWorkRecordNotFound
	}
	f.updates++
	f.byID[record.ID] = record
	return nil
}

func (f *fakeWorkLogRepo) ListByDateRange(ctx context.Context, start, end time.Time, department string) ([]worklog.DailyWorkRecord, error) {
	var out []worklog.DailyWorkRecord
	for _, record := range f.byID {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeWorkLogRepo) ListOpenSessions(ctx context.Context, before time.Time) ([]worklog.DailyWorkRecord, error) {
	var out []worklog.DailyWorkRecord
	for _, record := range f.byID {
		if record.Open() && record.Date.Before(before) {
			out = append(out, record)
		}
	}
	return out, nil
}

func authedCtx(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestClockIn(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)

	got, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, string(worklog.WorkTypeNormal), got.WorkType)
	require.NotNil(t, got.CheckIn)
	assert.Nil(t, got.CheckOut)
}

func TestClockIn_TwiceSameDay(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)

	_, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	require.NoError(t, err)

	_, err = svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	assert.ErrorIs(t, err, worklog.ErrAlreadyCheckedIn)
}

func TestClockIn_UnknownWorkType(t *testing.T) {
	svc := NewWorkLogService(newFakeWorkLogRepo())

	_, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{WorkType: "sabbatical"})
	assert.Error(t, err)
}

func TestClockOut(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)
	ctx := authedCtx(t, "u1", "employee")

	_, err := svc.ClockIn(ctx, worklog.ClockInRequest{})
	require.NoError(t, err)

	got, err := svc.ClockOut(ctx, worklog.ClockOutRequest{})
	require.NoError(t, err)

	require.NotNil(t, got.CheckOut)
	require.NotNil(t, got.TotalMinutes)
	assert.GreaterOrEqual(t, *got.TotalMinutes, 0)
}

func TestClockOut_WithoutCheckIn(t *testing.T) {
	svc := NewWorkLogService(newFakeWorkLogRepo())

	_, err := svc.ClockOut(authedCtx(t, "u1", "employee"), worklog.ClockOutRequest{})
	assert.ErrorIs(t, err, worklog.ErrNotCheckedIn)
}

func TestClockOut_Twice(t *testing.T) {
	svc := NewWorkLogService(newFakeWorkLogRepo())
	ctx := authedCtx(t, "u1", "employee")

	_, err := svc.ClockIn(ctx, worklog.ClockInRequest{})
	require.NoError(t, err)
	_, err = svc.ClockOut(ctx, worklog.ClockOutRequest{})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, worklog.ClockOutRequest{})
	assert.ErrorIs(t, err, worklog.ErrAlreadyCheckedOut)
}

func TestUpdateWorkRecord(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)

	created, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	require.NoError(t, err)

	in := "09:00"
	out := "17:30"
	got, err := svc.UpdateWorkRecord(authedCtx(t, "admin", "admin"), worklog.UpdateWorkRecordRequest{
		ID:       created.ID,
		CheckIn:  &in,
		CheckOut: &out,
	})
	require.NoError(t, err)

	require.NotNil(t, got.TotalMinutes)
	assert.Equal(t, 510, *got.TotalMinutes)
}

func TestUpdateWorkRecord_AdminOnly(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)

	created, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	require.NoError(t, err)

	in := "09:00"
	_, err = svc.UpdateWorkRecord(authedCtx(t, "u1", "employee"), worklog.UpdateWorkRecordRequest{
		ID:      created.ID,
		CheckIn: &in,
	})
	assert.ErrorIs(t, err, worklog.ErrUnauthorized)
}

func TestUpdateWorkRecord_CheckOutBeforeCheckIn(t *testing.T) {
	repo := newFakeWorkLogRepo()
	svc := NewWorkLogService(repo)

	created, err := svc.ClockIn(authedCtx(t, "u1", "employee"), worklog.ClockInRequest{})
	require.NoError(t, err)

	in := "17:00"
	out := "09:00"
	_, err = svc.UpdateWorkRecord(authedCtx(t, "admin", "admin"), worklog.UpdateWorkRecordRequest{
		ID:       created.ID,
		CheckIn:  &in,
		CheckOut: &out,
	})
	assert.ErrorIs(t, err, worklog.ErrCheckOutBeforeInTime)
}
