package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdesk/workdesk-backend-go/internal/domain/holiday"
	"github.com/workdesk/workdesk-backend-go/internal/domain/user"
	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) GetByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	h, ok := f.holidays[date.Format("2006-01-02")]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (f *fakeHolidayRepo) ListByRange(ctx context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays[h.Date.Format("2006-01-02")] = h
	return h, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, date time.Time) error {
	key := date.Format("2006-01-02")
	if _, ok := f.holidays[key]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(f.holidays, key)
	return nil
}

func roleCtx(t *testing.T, role user.Role) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "u1",
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestLookup(t *testing.T) {
	repo := newFakeHolidayRepo()
	repo.holidays["2025-06-06"] = holiday.Holiday{
		Date: time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		Name: "Memorial Day",
	}
	svc := NewHolidayService(repo)

	resp, err := svc.Lookup(context.Background(), "2025-06-06")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Memorial Day", resp.Name)

	resp, err = svc.Lookup(context.Background(), "2025-06-07")
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = svc.Lookup(context.Background(), "06/06/2025")
	assert.Error(t, err)
}

func TestListMonth(t *testing.T) {
	repo := newFakeHolidayRepo()
	repo.holidays["2025-06-06"] = holiday.Holiday{
		Date: time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		Name: "Memorial Day",
	}
	repo.holidays["2025-07-04"] = holiday.Holiday{
		Date: time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC),
		Name: "Independence Day",
	}
	svc := NewHolidayService(repo)

	holidays, err := svc.ListMonth(context.Background(), 2025, 6)
	require.NoError(t, err)
	require.Len(t, holidays, 1)
	assert.Equal(t, "2025-06-06", holidays[0].Date)

	_, err = svc.ListMonth(context.Background(), 2025, 13)
	assert.Error(t, err)
}

func TestUpsert(t *testing.T) {
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo)

	resp, err := svc.Upsert(roleCtx(t, user.RoleAdmin), holiday.UpsertHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.Equal(t, "Christmas Day", resp.Name)

	// Same date replaces the name.
	resp, err = svc.Upsert(roleCtx(t, user.RoleAdmin), holiday.UpsertHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas",
	})
	require.NoError(t, err)
	assert.Equal(t, "Christmas", resp.Name)
	assert.Len(t, repo.holidays, 1)
}

func TestUpsert_AdminOnly(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())

	_, err := svc.Upsert(roleCtx(t, user.RoleManager), holiday.UpsertHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	assert.ErrorIs(t, err, worklog.ErrUnauthorized)
}

func TestDelete(t *testing.T) {
	repo := newFakeHolidayRepo()
	repo.holidays["2025-06-06"] = holiday.Holiday{
		Date: time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC),
		Name: "Memorial Day",
	}
	svc := NewHolidayService(repo)

	err := svc.Delete(roleCtx(t, user.RoleAdmin), "2025-06-06")
	require.NoError(t, err)
	assert.Empty(t, repo.holidays)

	err = svc.Delete(roleCtx(t, user.RoleEmployee), "2025-06-06")
	assert.ErrorIs(t, err, worklog.ErrUnauthorized)
}
