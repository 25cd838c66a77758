package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workdesk/workdesk-backend-go/internal/domain/worklog"
)

// CloseDanglingSessions closes work records from past days that still have
// no check-out. The session is closed at dayEnd ("HH:MM") on the record's
// own date and the worked duration is stamped. Records whose check-in is
// already past dayEnd are closed at the check-in time with zero minutes.
func CloseDanglingSessions(repo worklog.WorkLogRepository, dayEnd string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		endClock, err := time.Parse("15:04", dayEnd)
		if err != nil {
			return fmt.Errorf("invalid day end %q: %w", dayEnd, err)
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)
		sessions, err := repo.ListOpenSessions(ctx, today)
		if err != nil {
			return fmt.Errorf("failed to list open sessions: %w", err)
		}

		for _, rec := range sessions {
			closeAt := time.Date(
				rec.Date.Year(), rec.Date.Month(), rec.Date.Day(),
				endClock.Hour(), endClock.Minute(), 0, 0, rec.Date.Location(),
			)
			if rec.CheckIn != nil && closeAt.Before(*rec.CheckIn) {
				closeAt = *rec.CheckIn
			}

			total := 0
			if rec.CheckIn != nil {
				total = int(closeAt.Sub(*rec.CheckIn).Minutes())
			}

			rec.CheckOut = &closeAt
			rec.TotalMinutes = &total

			if err := repo.Update(ctx, rec); err != nil {
				slog.Error("Failed to close dangling session", "record_id", rec.ID, "error", err)
				continue
			}
			slog.Info("Closed dangling session", "record_id", rec.ID, "user_id", rec.UserID, "date", rec.Date.Format("2006-01-02"))
		}

		return nil
	}
}
