package flow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/limbo/fittrack/internal/localstore"
	"github.com/limbo/fittrack/pkg/entity"
)

// OpenApp makes sure the user has a daily record for today's local date. The
// backend is asked once per local day; created reports whether a new record
// was made on this call.
func OpenApp(ctx context.Context, store SessionStore, days DayEnsurer, phone string, now time.Time, loc *time.Location) (created bool, err error) {
	today := now.In(loc).Format(entity.RecordDateLayout)
	last, err := store.Get(ctx, localstore.KeyLastOpenDate)
	if err != nil && !errors.Is(err, localstore.ErrNotFound) {
		return false, err
	}
	if last == today {
		return false, nil
	}
	_, created, err = days.EnsureDay(ctx, phone, today)
	if err != nil {
		return false, err
	}
	if err = store.Set(ctx, localstore.KeyLastOpenDate, today); err != nil {
		return created, err
	}
	slog.Debug("daily record ensured", slog.String("date", today), slog.Bool("created", created))
	return created, nil
}
