package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
	"golang.org/x/sync/errgroup"
)

const syncParallelism = 4

// Section is the list of activities of one local calendar date.
type Section struct {
	Date       string
	Activities []*entity.Exercise
}

type DayTotal struct {
	Date            string
	CaloriesBurned  int
	DurationMinutes int
}

type SyncResult struct {
	Sent   int
	Failed int
}

// RecordPutter is the part of the backend client used to upsert daily records
type RecordPutter interface {
	PutDailyRecord(ctx context.Context, phone, date string, in *client.DailyRecordInput) (*entity.DailyRecord, error)
}

func localDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(entity.RecordDateLayout)
}

// GroupByLocalDate buckets activities by their calendar date in loc. Sections
// are ordered by their latest activity, newest first, and so are the
// activities inside a section.
func GroupByLocalDate(activities []*entity.Exercise, loc *time.Location) []Section {
	groups := make(map[string][]*entity.Exercise)
	for _, a := range activities {
		if a == nil {
			continue
		}
		key := localDate(a.ExerciseDate, loc)
		groups[key] = append(groups[key], a)
	}
	sections := make([]Section, 0, len(groups))
	for date, list := range groups {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].ExerciseDate.After(list[j].ExerciseDate)
		})
		sections = append(sections, Section{Date: date, Activities: list})
	}
	sort.Slice(sections, func(i, j int) bool {
		li, lj := sections[i].Activities[0].ExerciseDate, sections[j].Activities[0].ExerciseDate
		if li.Equal(lj) {
			return sections[i].Date > sections[j].Date
		}
		return li.After(lj)
	})
	return sections
}

// DailyTotals sums calories and duration per local date, oldest date first.
func DailyTotals(activities []*entity.Exercise, loc *time.Location) []DayTotal {
	byDate := make(map[string]*DayTotal)
	for _, a := range activities {
		if a == nil {
			continue
		}
		key := localDate(a.ExerciseDate, loc)
		t, ok := byDate[key]
		if !ok {
			t = &DayTotal{Date: key}
			byDate[key] = t
		}
		t.CaloriesBurned += a.CaloriesBurned
		t.DurationMinutes += a.DurationMinutes
	}
	totals := make([]DayTotal, 0, len(byDate))
	for _, t := range byDate {
		totals = append(totals, *t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// SyncDailyTotals issues one upsert per date bucket. Calls are independent:
// a failure is logged and counted, never retried, and doesn't stop the others.
func SyncDailyTotals(ctx context.Context, putter RecordPutter, phone string, totals []DayTotal) SyncResult {
	var sent, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(syncParallelism)
	for _, t := range totals {
		g.Go(func() error {
			calories, duration := t.CaloriesBurned, t.DurationMinutes
			_, err := putter.PutDailyRecord(ctx, phone, t.Date, &client.DailyRecordInput{
				TotalCaloriesBurned:     &calories,
				ExerciseDurationMinutes: &duration,
			})
			if err != nil {
				failed.Add(1)
				slog.Warn("daily record sync failed", slog.String("date", t.Date), slog.String("error", err.Error()))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return SyncResult{Sent: int(sent.Load()), Failed: int(failed.Load())}
}
