package aggregate_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/limbo/fittrack/internal/aggregate"
	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sgt = time.FixedZone("SGT", 8*60*60)

func exercise(id int64, at time.Time, calories, minutes int) *entity.Exercise {
	return &entity.Exercise{
		ID:              id,
		ExerciseType:    "Running",
		ExerciseDate:    at,
		CaloriesBurned:  calories,
		DurationMinutes: minutes,
	}
}

func TestGroupByLocalDateMixedOffsets(t *testing.T) {
	// All three happen on 1 May in Singapore, written with different offsets
	late := exercise(1, time.Date(2024, 5, 1, 23, 30, 0, 0, sgt), 100, 10)
	earlyUTC := exercise(2, time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC), 200, 20)
	noonNY := exercise(3, time.Date(2024, 4, 30, 23, 0, 0, 0, time.FixedZone("EDT", -4*60*60)), 300, 30)
	nextDay := exercise(4, time.Date(2024, 5, 2, 6, 0, 0, 0, sgt), 50, 5)

	sections := aggregate.GroupByLocalDate([]*entity.Exercise{earlyUTC, nextDay, late, noonNY}, sgt)
	require.Len(t, sections, 2)
	assert.Equal(t, "2024-05-02", sections[0].Date)
	assert.Equal(t, "2024-05-01", sections[1].Date)

	ids := make([]int64, 0, 3)
	for _, a := range sections[1].Activities {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{1, 3, 2}, ids)
}

func TestGroupByLocalDateOrdersByLatestActivity(t *testing.T) {
	a := exercise(1, time.Date(2024, 5, 3, 8, 0, 0, 0, sgt), 0, 0)
	b := exercise(2, time.Date(2024, 5, 1, 8, 0, 0, 0, sgt), 0, 0)
	c := exercise(3, time.Date(2024, 5, 2, 8, 0, 0, 0, sgt), 0, 0)
	sections := aggregate.GroupByLocalDate([]*entity.Exercise{b, a, c, nil}, sgt)
	dates := []string{sections[0].Date, sections[1].Date, sections[2].Date}
	assert.Equal(t, []string{"2024-05-03", "2024-05-02", "2024-05-01"}, dates)
	assert.Empty(t, aggregate.GroupByLocalDate(nil, sgt))
}

func TestDailyTotals(t *testing.T) {
	activities := []*entity.Exercise{
		exercise(1, time.Date(2024, 5, 1, 23, 30, 0, 0, sgt), 100, 10),
		exercise(2, time.Date(2024, 4, 30, 17, 0, 0, 0, time.UTC), 200, 20),
		exercise(3, time.Date(2024, 4, 30, 15, 0, 0, 0, time.UTC), 40, 4),
	}
	totals := aggregate.DailyTotals(activities, sgt)
	assert.Equal(t, []aggregate.DayTotal{
		{Date: "2024-04-30", CaloriesBurned: 40, DurationMinutes: 4},
		{Date: "2024-05-01", CaloriesBurned: 300, DurationMinutes: 30},
	}, totals)
}

type putterMock struct {
	mu     sync.Mutex
	calls  []string
	failOn string
}

func (p *putterMock) PutDailyRecord(ctx context.Context, phone, date string, in *client.DailyRecordInput) (*entity.DailyRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, date)
	if date == p.failOn {
		return nil, errors.New("backend unavailable")
	}
	return &entity.DailyRecord{RecordDate: date, TotalCaloriesBurned: in.TotalCaloriesBurned}, nil
}

func TestSyncDailyTotalsOnePutPerBucketNoRetry(t *testing.T) {
	putter := &putterMock{failOn: "2024-05-02"}
	totals := []aggregate.DayTotal{
		{Date: "2024-05-01", CaloriesBurned: 100, DurationMinutes: 10},
		{Date: "2024-05-02", CaloriesBurned: 200, DurationMinutes: 20},
		{Date: "2024-05-03", CaloriesBurned: 300, DurationMinutes: 30},
	}
	res := aggregate.SyncDailyTotals(context.Background(), putter, "81228470", totals)
	assert.Equal(t, aggregate.SyncResult{Sent: 2, Failed: 1}, res)

	sort.Strings(putter.calls)
	assert.Equal(t, []string{"2024-05-01", "2024-05-02", "2024-05-03"}, putter.calls)
}
