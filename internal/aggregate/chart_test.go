package aggregate_test

import (
	"testing"
	"time"

	"github.com/limbo/fittrack/internal/aggregate"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func record(date string, steps int, calories *int, weight *float64) *entity.DailyRecord {
	return &entity.DailyRecord{RecordDate: date, TotalSteps: steps, TotalCaloriesBurned: calories, Weight: weight}
}

func TestRoundToSignificant(t *testing.T) {
	cases := map[float64]float64{
		7523: 8000,
		234:  200,
		0:    0,
		15:   20,
		0.34: 0.3,
		-234: -200,
		9:    9,
		95:   100,
	}
	for in, want := range cases {
		assert.InDelta(t, want, aggregate.RoundToSignificant(in), 1e-9, "input %v", in)
	}
}

func TestBucketDailyPassesThroughWithZeroes(t *testing.T) {
	records := []*entity.DailyRecord{
		record("2024-05-01", 1000, nil, nil),
		record("2024-05-02", 2000, ptr(150), ptr(70.4)),
	}
	points := aggregate.Bucket(aggregate.ModeDaily, records)
	require.Len(t, points, 2)
	assert.Equal(t, aggregate.Point{RecordDate: "2024-05-01", TotalSteps: 1000}, points[0])
	assert.Equal(t, 150, points[1].TotalCaloriesBurned)
	assert.InDelta(t, 70.4, points[1].Weight, 1e-9)
}

func TestBucketThreeDay(t *testing.T) {
	records := []*entity.DailyRecord{
		record("2024-05-01", 1000, ptr(100), ptr(70.0)),
		record("2024-05-02", 2000, nil, ptr(71.0)),
		record("2024-05-03", 3001, ptr(201), ptr(70.0)),
		record("2024-05-04", 500, nil, nil),
		record("2024-05-05", 700, nil, nil),
	}
	points := aggregate.Bucket(aggregate.Mode3Day, records)
	require.Len(t, points, 2)
	// middle element represents the window
	assert.Equal(t, "2024-05-02", points[0].RecordDate)
	assert.Equal(t, 2000, points[0].TotalSteps)
	assert.Equal(t, 100, points[0].TotalCaloriesBurned)
	assert.InDelta(t, 70.0, points[0].Weight, 1e-9)
	// two-element tail: index 1
	assert.Equal(t, "2024-05-05", points[1].RecordDate)
	assert.Equal(t, 600, points[1].TotalSteps)
}

func TestBucketWeekly(t *testing.T) {
	records := make([]*entity.DailyRecord, 0, 8)
	for i := 1; i <= 8; i++ {
		records = append(records, record(time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC).Format(entity.RecordDateLayout), i*100, nil, nil))
	}
	points := aggregate.Bucket(aggregate.ModeWeekly, records)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-05-04", points[0].RecordDate)
	assert.Equal(t, 400, points[0].TotalSteps)
	assert.Equal(t, "2024-05-08", points[1].RecordDate)
	assert.Empty(t, aggregate.Bucket(aggregate.ModeWeekly, nil))
}

func TestFilterTimeframe(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	records := []*entity.DailyRecord{
		record("2024-05-10", 1, nil, nil),
		record("2024-05-03", 2, nil, nil),
		record("2024-05-04", 3, nil, nil),
		record("2024-05-09", 4, nil, nil),
		record("not-a-date", 5, nil, nil),
		record("2024-05-11", 6, nil, nil),
	}
	got := aggregate.FilterTimeframe(records, 7, 8*time.Hour, now)
	dates := make([]string, 0, len(got))
	for _, r := range got {
		dates = append(dates, r.RecordDate)
	}
	// shifted by +8h: 05-03 08:00 is before the window start, 05-10 08:00 is before now
	assert.Equal(t, []string{"2024-05-04", "2024-05-09", "2024-05-10"}, dates)
}

func TestAxisLabels(t *testing.T) {
	points := []aggregate.Point{{RecordDate: "2024-05-01"}, {RecordDate: "2024-05-02"}, {RecordDate: "2024-12-25"}}
	assert.Equal(t, []string{"5/1", "", "12/25"}, aggregate.AxisLabels(points))
	assert.Equal(t, []string{"5/1"}, aggregate.AxisLabels(points[:1]))
	assert.Empty(t, aggregate.AxisLabels(nil))
}

func TestBuildChart(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	records := []*entity.DailyRecord{
		record("2024-05-07", 100, nil, nil),
		record("2024-05-08", 200, nil, nil),
		record("2024-05-09", 300, nil, nil),
	}
	chart, err := aggregate.BuildChart(records, aggregate.Mode3Day, 7, 8*time.Hour, now)
	require.NoError(t, err)
	require.Len(t, chart.Points, 1)
	assert.Equal(t, 200, chart.Points[0].TotalSteps)
	assert.Equal(t, []string{"5/8"}, chart.Labels)

	_, err = aggregate.BuildChart(records, "monthly", 7, 0, now)
	assert.ErrorIs(t, err, aggregate.ErrUnknownMode)
	_, err = aggregate.BuildChart(records, aggregate.ModeDaily, 14, 0, now)
	assert.ErrorIs(t, err, aggregate.ErrUnknownTimeframe)
}
